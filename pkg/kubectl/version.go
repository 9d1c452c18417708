// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kubectl

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	goversion "github.com/hashicorp/go-version"
	"k8s.io/apimachinery/pkg/version"
)

// MinRetryLimitVersion is the first server version that stops retrying
// a job once its backoff limit is reached.
var MinRetryLimitVersion = goversion.Must(goversion.NewVersion("1.11.0"))

var serverVersionRegexp = regexp.MustCompile(`^v([0-9]+\.[0-9]+\.[0-9]+)`)

type VersionIncompatibilityError struct {
	Version string
}

func (e VersionIncompatibilityError) Error() string {
	return fmt.Sprintf("Your Kubernetes version is v%s. Kubernetes versions prior to v%s will retry "+
		"an indefinite amount of times with retries set to > 0", e.Version, MinRetryLimitVersion)
}

type versionResponse struct {
	ClientVersion *version.Info `json:"clientVersion"`
	ServerVersion *version.Info `json:"serverVersion"`
}

type VersionChecker struct {
	runner Runner
}

func NewVersionChecker(runner Runner) VersionChecker {
	return VersionChecker{runner}
}

// ServerVersion returns the major.minor.patch part of the cluster version.
func (c VersionChecker) ServerVersion(ctx context.Context) (*goversion.Version, error) {
	out, err := c.runner.Output(ctx, "version", "-o", "json")
	if err != nil {
		return nil, err
	}

	var resp versionResponse

	err = json.Unmarshal(out, &resp)
	if err != nil {
		return nil, fmt.Errorf("Unmarshaling kubectl version: %s", err)
	}

	if resp.ServerVersion == nil {
		return nil, fmt.Errorf("Expected kubectl version to include server version")
	}

	match := serverVersionRegexp.FindStringSubmatch(resp.ServerVersion.GitVersion)
	if match == nil {
		return nil, fmt.Errorf("Expected server version '%s' to start with 'v<major>.<minor>.<patch>'",
			resp.ServerVersion.GitVersion)
	}

	ver, err := goversion.NewVersion(match[1])
	if err != nil {
		return nil, fmt.Errorf("Parsing server version '%s': %s", match[1], err)
	}

	return ver, nil
}

// CheckRetryLimitSupported fails with VersionIncompatibilityError for
// servers that ignore job backoff limits.
func (c VersionChecker) CheckRetryLimitSupported() error {
	ver, err := c.ServerVersion(context.Background())
	if err != nil {
		return err
	}

	if ver.LessThan(MinRetryLimitVersion) {
		return VersionIncompatibilityError{Version: ver.String()}
	}
	return nil
}
