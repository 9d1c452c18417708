// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"fmt"
	"strconv"

	"carvel.dev/kjob/pkg/config"
	"carvel.dev/kjob/pkg/files"
	"carvel.dev/kjob/pkg/texttemplate"
	"k8s.io/apimachinery/pkg/api/resource"
)

// VersionChecker confirms that the cluster honours job retry limits.
type VersionChecker interface {
	CheckRetryLimitSupported() error
}

type Resolver struct {
	versionChecker VersionChecker
}

func NewResolver(versionChecker VersionChecker) Resolver {
	return Resolver{versionChecker}
}

// Resolved holds placeholder values along with the command arguments
// that the manifest command rewrite needs.
type Resolved struct {
	Values *texttemplate.Values

	// CmdArgs is nil when no arguments (and no script) were given.
	CmdArgs []string

	volumeReadOnly *string
}

// Finalize registers placeholders that are substituted last.
func (r Resolved) Finalize() {
	r.Values.Set(VolumeReadOnly, r.volumeReadOnly)
}

// Resolve derives values for every vocabulary placeholder. It does not
// contact the cluster; see VerifyRetryLimit.
func (r Resolver) Resolve(cfg config.JobConfig) (Resolved, error) {
	err := validateQuantities(cfg)
	if err != nil {
		return Resolved{}, err
	}

	cmdArgs, err := r.cmdArgs(cfg)
	if err != nil {
		return Resolved{}, err
	}

	cpu, err := AdjustCPURequest(cfg.CPU)
	if err != nil {
		return Resolved{}, config.ConfigurationError{Reason: err.Error()}
	}

	vals := texttemplate.NewValues(Vocabulary())

	vals.SetString(JobName, stringOr(cfg.Name, DefaultJobName))

	if cfg.ContainerName != nil && len(*cfg.ContainerName) > 0 {
		vals.Set(ContainerName, cfg.ContainerName)
	} else {
		vals.SetString(ContainerName, ContainerNameFor(stringOr(cfg.Image, "")))
	}

	vals.Set(ContainerImage, cfg.Image)

	if cmdArgs != nil {
		encoded, err := EncodeJSONArray(cmdArgs)
		if err != nil {
			return Resolved{}, fmt.Errorf("Encoding command arguments: %s", err)
		}
		vals.SetString(CmdArgs, encoded)
	}

	vals.Set(TimeLimitSeconds, AdjustTime(cfg.TimeMinutes))
	vals.Set(CPURequest, cpu)
	vals.Set(MemRequest, cfg.Memory)
	vals.Set(DiskRequest, cfg.Disk)
	vals.Set(CPULimit, cfg.CPULimit)
	vals.Set(MemLimit, cfg.MemoryLimit)
	vals.Set(DiskLimit, cfg.DiskLimit)
	vals.Set(PDName, cfg.PersistentDiskName)
	vals.SetString(MountPath, stringOr(cfg.MountPath, DefaultMountPath))
	vals.SetString(VolumeName, stringOr(cfg.VolumeName, DefaultVolumeName))

	if cfg.RetryLimit != nil {
		vals.SetString(RetryLimit, strconv.Itoa(*cfg.RetryLimit))
	}

	resolved := Resolved{Values: vals, CmdArgs: cmdArgs}

	if !cfg.VolumeReadWrite {
		readOnly := "true"
		resolved.volumeReadOnly = &readOnly
	}

	return resolved, nil
}

// VerifyRetryLimit asks the cluster whether retry limits are supported,
// but only when a positive retry limit was requested. Checker errors
// are returned unchanged.
func (r Resolver) VerifyRetryLimit(cfg config.JobConfig) error {
	if cfg.RetryLimit == nil || *cfg.RetryLimit < 1 {
		return nil
	}
	if r.versionChecker == nil {
		return fmt.Errorf("Expected a cluster version checker to verify retry limit")
	}
	return r.versionChecker.CheckRetryLimitSupported()
}

func (r Resolver) cmdArgs(cfg config.JobConfig) ([]string, error) {
	if len(cfg.Script) == 0 {
		return cfg.CmdArgs, nil
	}

	script, err := files.NewLocalSource(cfg.Script).Bytes()
	if err != nil {
		return nil, fmt.Errorf("Loading script: %s", err)
	}

	return CombineScriptAndArgs(script, true, cfg.CmdArgs), nil
}

func validateQuantities(cfg config.JobConfig) error {
	quantities := []struct {
		desc string
		val  *string
	}{
		{"cpu", cfg.CPU},
		{"cpu limit", cfg.CPULimit},
		{"memory", cfg.Memory},
		{"memory limit", cfg.MemoryLimit},
		{"disk", cfg.Disk},
		{"disk limit", cfg.DiskLimit},
	}

	for _, q := range quantities {
		if q.val == nil || len(*q.val) == 0 {
			continue
		}
		_, err := resource.ParseQuantity(*q.val)
		if err != nil {
			return config.ConfigurationError{
				Reason: fmt.Sprintf("Expected %s '%s' to be a valid quantity: %s", q.desc, *q.val, err)}
		}
	}
	return nil
}

// stringOr treats empty strings the same as missing values.
func stringOr(val *string, def string) string {
	if val == nil || len(*val) == 0 {
		return def
	}
	return *val
}
