// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kubectl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const DefaultBinaryPath = "kubectl"

type UI interface {
	Debugf(string, ...interface{})
}

// Runner invokes kubectl with the given arguments.
type Runner interface {
	// Output returns captured stdout.
	Output(ctx context.Context, args ...string) ([]byte, error)
	// Stream forwards output as it is produced.
	Stream(ctx context.Context, stdout, stderr io.Writer, args ...string) error
}

type ExecRunner struct {
	binaryPath string
	ui         UI
}

var _ Runner = ExecRunner{}

func NewExecRunner(binaryPath string, ui UI) ExecRunner {
	if len(binaryPath) == 0 {
		binaryPath = DefaultBinaryPath
	}
	return ExecRunner{binaryPath, ui}
}

func (r ExecRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	err := r.run(ctx, &stdout, &stderr, args)
	if err != nil {
		return nil, fmt.Errorf("Running '%s': %s%s", r.desc(args), err, formatStderr(stderr.String()))
	}

	return stdout.Bytes(), nil
}

func (r ExecRunner) Stream(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	err := r.run(ctx, stdout, stderr, args)
	if err != nil {
		return fmt.Errorf("Running '%s': %s", r.desc(args), err)
	}
	return nil
}

func (r ExecRunner) run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	r.ui.Debugf("running %s\n", r.desc(args))

	cmd := exec.CommandContext(ctx, r.binaryPath, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}

func (r ExecRunner) desc(args []string) string {
	return strings.Join(append([]string{r.binaryPath}, args...), " ")
}

func formatStderr(stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if len(stderr) == 0 {
		return ""
	}
	return "\nstderr: " + stderr
}
