// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for rendering job templates and asserting
the expected output.
*/
package filetests

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/kjob/pkg/cmd"
)

const argsMarker = "#! kjob "

// EvaluateTemplate is the processing desired from a source template to the final result.
type EvaluateTemplate func(src string) (string, *TestErr)

// FileTests contain a suite of test cases, each described in a separate file, verifying rendered job manifests.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - conventionally have a .jobtest extension
// - top-half is the template; bottom-half is the expected output; divided by `+++` and a blank line.
// - template lines starting with `#! kjob ` hold arguments for `kjob template` (split on whitespace)
//
// Types of template tests:
// - expected output starting with `ERR:` indicate that expected output is an error message
// - otherwise expected output is the literal output from template
//
// For example:
//
//	#! kjob --image busybox -- ls -la
//	kind: Job
//	spec:
//	  template:
//	    spec:
//	      containers:
//	      - image: $(CONTAINER_IMAGE)
//	+++
//
//	kind: Job
//	spec:
//	  template:
//	    spec:
//	      containers:
//	        - image: busybox
type FileTests struct {
	PathToTests string
	EvalFunc    EvaluateTemplate
}

// Run runs each tests: enumerates each file within FileTests.PathToTests; splits and evaluates using FileTests.EvalFunc.
func (f FileTests) Run(t *testing.T) {
	var files []string

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}

	if f.EvalFunc == nil {
		f.EvalFunc = f.DefaultEvalTemplate
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)

			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}
			expectedStr := pieces[1]

			result, testErr := f.EvalFunc(pieces[0] + "\n")

			switch {
			case strings.HasPrefix(expectedStr, "ERR:"):
				if testErr == nil {
					err = fmt.Errorf("expected eval error, but did not receive it")
				} else {
					resultStr := TrimTrailingMultilineWhitespace(testErr.UserErr().Error())

					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					expectedStr = TrimTrailingMultilineWhitespace(expectedStr)
					err = f.expectEquals(resultStr, expectedStr)
				}
			default:
				if testErr == nil {
					err = f.expectEquals(result, expectedStr)
				} else {
					err = testErr.TestErr()
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

// TestErr captures an error result from a single test.
type TestErr struct {
	realErr error
	testErr error
}

// NewTestErr creates a new TestErr
func NewTestErr(realErr, testErr error) *TestErr {
	return &TestErr{realErr, testErr}
}

// UserErr yields the error returned to the user
func (e TestErr) UserErr() error { return e.realErr }

// TestErr yields the error wrapped with helpful test context
func (e TestErr) TestErr() error { return e.testErr }

func (f FileTests) expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		return fmt.Errorf("not equal\n\n### result %d chars:\n>>>%s<<<\n###expected %d chars:\n>>>%s<<<", len(resultStr), resultStr, len(expectedStr), expectedStr)
	}
	return nil
}

// DefaultEvalTemplate renders "src" with `kjob template`, passing arguments found in `#! kjob ` lines.
func (f FileTests) DefaultEvalTemplate(src string) (string, *TestErr) {
	tmpFile, err := os.CreateTemp("", "kjob-filetest-*.yaml")
	if err != nil {
		return "", NewTestErr(err, fmt.Errorf("temp file error: %v", err))
	}

	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(src)
	if err == nil {
		err = tmpFile.Close()
	}
	if err != nil {
		return "", NewTestErr(err, fmt.Errorf("temp file error: %v", err))
	}

	args := append([]string{"template", "--defaults-file", os.DevNull, "-f", tmpFile.Name()}, Args(src)...)

	stdout := &bytes.Buffer{}

	command := cmd.NewDefaultKjobCmd()
	command.SetOut(stdout)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(args)

	err = command.Execute()
	if err != nil {
		return "", NewTestErr(err, fmt.Errorf("render error: %v\nargs: %v", err, args))
	}

	return stdout.String(), nil
}

// Args collects arguments from `#! kjob ` lines in order.
func Args(src string) []string {
	var result []string
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, argsMarker) {
			result = append(result, strings.Fields(strings.TrimPrefix(line, argsMarker))...)
		}
	}
	return result
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
