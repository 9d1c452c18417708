// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/kjob/pkg/cmd/ui"
	"carvel.dev/kjob/pkg/config"
	"carvel.dev/kjob/pkg/manifest"
	"carvel.dev/kjob/pkg/template"
	"carvel.dev/kjob/pkg/values"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVersionChecker struct {
	calls int
	err   error
}

func (c *fakeVersionChecker) CheckRetryLimitSupported() error {
	c.calls++
	return c.err
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newEngine(checker values.VersionChecker) template.Engine {
	return template.NewEngine(values.NewResolver(checker), ui.NewCustomWriterTTY(false, nil, nil))
}

func generate(t *testing.T, engine template.Engine, cfg config.JobConfig) string {
	tmpFile, err := engine.Generate(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { tmpFile.Remove() })

	data, err := os.ReadFile(tmpFile.Path())
	require.NoError(t, err)

	return string(data)
}

func assertEqualYAML(t *testing.T, expected, actual string) {
	if expected != actual {
		diff := difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n"))
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", diff)
	}
}

func TestGenerateWithTemplateFiles(t *testing.T) {
	templates := map[string]string{
		"testdata/default_cmd.yaml":            `command: ["ls", "-la"]`,
		"testdata/interpolated_cmd.yaml":       `command: ["/bin/sh", "-c", "date; ls -la"]`,
		"testdata/sh_array_cmd.yaml":           `command: ["/bin/sh", "-c", "ls -la"]`,
		"testdata/array_continuation_cmd.yaml": `command: ["date;", "ls", "-la"]`,
	}

	for path, expectedCmd := range templates {
		t.Run(filepath.Base(path), func(t *testing.T) {
			cfg := config.JobConfig{
				Template:    path,
				CmdArgs:     []string{"ls", "-la"},
				Image:       strPtr("syncing/the-ship"),
				Preemptible: true,
			}

			data := generate(t, newEngine(nil), cfg)

			assert.Contains(t, data, "testValue: Yep")

			assert.Contains(t, data, "tolerations:")
			assert.Contains(t, data, "key: gke-preemptible")
			assert.Contains(t, data, "operator: Equal")
			assert.Contains(t, data, `value: "true"`)
			assert.Contains(t, data, "effect: NoSchedule")

			assert.Contains(t, data, expectedCmd)
			assert.Contains(t, data, "name: the-ship")
			assert.Contains(t, data, "image: syncing/the-ship")
			assert.Contains(t, data, "generateName: kjob-")

			assert.NotContains(t, data, "backoffLimit")
		})
	}
}

func TestGenerateWithDefaultTemplate(t *testing.T) {
	cfg := config.JobConfig{
		Name:               strPtr("job-name"),
		Image:              strPtr("basic"),
		CmdArgs:            []string{"ls", "-la"},
		PersistentDiskName: strPtr("test-disk"),
	}

	data := generate(t, newEngine(nil), cfg)

	expected := `apiVersion: batch/v1
kind: Job
metadata:
  generateName: job-name-
spec:
  template:
    spec:
      containers:
        - name: basic
          image: basic
          command: ["/bin/sh", "-c", "ls -la"]
          resources:
            requests:
            limits:
          volumeMounts:
            - mountPath: /static
              name: k8s-job-volume
              readOnly: true
      restartPolicy: Never
      volumes:
        - name: k8s-job-volume
          gcePersistentDisk:
            pdName: test-disk
            fsType: ext4
            readOnly: true
`
	assertEqualYAML(t, expected, data)
}

func TestGenerateWithReadWriteVolume(t *testing.T) {
	cfg := config.JobConfig{
		Name:               strPtr("job-name"),
		Image:              strPtr("gcr.io/example-project/jobcontainer:image-tag"),
		CmdArgs:            []string{"ls", "-la"},
		PersistentDiskName: strPtr("test-disk"),
		MountPath:          strPtr("/test"),
		VolumeName:         strPtr("test-volume-name"),
		VolumeReadWrite:    true,
	}

	data := generate(t, newEngine(nil), cfg)

	assert.NotContains(t, data, "testValue: Yep")
	assert.NotContains(t, data, "tolerations:")
	assert.NotContains(t, data, "gke-preemptible")

	assert.Contains(t, data, `command: ["/bin/sh", "-c", "ls -la"]`)
	assert.Contains(t, data, "name: jobcontainer-image-tag")
	assert.Contains(t, data, "image: gcr.io/example-project/jobcontainer:image-tag")
	assert.Contains(t, data, "generateName: job-name-")

	assert.Contains(t, data, "mountPath: /test")
	assert.Contains(t, data, "name: test-volume-name")
	assert.Contains(t, data, "pdName: test-disk")
	assert.NotContains(t, data, "readOnly")
}

func TestGenerateWithResources(t *testing.T) {
	cfg := config.JobConfig{
		Image:       strPtr("basic"),
		TimeMinutes: intPtr(2),
		CPU:         strPtr("4"),
		CPULimit:    strPtr("4"),
		Memory:      strPtr("1Gi"),
		DiskLimit:   strPtr("10Gi"),
		RetryLimit:  intPtr(0),
		Labels:      []string{"pool=highmem"},
		Partition:   strPtr("batch"),
	}

	engine := template.NewEngine(values.NewResolver(&fakeVersionChecker{}), ui.NewCustomWriterTTY(false, nil, nil))
	data, err := engine.Render(cfg)
	require.NoError(t, err)

	assert.Contains(t, data, "  backoffLimit: 0\n")
	assert.Contains(t, data, "  activeDeadlineSeconds: 120\n")
	assert.Contains(t, data, "              cpu: 3.5\n")
	assert.Contains(t, data, "              memory: 1Gi\n")
	assert.Contains(t, data, "              cpu: 4\n")
	assert.Contains(t, data, "              ephemeral-storage: 10Gi\n")
	assert.Contains(t, data, "      nodeSelector:\n        pool: highmem\n        partition: batch\n")

	// without command args the shell placeholder line goes away
	assert.Contains(t, data, "          command:\n            - /bin/sh\n            - -c\n          resources:")
}

func TestGenerateChecksRetryLimit(t *testing.T) {
	cases := []struct {
		retryLimit    *int
		expectedCalls int
	}{
		{nil, 0},
		{intPtr(0), 0},
		{intPtr(5), 1},
	}

	for _, tc := range cases {
		checker := &fakeVersionChecker{}
		cfg := config.JobConfig{Image: strPtr("basic"), RetryLimit: tc.retryLimit}

		generate(t, newEngine(checker), cfg)
		assert.Equal(t, tc.expectedCalls, checker.calls)
	}
}

func TestGeneratePropagatesVersionCheckError(t *testing.T) {
	checkErr := errors.New("Your Kubernetes version is too old")
	cfg := config.JobConfig{Image: strPtr("basic"), RetryLimit: intPtr(1)}

	_, err := newEngine(&fakeVersionChecker{err: checkErr}).Generate(cfg)
	assert.Equal(t, checkErr, err)
}

func TestGenerateWithoutTemplateOrImage(t *testing.T) {
	for _, cfg := range []config.JobConfig{{}, {Image: strPtr("")}} {
		_, err := newEngine(nil).Generate(cfg)
		require.EqualError(t, err, "A pre-defined yaml file or docker image must be specified!")

		var configErr config.ConfigurationError
		require.True(t, errors.As(err, &configErr))
	}
}

func TestGenerateWithMissingSections(t *testing.T) {
	cfg := config.JobConfig{
		Template: "testdata/bogus.yaml",
		CmdArgs:  []string{"ls", "-la"},
		Image:    strPtr("syncing/the-ship"),
	}

	data := generate(t, newEngine(nil), cfg)
	assert.Contains(t, data, "testValue: Yep")

	preemptible := cfg
	preemptible.Preemptible = true

	_, err := newEngine(nil).Generate(preemptible)
	require.Error(t, err)

	var structErr manifest.StructureError
	require.True(t, errors.As(err, &structErr))

	withDisk := cfg
	withDisk.PersistentDiskName = strPtr("example-disk")

	_, err = newEngine(nil).Generate(withDisk)
	require.Error(t, err)
	require.True(t, errors.As(err, &structErr))
	assert.Contains(t, err.Error(), "with at least one container")
}

func TestGenerateDoesNotCheckVersionOnStructureError(t *testing.T) {
	checker := &fakeVersionChecker{}
	cfg := config.JobConfig{
		Template:    "testdata/bogus.yaml",
		Preemptible: true,
		RetryLimit:  intPtr(3),
	}

	_, err := newEngine(checker).Generate(cfg)
	require.Error(t, err)
	assert.Equal(t, 0, checker.calls)
}

func TestConvertLeavesUnknownPlaceholders(t *testing.T) {
	debugOut := &bytes.Buffer{}
	engine := template.NewEngine(values.NewResolver(nil), ui.NewCustomWriterTTY(true, debugOut, debugOut))

	data := `kind: Job
spec:
  template:
    spec:
      containers:
        - name: $(CONTAINER_NAME)
          args:
            - --pod=$(POD_NAME)
`
	result, err := engine.Convert([]byte(data), "job.yml", config.JobConfig{Image: strPtr("busybox")})
	require.NoError(t, err)

	assert.Contains(t, result, "- name: busybox\n")
	assert.Contains(t, result, "- --pod=$(POD_NAME)\n")
	assert.Contains(t, debugOut.String(), "left unknown placeholders untouched: POD_NAME")
}

func TestConvertInvalidYAML(t *testing.T) {
	_, err := newEngine(nil).Convert([]byte("a: [b"), "broken.yml", config.JobConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unmarshaling YAML 'broken.yml'")
}
