// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta_test

import (
	"strings"
	"testing"

	"carvel.dev/kjob/pkg/yamlmeta"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserKeepsKeyOrderAndTags(t *testing.T) {
	data := `
kind: Job
metadata:
  name: example
spec:
  backoffLimit: 3
  parallelism: "2"
  suspend: false
  template:
    spec:
      containers:
      - name: main
        command: ["/bin/sh", "-c", "$(CMD_ARGS)"]
`

	doc, err := yamlmeta.NewParser().ParseBytes([]byte(data), "job.yml")
	require.NoError(t, err)

	out, err := doc.AsBytes()
	require.NoError(t, err)

	expected := `kind: Job
metadata:
  name: example
spec:
  backoffLimit: 3
  parallelism: "2"
  suspend: false
  template:
    spec:
      containers:
        - name: main
          command:
            - /bin/sh
            - -c
            - $(CMD_ARGS)
`
	assertEqualYAML(t, expected, string(out))
}

func TestParserExpandsAliases(t *testing.T) {
	data := `
defaults: &defaults
  cpu: 1
first: *defaults
`
	root := parseExample(t, data)

	val, err := yamlmeta.Get(root, "first.cpu", nil)
	require.NoError(t, err)
	requireScalar(t, val, "1")
}

func TestParserErrors(t *testing.T) {
	_, err := yamlmeta.NewParser().ParseBytes([]byte("a: 1\na: 2\n"), "dup.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected duplicate key 'a'")

	_, err = yamlmeta.NewParser().ParseBytes([]byte(""), "empty.yml")
	require.EqualError(t, err, "Expected 'empty.yml' to contain a YAML document")

	_, err = yamlmeta.NewParser().ParseBytes([]byte("a: [b"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unmarshaling YAML document")

	_, err = yamlmeta.NewParser().ParseBytes([]byte("kind: ConfigMap\n---\nkind: Job\n"), "multi.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 'multi.yml' to contain a single YAML document")
}

func TestParserAcceptsLeadingDocumentMarker(t *testing.T) {
	doc, err := yamlmeta.NewParser().ParseBytes([]byte("---\nkind: Job\n"), "job.yml")
	require.NoError(t, err)

	val, err := yamlmeta.Get(doc.Value, "kind", nil)
	require.NoError(t, err)
	requireScalar(t, val, "Job")
}

func TestPrinterQuotesStringsThatLookLikeOtherTypes(t *testing.T) {
	doc := &yamlmeta.Document{Value: yamlmeta.NewMapFromItems(
		yamlmeta.NewMapItem("value", yamlmeta.NewString("true")),
		yamlmeta.NewMapItem("readOnly", yamlmeta.NewString("$(VOLUME_READ_ONLY)")),
		yamlmeta.NewMapItem("enabled", yamlmeta.NewBool(true)),
		yamlmeta.NewMapItem("empty", yamlmeta.NewString("")),
		yamlmeta.NewMapItem("nothing", yamlmeta.NewNull()),
	)}

	out, err := doc.AsBytes()
	require.NoError(t, err)

	assertEqualYAML(t, `value: "true"
readOnly: $(VOLUME_READ_ONLY)
enabled: true
empty: ""
nothing: null
`, string(out))
}

func TestDeepCopyAsNode(t *testing.T) {
	root := parseExample(t, exampleYAML)

	copied := root.DeepCopyAsNode()
	require.NoError(t, yamlmeta.Set(copied, "sub-dict.not-list", yamlmeta.NewString("changed")))

	val, err := yamlmeta.Get(root, "sub-dict.not-list", nil)
	require.NoError(t, err)
	requireScalar(t, val, "d")
}

func assertEqualYAML(t *testing.T, expected, actual string) {
	t.Helper()

	if expected != actual {
		diff := difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n"))
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", diff)
	}
}
