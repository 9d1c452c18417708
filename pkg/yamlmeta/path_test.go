// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta_test

import (
	"testing"

	"carvel.dev/kjob/pkg/yamlmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleYAML = `
test: 1
sub-dict:
  a-list: [a, b, c]
  not-list: d
  boolean: true
another-list:
- id: 5
- name: example
`

func parseExample(t *testing.T, data string) yamlmeta.Node {
	doc, err := yamlmeta.NewParser().ParseBytes([]byte(data), "example.yml")
	require.NoError(t, err)
	return doc.Value
}

func requireScalar(t *testing.T, node yamlmeta.Node, expected string) {
	scalar, ok := node.(*yamlmeta.Scalar)
	require.True(t, ok, "Expected scalar, but was %T", node)
	require.Equal(t, expected, scalar.Value)
}

func TestGet(t *testing.T) {
	root := parseExample(t, exampleYAML)

	t.Run("resolves map keys and sequence indexes", func(t *testing.T) {
		cases := map[string]string{
			"test":                "1",
			"sub-dict.not-list":   "d",
			"sub-dict.a-list.0":   "a",
			"sub-dict.boolean":    "true",
			"another-list.0.id":   "5",
			"another-list.1.name": "example",
		}
		for path, expected := range cases {
			val, err := yamlmeta.Get(root, path, nil)
			require.NoError(t, err, path)
			requireScalar(t, val, expected)
		}
	})

	t.Run("returns default for missing keys and out of range indexes", func(t *testing.T) {
		def := yamlmeta.NewString("default")

		for _, path := range []string{"not-present", "sub-dict.a-list.5", "sub-dict.nope", "another-list.2.not-found"} {
			val, err := yamlmeta.Get(root, path, def)
			require.NoError(t, err, path)
			assert.Same(t, def, val, path)
		}
	})

	t.Run("returns root for empty path", func(t *testing.T) {
		val, err := yamlmeta.Get(root, "", nil)
		require.NoError(t, err)
		assert.Same(t, root, val)
	})

	t.Run("fails indexing into scalars", func(t *testing.T) {
		_, err := yamlmeta.Get(root, "test.whoops", nil)

		var typeErr yamlmeta.PathTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "whoops", typeErr.Segment)
	})

	t.Run("fails with non-integer sequence indexes", func(t *testing.T) {
		for _, path := range []string{"another-list.not-an-int", "another-list.-1", "another-list.+1"} {
			_, err := yamlmeta.Get(root, path, nil)
			require.ErrorAs(t, err, &yamlmeta.PathTypeError{}, path)
		}
	})
}

func TestParentAndKey(t *testing.T) {
	root := parseExample(t, exampleYAML)

	parent, key, err := yamlmeta.ParentAndKey(root, "sub-dict.a-list")
	require.NoError(t, err)
	subDict, err := yamlmeta.Get(root, "sub-dict", nil)
	require.NoError(t, err)
	assert.Same(t, subDict, parent)
	assert.Equal(t, "a-list", key)

	parent, key, err = yamlmeta.ParentAndKey(root, "test")
	require.NoError(t, err)
	assert.Same(t, root, parent)
	assert.Equal(t, "test", key)

	for _, path := range []string{"", ".", "sub-dict.a-list."} {
		_, _, err := yamlmeta.ParentAndKey(root, path)
		require.ErrorAs(t, err, &yamlmeta.PathFormatError{}, path)
	}

	for _, path := range []string{"sub-dict.does-not-exist.key", "does-not-exist.key"} {
		_, _, err := yamlmeta.ParentAndKey(root, path)
		require.ErrorAs(t, err, &yamlmeta.PathNotFoundError{}, path)
	}
}

func TestSetAndInsertOrAppend(t *testing.T) {
	root := parseExample(t, `
example: 5
path:
  to-set: old
  list: [to-append, to]
`)

	require.NoError(t, yamlmeta.Set(root, "example", &yamlmeta.Scalar{Value: "10", Tag: "!!int"}))
	require.NoError(t, yamlmeta.Set(root, "path.to-set", yamlmeta.NewString("new")))
	require.NoError(t, yamlmeta.InsertOrAppend(root, "path.list", yamlmeta.NewString("ok")))
	require.NoError(t, yamlmeta.InsertOrAppend(root, "path.new-list", yamlmeta.NewString("another")))

	err := yamlmeta.InsertOrAppend(root, "example", yamlmeta.NewString("7"))
	require.ErrorAs(t, err, &yamlmeta.PathTypeError{})

	val, err := yamlmeta.Get(root, "example", nil)
	require.NoError(t, err)
	requireScalar(t, val, "10")

	val, err = yamlmeta.Get(root, "path.to-set", nil)
	require.NoError(t, err)
	requireScalar(t, val, "new")

	list, err := yamlmeta.Get(root, "path.list", nil)
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 3)
	for i, expected := range []string{"to-append", "to", "ok"} {
		requireScalar(t, list.GetValues()[i], expected)
	}

	newList, err := yamlmeta.Get(root, "path.new-list", nil)
	require.NoError(t, err)
	require.Len(t, newList.GetValues(), 1)
	requireScalar(t, newList.GetValues()[0], "another")

	pathMap := root.(*yamlmeta.Map).Items[1].Value.(*yamlmeta.Map)
	var keys []string
	for _, item := range pathMap.Items {
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []string{"to-set", "list", "new-list"}, keys)
}

func TestInsertOrAppendIntoSequenceItems(t *testing.T) {
	root := parseExample(t, `
containers:
- name: a
  volumeMounts:
  - name: existing
- name: b
`)

	for _, path := range []string{"containers.0.volumeMounts", "containers.1.volumeMounts"} {
		require.NoError(t, yamlmeta.InsertOrAppend(root, path, yamlmeta.NewString("mount")))
	}

	first, err := yamlmeta.Get(root, "containers.0.volumeMounts", nil)
	require.NoError(t, err)
	assert.Len(t, first.GetValues(), 2)

	second, err := yamlmeta.Get(root, "containers.1.volumeMounts", nil)
	require.NoError(t, err)
	assert.Len(t, second.GetValues(), 1)

	err = yamlmeta.InsertOrAppend(root, "containers.2.volumeMounts", yamlmeta.NewString("mount"))
	require.ErrorAs(t, err, &yamlmeta.PathNotFoundError{})
}

func TestSetIntoSequence(t *testing.T) {
	root := parseExample(t, `items: [a, b]`)

	require.NoError(t, yamlmeta.Set(root, "items.1", yamlmeta.NewString("c")))

	val, err := yamlmeta.Get(root, "items.1", nil)
	require.NoError(t, err)
	requireScalar(t, val, "c")

	err = yamlmeta.Set(root, "items.2", yamlmeta.NewString("d"))
	require.ErrorAs(t, err, &yamlmeta.PathNotFoundError{})

	err = yamlmeta.Set(root, "items.x", yamlmeta.NewString("d"))
	require.ErrorAs(t, err, &yamlmeta.PathTypeError{})
}
