// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"strconv"
	"strings"
)

const pathSeparator = "."

// Get walks a dotted path (eg "spec.template.spec.containers.0") starting at
// root. Missing map keys and out-of-range sequence indexes short-circuit
// with def. An empty path returns root.
func Get(root Node, path string, def Node) (Node, error) {
	if len(path) == 0 {
		return root, nil
	}

	current := root

	for _, segment := range strings.Split(path, pathSeparator) {
		switch typedCurrent := current.(type) {
		case *Array:
			idx, ok := parseIndex(segment)
			if !ok {
				return nil, PathTypeError{Path: path, Segment: segment,
					Reason: "found a sequence, segment is not a valid integer index"}
			}
			if idx >= typedCurrent.Len() {
				return def, nil
			}
			current = typedCurrent.Items[idx]

		case *Map:
			val, found := typedCurrent.Get(segment)
			if !found {
				return def, nil
			}
			current = val

		default:
			if len(segment) > 0 {
				return nil, PathTypeError{Path: path, Segment: segment,
					Reason: "found a node that is neither a map nor a sequence"}
			}
		}
	}

	return current, nil
}

// ParentAndKey splits path at its last dot and resolves the node that
// holds the final key. Without a dot, root is the parent.
func ParentAndKey(root Node, path string) (Node, string, error) {
	var parent Node
	var key string

	lastSep := strings.LastIndex(path, pathSeparator)

	if lastSep == -1 {
		key = path
		parent = root
	} else {
		key = path[lastSep+1:]

		var err error

		parent, err = Get(root, path[:lastSep], nil)
		if err != nil {
			return nil, "", err
		}
	}

	if len(key) == 0 {
		return nil, "", PathFormatError{Path: path}
	}
	if IsFalsy(parent) {
		return nil, "", PathNotFoundError{Path: path}
	}

	return parent, key, nil
}

// Set assigns value at path. Map keys are created if missing;
// sequence indexes must already exist.
func Set(root Node, path string, value Node) error {
	parent, key, err := ParentAndKey(root, path)
	if err != nil {
		return err
	}

	switch typedParent := parent.(type) {
	case *Map:
		typedParent.Set(key, value)
		return nil

	case *Array:
		idx, err := arrayIndex(typedParent, path, key)
		if err != nil {
			return err
		}
		typedParent.Items[idx] = value
		return nil

	default:
		return PathTypeError{Path: path, Segment: key, Reason: "parent is neither a map nor a sequence"}
	}
}

// InsertOrAppend appends value to the sequence at path, creating
// a single item sequence if nothing is there yet.
func InsertOrAppend(root Node, path string, value Node) error {
	parent, key, err := ParentAndKey(root, path)
	if err != nil {
		return err
	}

	var existing Node

	switch typedParent := parent.(type) {
	case *Map:
		val, found := typedParent.Get(key)
		if !found {
			typedParent.Set(key, NewArray(value))
			return nil
		}
		existing = val

	case *Array:
		idx, err := arrayIndex(typedParent, path, key)
		if err != nil {
			return err
		}
		existing = typedParent.Items[idx]

	default:
		return PathTypeError{Path: path, Segment: key, Reason: "parent is neither a map nor a sequence"}
	}

	existingArray, ok := existing.(*Array)
	if !ok || existingArray == nil {
		return PathTypeError{Path: path, Segment: key, Reason: "existing value is not a sequence"}
	}

	existingArray.Append(value)
	return nil
}

func arrayIndex(array *Array, path, key string) (int, error) {
	idx, ok := parseIndex(key)
	if !ok {
		return 0, PathTypeError{Path: path, Segment: key,
			Reason: "found a sequence, segment is not a valid integer index"}
	}
	if idx >= array.Len() {
		return 0, PathNotFoundError{Path: path}
	}
	return idx, nil
}

// parseIndex only accepts base-10 non-negative integers (no sign).
func parseIndex(segment string) (int, bool) {
	if len(segment) == 0 {
		return 0, false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return idx, true
}
