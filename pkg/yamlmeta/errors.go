// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"
)

// PathTypeError indicates that a path segment cannot be applied to the
// node it addresses (eg a non-integer index into a sequence, or any key
// into a scalar).
type PathTypeError struct {
	Path    string
	Segment string
	Reason  string
}

func (e PathTypeError) Error() string {
	return fmt.Sprintf("Expected path '%s' to be addressable at '%s': %s", e.Path, e.Segment, e.Reason)
}

// PathFormatError indicates a path that cannot name a key to update
// (empty, or ending in a dot).
type PathFormatError struct {
	Path string
}

func (e PathFormatError) Error() string {
	return fmt.Sprintf("Expected path '%s' to end with a non-empty key "+
		"(path must not be empty or end in '%s')", e.Path, pathSeparator)
}

// PathNotFoundError indicates that the node which should hold the last
// path segment is missing or empty.
type PathNotFoundError struct {
	Path string
}

func (e PathNotFoundError) Error() string {
	return fmt.Sprintf("Expected path '%s' to be found in document", e.Path)
}
