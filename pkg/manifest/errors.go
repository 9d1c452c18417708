// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"strings"
)

// StructureError indicates that a manifest lacks a section that an
// optional fragment has to be inserted into.
type StructureError struct {
	Fragment string
	Paths    []string
	// Requirement further describes what is expected at Paths.
	Requirement string
}

func (e StructureError) Error() string {
	msg := fmt.Sprintf("Could not determine where to insert %s configuration, "+
		"ensure your yaml file contains the sections %s", e.Fragment, strings.Join(e.Paths, " and "))
	if len(e.Requirement) > 0 {
		msg += " " + e.Requirement
	}
	return msg
}
