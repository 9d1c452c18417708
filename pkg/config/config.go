// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"carvel.dev/kjob/pkg/orderedmap"
)

// LabelArguments are node labels that have a dedicated field (and flag)
// instead of being passed as generic label=value pairs.
var LabelArguments = []string{"partition"}

type JobConfig struct {
	// Template is a path to a template file ("-" for stdin).
	// Empty selects the built-in default manifest.
	Template string

	Name          *string
	ContainerName *string
	Image         *string

	// CmdArgs is nil when no arguments were given, which is different
	// from an empty list.
	CmdArgs []string
	Script  string

	TimeMinutes *int

	CPU         *string
	CPULimit    *string
	Memory      *string
	MemoryLimit *string
	Disk        *string
	DiskLimit   *string

	PersistentDiskName *string
	MountPath          *string
	VolumeName         *string
	VolumeReadWrite    bool

	Preemptible bool
	RetryLimit  *int

	// Labels are "key=value" node selector pairs.
	Labels    []string
	Partition *string
}

// NamedLabels returns non-empty label values that were given through
// dedicated fields, in LabelArguments order.
func (c JobConfig) NamedLabels() *orderedmap.Map[string, string] {
	result := orderedmap.NewMap[string, string]()

	for _, name := range LabelArguments {
		var val *string

		switch name {
		case "partition":
			val = c.Partition
		}

		if val != nil && len(*val) > 0 {
			result.Set(name, *val)
		}
	}
	return result
}

// HasTemplate reports whether a template other than the built-in one was requested.
func (c JobConfig) HasTemplate() bool { return len(c.Template) > 0 }

// HasImage reports whether a non-empty image was given.
func (c JobConfig) HasImage() bool { return c.Image != nil && len(*c.Image) > 0 }
