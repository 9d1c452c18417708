// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultsEnv names the environment variable pointing at a defaults file.
	DefaultsEnv = "KJOB_DEFAULTS"

	defaultsFileName = ".kjob.toml"
)

// Defaults are user-wide values used for fields that were not set
// on the command line. Example file:
//
//	image = "gcr.io/project/worker:latest"
//	cpu = "4"
//	memory = "16Gi"
//	partition = "batch"
//	labels = ["pool=highmem"]
type Defaults struct {
	Template      *string `toml:"template"`
	Name          *string `toml:"name"`
	ContainerName *string `toml:"container_name"`
	Image         *string `toml:"image"`

	TimeMinutes *int `toml:"time"`

	CPU         *string `toml:"cpu"`
	CPULimit    *string `toml:"cpu_limit"`
	Memory      *string `toml:"memory"`
	MemoryLimit *string `toml:"memory_limit"`
	Disk        *string `toml:"disk"`
	DiskLimit   *string `toml:"disk_limit"`

	PersistentDiskName *string `toml:"persistent_disk_name"`
	MountPath          *string `toml:"mount_path"`
	VolumeName         *string `toml:"volume_name"`
	VolumeReadWrite    *bool   `toml:"volume_read_write"`

	Preemptible *bool `toml:"preemptible"`
	RetryLimit  *int  `toml:"retry_limit"`

	Labels    []string `toml:"labels"`
	Partition *string  `toml:"partition"`
}

// DefaultsPath returns the defaults file to use when none was given
// explicitly: $KJOB_DEFAULTS, or ~/.kjob.toml if it exists. Returns
// empty string when there is none.
func DefaultsPath() string {
	if path := os.Getenv(DefaultsEnv); len(path) > 0 {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	path := filepath.Join(home, defaultsFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func LoadDefaults(path string) (Defaults, error) {
	var defaults Defaults

	md, err := toml.DecodeFile(path, &defaults)
	if err != nil {
		return Defaults{}, ConfigurationError{
			Reason: fmt.Sprintf("Decoding defaults file '%s': %s", path, err)}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Defaults{}, ConfigurationError{
			Reason: fmt.Sprintf("Unknown keys in defaults file '%s': %s", path, strings.Join(keys, ", "))}
	}

	return defaults, nil
}

// ApplyTo fills fields of cfg that were not set. Labels are
// prepended so that explicitly given pairs come last. Boolean fields
// are set whenever they are false; callers restore explicit false values.
func (d Defaults) ApplyTo(cfg *JobConfig) {
	if len(cfg.Template) == 0 && d.Template != nil {
		cfg.Template = *d.Template
	}

	fillString(&cfg.Name, d.Name)
	fillString(&cfg.ContainerName, d.ContainerName)
	fillString(&cfg.Image, d.Image)
	fillString(&cfg.CPU, d.CPU)
	fillString(&cfg.CPULimit, d.CPULimit)
	fillString(&cfg.Memory, d.Memory)
	fillString(&cfg.MemoryLimit, d.MemoryLimit)
	fillString(&cfg.Disk, d.Disk)
	fillString(&cfg.DiskLimit, d.DiskLimit)
	fillString(&cfg.PersistentDiskName, d.PersistentDiskName)
	fillString(&cfg.MountPath, d.MountPath)
	fillString(&cfg.VolumeName, d.VolumeName)
	fillString(&cfg.Partition, d.Partition)

	if cfg.TimeMinutes == nil && d.TimeMinutes != nil {
		val := *d.TimeMinutes
		cfg.TimeMinutes = &val
	}
	if cfg.RetryLimit == nil && d.RetryLimit != nil {
		val := *d.RetryLimit
		cfg.RetryLimit = &val
	}
	if !cfg.VolumeReadWrite && d.VolumeReadWrite != nil {
		cfg.VolumeReadWrite = *d.VolumeReadWrite
	}
	if !cfg.Preemptible && d.Preemptible != nil {
		cfg.Preemptible = *d.Preemptible
	}

	if len(d.Labels) > 0 {
		cfg.Labels = append(append([]string{}, d.Labels...), cfg.Labels...)
	}
}

func fillString(dst **string, src *string) {
	if *dst == nil && src != nil {
		val := *src
		*dst = &val
	}
}
