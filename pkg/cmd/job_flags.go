// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/kjob/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// JobFlags describe the job to render. Only flags that were
// explicitly given end up in the job config; the rest may come from
// the defaults file.
type JobFlags struct {
	Template     string
	DefaultsFile string

	Name          string
	ContainerName string
	Image         string
	Script        string

	TimeMinutes int

	CPU         string
	CPULimit    string
	Memory      string
	MemoryLimit string
	Disk        string
	DiskLimit   string

	PersistentDiskName string
	MountPath          string
	VolumeName         string
	VolumeReadWrite    bool

	Preemptible bool
	RetryLimit  int

	Labels    []string
	Partition string
}

func (s *JobFlags) Set(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVarP(&s.Template, "file", "f", "", "Job template file path or URL ('-' for stdin); built-in template if not given")
	flags.StringVar(&s.DefaultsFile, "defaults-file", "",
		"Defaults file path (defaults to $"+config.DefaultsEnv+" or ~/.kjob.toml)")

	flags.StringVarP(&s.Name, "name", "n", "", "Job name prefix (default 'kjob')")
	flags.StringVar(&s.ContainerName, "container-name", "", "Container name (derived from image if not given)")
	flags.StringVarP(&s.Image, "image", "i", "", "Container image")
	flags.StringVar(&s.Script, "script", "", "Local script to run before command arguments")

	flags.IntVarP(&s.TimeMinutes, "time", "t", 0, "Time limit in minutes")

	flags.StringVarP(&s.CPU, "cpu", "c", "", "CPU request (eg '4', '3500m'); half a core is reserved")
	flags.StringVar(&s.CPULimit, "cpu-limit", "", "CPU limit")
	flags.StringVarP(&s.Memory, "memory", "m", "", "Memory request (eg '16Gi')")
	flags.StringVar(&s.MemoryLimit, "memory-limit", "", "Memory limit")
	flags.StringVarP(&s.Disk, "disk", "d", "", "Ephemeral storage request")
	flags.StringVar(&s.DiskLimit, "disk-limit", "", "Ephemeral storage limit")

	flags.StringVar(&s.PersistentDiskName, "persistent-disk-name", "", "GCE persistent disk to mount")
	flags.StringVar(&s.MountPath, "mount-path", "", "Persistent disk mount path (default '/static')")
	flags.StringVar(&s.VolumeName, "volume-name", "", "Persistent disk volume name (default 'k8s-job-volume')")
	flags.BoolVar(&s.VolumeReadWrite, "volume-read-write", false, "Mount persistent disk read-write")

	flags.BoolVar(&s.Preemptible, "preemptible", false, "Allow scheduling on preemptible nodes")
	flags.IntVar(&s.RetryLimit, "retry-limit", 0, "Number of retries before the job is considered failed")

	flags.VarP(NewLabelFlag(&s.Labels), "label", "l", "Node selector label (format: key=value) (can be specified multiple times)")
	flags.StringVar(&s.Partition, "partition", "", "Node selector for the 'partition' label")
}

// JobConfig builds the job config from given flags, positional command
// arguments and the defaults file. hasCmdArgs distinguishes no command
// arguments from an empty list (eg a bare "--").
func (s *JobFlags) JobConfig(flags *pflag.FlagSet, cmdArgs []string, hasCmdArgs bool) (config.JobConfig, error) {
	cfg := config.JobConfig{
		Template:        s.Template,
		Script:          s.Script,
		VolumeReadWrite: s.VolumeReadWrite,
		Preemptible:     s.Preemptible,
		Labels:          append([]string{}, s.Labels...),
	}

	if hasCmdArgs {
		cfg.CmdArgs = append([]string{}, cmdArgs...)
	}

	strs := []struct {
		name string
		val  string
		dst  **string
	}{
		{"name", s.Name, &cfg.Name},
		{"container-name", s.ContainerName, &cfg.ContainerName},
		{"image", s.Image, &cfg.Image},
		{"cpu", s.CPU, &cfg.CPU},
		{"cpu-limit", s.CPULimit, &cfg.CPULimit},
		{"memory", s.Memory, &cfg.Memory},
		{"memory-limit", s.MemoryLimit, &cfg.MemoryLimit},
		{"disk", s.Disk, &cfg.Disk},
		{"disk-limit", s.DiskLimit, &cfg.DiskLimit},
		{"persistent-disk-name", s.PersistentDiskName, &cfg.PersistentDiskName},
		{"mount-path", s.MountPath, &cfg.MountPath},
		{"volume-name", s.VolumeName, &cfg.VolumeName},
		{"partition", s.Partition, &cfg.Partition},
	}

	for _, str := range strs {
		if flags.Changed(str.name) {
			val := str.val
			*str.dst = &val
		}
	}

	if flags.Changed("time") {
		val := s.TimeMinutes
		cfg.TimeMinutes = &val
	}
	if flags.Changed("retry-limit") {
		val := s.RetryLimit
		cfg.RetryLimit = &val
	}

	defaultsPath := s.DefaultsFile
	if len(defaultsPath) == 0 {
		defaultsPath = config.DefaultsPath()
	}

	if len(defaultsPath) > 0 {
		defaults, err := config.LoadDefaults(defaultsPath)
		if err != nil {
			return config.JobConfig{}, err
		}
		defaults.ApplyTo(&cfg)

		// false is indistinguishable from unset in the config
		if flags.Changed("volume-read-write") {
			cfg.VolumeReadWrite = s.VolumeReadWrite
		}
		if flags.Changed("preemptible") {
			cfg.Preemptible = s.Preemptible
		}
	}

	return cfg, nil
}
