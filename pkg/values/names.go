// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"fmt"
)

const (
	JobName          = "JOB_NAME"
	ContainerName    = "CONTAINER_NAME"
	ContainerImage   = "CONTAINER_IMAGE"
	CmdArgs          = "CMD_ARGS"
	TimeLimitSeconds = "TIME_LIMIT_SECONDS"
	CPURequest       = "CPU_REQUEST"
	MemRequest       = "MEM_REQUEST"
	DiskRequest      = "DISK_REQUEST"
	CPULimit         = "CPU_LIMIT"
	MemLimit         = "MEM_LIMIT"
	DiskLimit        = "DISK_LIMIT"
	PDName           = "PD_NAME"
	MountPath        = "MOUNT_PATH"
	VolumeName       = "VOLUME_NAME"
	RetryLimit       = "RETRY_LIMIT"

	// VolumeReadOnly is substituted after every other placeholder
	// (including indexed command placeholders).
	VolumeReadOnly = "VOLUME_READ_ONLY"
)

const (
	DefaultJobName       = "kjob"
	DefaultContainerName = "container-job"
	DefaultMountPath     = "/static"
	DefaultVolumeName    = "k8s-job-volume"
)

var vocabulary = []string{
	JobName,
	ContainerName,
	ContainerImage,
	CmdArgs,
	TimeLimitSeconds,
	CPURequest,
	MemRequest,
	DiskRequest,
	CPULimit,
	MemLimit,
	DiskLimit,
	PDName,
	MountPath,
	VolumeName,
	RetryLimit,
}

// Vocabulary returns placeholder names in substitution order.
// VolumeReadOnly and indexed command placeholders are not included.
func Vocabulary() []string {
	return append([]string{}, vocabulary...)
}

// IndexedCmdArgs names the placeholder that holds the rewritten
// command of the i-th container.
func IndexedCmdArgs(i int) string {
	return fmt.Sprintf("%s%d", CmdArgs, i)
}
