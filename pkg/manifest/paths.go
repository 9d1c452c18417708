// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
)

const (
	podSpecPath      = "spec.template.spec"
	nodeSelectorPath = podSpecPath + ".nodeSelector"
	containersPath   = podSpecPath + ".containers"
	tolerationsPath  = podSpecPath + ".tolerations"
	volumesPath      = podSpecPath + ".volumes"

	commandKey      = "command"
	volumeMountsKey = "volumeMounts"
)

func containerPath(i int) string {
	return fmt.Sprintf("%s.%d", containersPath, i)
}

func volumeMountsPath(i int) string {
	return fmt.Sprintf("%s.%s", containerPath(i), volumeMountsKey)
}
