// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"carvel.dev/kjob/pkg/yamlmeta"
)

// AddPreemptibleToleration allows the pod to be scheduled on preemptible nodes.
func AddPreemptibleToleration(root yamlmeta.Node) error {
	podSpec, err := yamlmeta.Get(root, podSpecPath, nil)
	if err != nil {
		return err
	}

	if yamlmeta.IsFalsy(podSpec) {
		return StructureError{Fragment: "preemptible nodes", Paths: []string{podSpecPath}}
	}

	return yamlmeta.InsertOrAppend(root, tolerationsPath, newPreemptibleToleration())
}

// AddPersistentDisk adds a persistent disk volume to the pod and mounts
// it into every container.
func AddPersistentDisk(root yamlmeta.Node) error {
	podSpec, err := yamlmeta.Get(root, podSpecPath, nil)
	if err != nil {
		return err
	}

	containers, err := yamlmeta.Get(root, containersPath, nil)
	if err != nil {
		return err
	}

	typedContainers, ok := containers.(*yamlmeta.Array)

	if yamlmeta.IsFalsy(podSpec) || !ok || typedContainers.Len() == 0 {
		return StructureError{
			Fragment:    "persistent disk",
			Paths:       []string{podSpecPath, containersPath},
			Requirement: "with at least one container",
		}
	}

	err = yamlmeta.InsertOrAppend(root, volumesPath, newPersistentDiskVolume())
	if err != nil {
		return err
	}

	for i := range typedContainers.Items {
		err := yamlmeta.InsertOrAppend(root, volumeMountsPath(i), newPersistentDiskMount())
		if err != nil {
			return err
		}
	}

	return nil
}
