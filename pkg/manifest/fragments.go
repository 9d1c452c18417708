// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"carvel.dev/kjob/pkg/texttemplate"
	"carvel.dev/kjob/pkg/values"
	"carvel.dev/kjob/pkg/yamlmeta"
)

func newPreemptibleToleration() *yamlmeta.Map {
	return yamlmeta.NewMapFromItems(
		yamlmeta.NewMapItem("key", yamlmeta.NewString("gke-preemptible")),
		yamlmeta.NewMapItem("operator", yamlmeta.NewString("Equal")),
		yamlmeta.NewMapItem("value", yamlmeta.NewString("true")),
		yamlmeta.NewMapItem("effect", yamlmeta.NewString("NoSchedule")),
	)
}

func newPersistentDiskVolume() *yamlmeta.Map {
	return yamlmeta.NewMapFromItems(
		yamlmeta.NewMapItem("name", placeholder(values.VolumeName)),
		yamlmeta.NewMapItem("gcePersistentDisk", yamlmeta.NewMapFromItems(
			yamlmeta.NewMapItem("pdName", placeholder(values.PDName)),
			yamlmeta.NewMapItem("fsType", yamlmeta.NewString("ext4")),
			yamlmeta.NewMapItem("readOnly", placeholder(values.VolumeReadOnly)),
		)),
	)
}

func newPersistentDiskMount() *yamlmeta.Map {
	return yamlmeta.NewMapFromItems(
		yamlmeta.NewMapItem("mountPath", placeholder(values.MountPath)),
		yamlmeta.NewMapItem("name", placeholder(values.VolumeName)),
		yamlmeta.NewMapItem("readOnly", placeholder(values.VolumeReadOnly)),
	)
}

func placeholder(name string) *yamlmeta.Scalar {
	return yamlmeta.NewString(texttemplate.Token(name))
}
