// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"carvel.dev/kjob/pkg/config"
	"carvel.dev/kjob/pkg/values"
	"carvel.dev/kjob/pkg/yamlmeta"
)

// Patch applies every structural edit the job configuration asks for.
// Indexed command placeholders are registered in resolved.Values.
func Patch(doc *yamlmeta.Document, cfg config.JobConfig, resolved values.Resolved) error {
	labels, err := MergeLabels(cfg.Labels, cfg.NamedLabels())
	if err != nil {
		return err
	}

	err = AddNodeSelectors(doc.Value, labels)
	if err != nil {
		return err
	}

	if resolved.CmdArgs != nil {
		err = RewriteCommands(doc.Value, resolved.CmdArgs, resolved.Values)
		if err != nil {
			return err
		}
	}

	if cfg.Preemptible {
		err = AddPreemptibleToleration(doc.Value)
		if err != nil {
			return err
		}
	}

	if cfg.PersistentDiskName != nil && len(*cfg.PersistentDiskName) > 0 {
		err = AddPersistentDisk(doc.Value)
		if err != nil {
			return err
		}
	}

	return nil
}
