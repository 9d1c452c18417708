// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"strings"

	"carvel.dev/kjob/pkg/config"
	"carvel.dev/kjob/pkg/orderedmap"
	"carvel.dev/kjob/pkg/yamlmeta"
)

const labelSep = "="

// ParseLabels turns "key=value" pairs into an ordered map. Pairs
// with an empty value are dropped; later pairs override earlier ones.
func ParseLabels(labels []string) (*orderedmap.Map[string, string], error) {
	result := orderedmap.NewMap[string, string]()

	for _, label := range labels {
		pieces := strings.Split(label, labelSep)
		if len(pieces) != 2 {
			return nil, config.ConfigurationError{
				Reason: fmt.Sprintf("Expected label '%s' to be in format 'key=value'", label)}
		}
		if len(pieces[1]) > 0 {
			result.Set(pieces[0], pieces[1])
		}
	}

	return result, nil
}

// MergeLabels combines generic label pairs with labels given through
// dedicated arguments. Naming the same label both ways is an error.
func MergeLabels(labels []string, named *orderedmap.Map[string, string]) (*orderedmap.Map[string, string], error) {
	result, err := ParseLabels(labels)
	if err != nil {
		return nil, err
	}

	var duplicates []string

	named.Iterate(func(name, _ string) {
		if result.Has(name) {
			duplicates = append(duplicates, name)
		}
	})

	if len(duplicates) > 0 {
		return nil, config.NewDuplicateLabelError(duplicates)
	}

	result.Merge(named)

	return result, nil
}

// AddNodeSelectors sets the pod node selector when there is at least one label.
func AddNodeSelectors(root yamlmeta.Node, labels *orderedmap.Map[string, string]) error {
	if labels.Len() == 0 {
		return nil
	}

	selector := yamlmeta.NewMap()

	labels.Iterate(func(name, val string) {
		selector.Set(name, yamlmeta.NewString(val))
	})

	return yamlmeta.Set(root, nodeSelectorPath, selector)
}
