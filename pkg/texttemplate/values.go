// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"carvel.dev/kjob/pkg/orderedmap"
)

// Values maps placeholder names to optional values. Iteration order
// is the order in which names were first added.
type Values struct {
	values *orderedmap.Map[string, *string]
}

// NewValues registers every name of the vocabulary without a value.
func NewValues(vocabulary []string) *Values {
	values := &Values{orderedmap.NewMap[string, *string]()}
	for _, name := range vocabulary {
		values.values.Set(name, nil)
	}
	return values
}

func (v *Values) Set(name string, value *string) {
	if value != nil {
		copied := *value
		value = &copied
	}
	v.values.Set(name, value)
}

func (v *Values) SetString(name, value string) { v.Set(name, &value) }

// Unset keeps name registered, so that its lines get removed.
func (v *Values) Unset(name string) { v.values.Set(name, nil) }

func (v *Values) Get(name string) (*string, bool) { return v.values.Get(name) }

func (v *Values) Names() []string { return v.values.Keys() }

func (v *Values) Iterate(iterFunc func(name string, value *string)) {
	v.values.Iterate(iterFunc)
}

// Unknown lists names of tokens in text that are not registered. Such
// tokens are left untouched by Apply (eg Kubernetes "$(VAR)" env references).
func (v *Values) Unknown(text string) []string {
	var unknown []string

	for _, name := range placeholderNames(text) {
		if !v.values.Has(name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
