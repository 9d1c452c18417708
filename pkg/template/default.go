// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	_ "embed"

	"carvel.dev/kjob/pkg/files"
)

const defaultTemplateDesc = "built-in default template"

//go:embed default.yaml
var defaultTemplate []byte

// DefaultSource returns the built-in manifest template.
func DefaultSource() files.Source {
	return files.NewBytesSource(defaultTemplateDesc, defaultTemplate)
}
