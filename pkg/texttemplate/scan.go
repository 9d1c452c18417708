// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"regexp"
)

var placeholderRegexp = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// placeholderNames lists distinct names of tokens found in text,
// in order of first appearance.
func placeholderNames(text string) []string {
	var names []string
	seen := map[string]struct{}{}

	for _, match := range placeholderRegexp.FindAllStringSubmatch(text, -1) {
		if _, found := seen[match[1]]; found {
			continue
		}
		seen[match[1]] = struct{}{}
		names = append(names, match[1])
	}
	return names
}
