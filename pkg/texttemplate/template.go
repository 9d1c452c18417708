// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"strings"
)

const lineSep = "\n"

// Token returns the literal text marker for a placeholder name, eg "$(JOB_NAME)".
func Token(name string) string {
	return fmt.Sprintf("$(%s)", name)
}

// Substitute replaces every occurrence of name's token with value.
// When value is nil, lines containing the token are dropped instead.
func Substitute(lines []string, name string, value *string) []string {
	token := Token(name)
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		if value == nil {
			if !strings.Contains(line, token) {
				result = append(result, line)
			}
			continue
		}
		result = append(result, strings.ReplaceAll(line, token, *value))
	}

	return result
}

// Template is a text split into lines, ready for substitution.
type Template struct {
	lines []string
}

func NewTemplate(text string) *Template {
	return &Template{lines: strings.Split(text, lineSep)}
}

// Apply substitutes every placeholder in values, in the order values holds them.
func (t *Template) Apply(values *Values) string {
	lines := t.lines
	values.Iterate(func(name string, value *string) {
		lines = Substitute(lines, name, value)
	})
	return strings.Join(lines, lineSep)
}
