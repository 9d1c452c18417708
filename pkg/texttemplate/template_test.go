// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"strings"
	"testing"

	"carvel.dev/kjob/pkg/texttemplate"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSubstitute(t *testing.T) {
	lines := []string{"line1: example", "line2: $(TEST_REPLACE)", "line3: $(SOMETHING_ELSE)"}

	replaced := texttemplate.Substitute(lines, "TEST_REPLACE", strPtr("value"))
	assert.Equal(t, []string{"line1: example", "line2: value", "line3: $(SOMETHING_ELSE)"}, replaced)

	deleted := texttemplate.Substitute(lines, "SOMETHING_ELSE", nil)
	assert.Equal(t, []string{"line1: example", "line2: $(TEST_REPLACE)"}, deleted)

	both := texttemplate.Substitute(replaced, "SOMETHING_ELSE", nil)
	assert.Equal(t, []string{"line1: example", "line2: value"}, both)

	// input is left as is
	assert.Equal(t, []string{"line1: example", "line2: $(TEST_REPLACE)", "line3: $(SOMETHING_ELSE)"}, lines)
}

func TestSubstituteReplacesEveryOccurrence(t *testing.T) {
	lines := []string{"generateName: $(JOB_NAME)-$(JOB_NAME)-"}

	result := texttemplate.Substitute(lines, "JOB_NAME", strPtr("kjob"))
	assert.Equal(t, []string{"generateName: kjob-kjob-"}, result)

	result = texttemplate.Substitute(lines, "JOB_NAME", strPtr(""))
	assert.Equal(t, []string{"generateName: --"}, result)
}

func TestSubstituteProperties(t *testing.T) {
	const name = "CPU_REQUEST"
	token := texttemplate.Token(name)

	f := fuzz.New().NilChance(0).NumElements(0, 30)

	for i := 0; i < 200; i++ {
		var plain []string
		var withToken []bool
		var value string

		f.Fuzz(&plain)
		f.Fuzz(&value)

		withToken = make([]bool, len(plain))
		f.NumElements(len(plain), len(plain)).Fuzz(&withToken)
		f.NumElements(0, 30)

		lines := make([]string, len(plain))
		var expectedKept []string
		tokenLines := 0

		for j, line := range plain {
			line = strings.ReplaceAll(line, "$(", "")
			if j < len(withToken) && withToken[j] {
				line = line + token + line
				tokenLines++
			} else {
				expectedKept = append(expectedKept, line)
			}
			lines[j] = line
		}

		deleted := texttemplate.Substitute(lines, name, nil)
		require.Len(t, deleted, len(lines)-tokenLines)
		if len(expectedKept) > 0 {
			require.Equal(t, expectedKept, deleted)
		}
		for _, line := range deleted {
			require.NotContains(t, line, token)
		}

		value = strings.ReplaceAll(value, "$(", "")
		replaced := texttemplate.Substitute(lines, name, &value)
		require.Len(t, replaced, len(lines))
		for j, line := range replaced {
			require.NotContains(t, line, token)
			if !strings.Contains(lines[j], token) {
				require.Equal(t, lines[j], line)
			}
		}
	}
}

func TestTemplateApplyUsesValuesOrder(t *testing.T) {
	values := texttemplate.NewValues([]string{"NAME", "IMAGE", "CPU"})
	values.SetString("NAME", "job")
	values.SetString("IMAGE", "busybox")

	tpl := texttemplate.NewTemplate("name: $(NAME)\nimage: $(IMAGE)\ncpu: $(CPU)\nenv: $(HOME)\n")

	assert.Equal(t, "name: job\nimage: busybox\nenv: $(HOME)\n", tpl.Apply(values))
	assert.Equal(t, []string{"HOME"}, values.Unknown("env: $(HOME) $(NAME) $(HOME)"))
}

func TestValues(t *testing.T) {
	values := texttemplate.NewValues([]string{"A", "B"})

	val, found := values.Get("A")
	require.True(t, found)
	require.Nil(t, val)

	original := "x"
	values.Set("A", &original)
	original = "changed"

	val, _ = values.Get("A")
	require.NotNil(t, val)
	assert.Equal(t, "x", *val)

	values.SetString("C", "c")
	values.Unset("A")

	val, found = values.Get("A")
	require.True(t, found)
	assert.Nil(t, val)
	assert.Equal(t, []string{"A", "B", "C"}, values.Names())
}
