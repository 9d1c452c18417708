// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigurationError reports missing or invalid job configuration.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string { return e.Reason }

// DuplicateLabelError is a ConfigurationError raised when a node label is
// given both as a dedicated argument and as a generic label pair.
type DuplicateLabelError struct {
	Labels []string
}

func NewDuplicateLabelError(labels []string) DuplicateLabelError {
	sorted := append([]string{}, labels...)
	sort.Strings(sorted)
	return DuplicateLabelError{Labels: sorted}
}

func (e DuplicateLabelError) Error() string {
	return fmt.Sprintf("You cannot specify \"%s\" as labels since you specified them as CLI arguments",
		strings.Join(e.Labels, ", "))
}

func (e DuplicateLabelError) Unwrap() error {
	return ConfigurationError{Reason: e.Error()}
}
