// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config holds the typed description of a job to template (JobConfig),
the optional TOML defaults file that pre-populates it, and the errors
reported for invalid or conflicting configuration.

Optional values are pointers (or nil slices): nil means "not given", which
is distinct from an explicitly empty value.
*/
package config
