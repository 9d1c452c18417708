// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the kjob release version.
package version

// Version is set at build time (-ldflags "-X carvel.dev/kjob/pkg/version.Version=...").
var Version = "develop"
