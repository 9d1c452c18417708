// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading template data from various
file or file-like Source's and for writing rendered manifests to filesystem
files.

Rendered manifests handed to other processes are written to temporary files
that are synced to disk and closed before their path is made available.
*/
package files
