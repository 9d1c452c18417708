// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package manifest applies structural edits to a parsed Job manifest before
placeholders are substituted.

Edits are made at fixed paths: node selectors, per container command
rewrites, preemptible tolerations and persistent disk volumes. Optional
fragments are either inserted whole or not at all.
*/
package manifest
