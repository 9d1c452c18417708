// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package values derives the value of every manifest placeholder from a job
configuration.

Derivations include unit conversions (minutes to seconds, CPU headroom),
fallback defaults, container names derived from image references and the
JSON encoding of command arguments. Placeholders without a value are
removed from the manifest together with the line they appear on.
*/
package values
