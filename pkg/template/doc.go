// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package template turns a job configuration and a base manifest into a
finished Kubernetes Job manifest.

At its heart, a manifest template is YAML text containing placeholder
tokens (eg "$(JOB_NAME)"). It is parsed into a yamlmeta.Document, patched
with optional sections, printed back to text and finally has its
placeholders substituted line by line. Placeholders without a value remove
the whole line they appear on.

When no template is given, a built-in default manifest is used.
*/
package template
