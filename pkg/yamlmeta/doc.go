// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlmeta parses a YAML document into a small tree of yamlmeta.Node's
(Map, Array, Scalar), lets callers address locations within that tree with
dotted path expressions, and prints the tree back to YAML.

Map keys keep their original order and scalars keep their YAML tag, so a
parsed and re-printed document only differs from its source in layout.
*/
package yamlmeta
