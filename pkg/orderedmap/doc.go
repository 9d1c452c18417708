// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

kjob relies on it for the placeholder value set (substitution runs in
vocabulary order) and for node selector labels, so that rendered manifests
are deterministic and stable.
*/
package orderedmap
