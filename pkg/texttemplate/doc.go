// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package texttemplate substitutes "$(NAME)" placeholder tokens in text, one
line at a time.

A placeholder that has no value removes every line it appears on, so
optional template entries must sit on their own line. There is no escaping,
no nesting and no further expansion of substituted values.
*/
package texttemplate
