// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is the command-line interface of kjob.

Each command is built from an XOptions struct (holding flag values) and a
NewXCmd constructor; o.Run() does the work.
*/
package cmd
