// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"strings"

	"carvel.dev/kjob/pkg/manifest"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/pflag"
)

// LabelFlag collects repeated "key=value" node labels. Format is
// checked once all flags are parsed.
type LabelFlag struct {
	labels *[]string
}

var _ pflag.Value = LabelFlag{}
var _ cobrautil.ResolvableFlag = LabelFlag{}

func NewLabelFlag(labels *[]string) LabelFlag { return LabelFlag{labels} }

func (f LabelFlag) Set(val string) error {
	*f.labels = append(*f.labels, val)
	return nil
}

func (f LabelFlag) Type() string   { return "key=value" }
func (f LabelFlag) String() string { return strings.Join(*f.labels, ",") }

func (f LabelFlag) Resolve() error {
	_, err := manifest.ParseLabels(*f.labels)
	return err
}
