// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/kjob/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(c *cobra.Command, _ []string) error { return o.Run(c) },
	}
	return cmd
}

func (o *VersionOptions) Run(cmd *cobra.Command) error {
	newUI(cmd, false).Printf("kjob version %s\n", version.Version)

	return nil
}
