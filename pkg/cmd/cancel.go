// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

type CancelOptions struct {
	ClusterFlags ClusterFlags
	Debug        bool
}

func NewCancelOptions() *CancelOptions {
	return &CancelOptions{}
}

func NewCancelCmd(o *CancelOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cancel JOB",
		Aliases: []string{"delete"},
		Short:   "Cancel job and delete its pods",
		Args:    cobra.ExactArgs(1),
		RunE:    func(c *cobra.Command, args []string) error { return o.Run(c, args[0]) },
	}
	o.ClusterFlags.Set(cmd)
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *CancelOptions) Run(cmd *cobra.Command, name string) error {
	ui := newUI(cmd, o.Debug)
	return o.ClusterFlags.Jobs(ui).Cancel(cmd.Context(), name, ui.Stdout(), ui.Stderr())
}
