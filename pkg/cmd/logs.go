// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

type LogsOptions struct {
	ClusterFlags ClusterFlags
	Follow       bool
	Debug        bool
}

func NewLogsOptions() *LogsOptions {
	return &LogsOptions{}
}

func NewLogsCmd(o *LogsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs JOB",
		Short: "Print job logs",
		Args:  cobra.ExactArgs(1),
		RunE:  func(c *cobra.Command, args []string) error { return o.Run(c, args[0]) },
	}
	o.ClusterFlags.Set(cmd)
	cmd.Flags().BoolVarP(&o.Follow, "follow", "f", false, "Stream logs until the job finishes")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *LogsOptions) Run(cmd *cobra.Command, name string) error {
	ui := newUI(cmd, o.Debug)
	return o.ClusterFlags.Jobs(ui).Logs(cmd.Context(), name, o.Follow, ui.Stdout(), ui.Stderr())
}
