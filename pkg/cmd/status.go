// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"carvel.dev/kjob/pkg/kubectl"
	"github.com/spf13/cobra"
)

type StatusOptions struct {
	ClusterFlags ClusterFlags
	Debug        bool
}

func NewStatusOptions() *StatusOptions {
	return &StatusOptions{}
}

func NewStatusCmd(o *StatusOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status JOB",
		Short: "Show job status",
		Args:  cobra.ExactArgs(1),
		RunE:  func(c *cobra.Command, args []string) error { return o.Run(c, args[0]) },
	}
	o.ClusterFlags.Set(cmd)
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *StatusOptions) Run(cmd *cobra.Command, name string) error {
	ui := newUI(cmd, o.Debug)

	job, err := o.ClusterFlags.Jobs(ui).Get(cmd.Context(), name)
	if err != nil {
		return err
	}

	s := kubectl.Summarize(job, time.Now())

	ui.Printf("Name:       %s\n", s.Name)
	ui.Printf("Status:     %s\n", s.Status)
	ui.Printf("Pods:       %d active / %d succeeded / %d failed\n", s.Active, s.Succeeded, s.Failed)
	ui.Printf("Duration:   %s\n", formatDuration(s.Duration))
	ui.Printf("Age:        %s\n", formatDuration(s.Age))

	return nil
}
