// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"carvel.dev/kjob/pkg/kubectl"
	"github.com/spf13/cobra"
)

type ListOptions struct {
	ClusterFlags ClusterFlags
	Selector     string
	Debug        bool
}

func NewListOptions() *ListOptions {
	return &ListOptions{}
}

func NewListCmd(o *ListOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List jobs",
		RunE:    func(c *cobra.Command, _ []string) error { return o.Run(c) },
	}
	o.ClusterFlags.Set(cmd)
	cmd.Flags().StringVarP(&o.Selector, "selector", "l", "", "Label selector (eg 'team=ml')")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ListOptions) Run(cmd *cobra.Command) error {
	ui := newUI(cmd, o.Debug)

	jobs, err := o.ClusterFlags.Jobs(ui).List(cmd.Context(), o.Selector)
	if err != nil {
		return err
	}

	now := time.Now()

	w := tabwriter.NewWriter(ui.Stdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tACTIVE\tSUCCEEDED\tFAILED\tDURATION\tAGE")

	for _, job := range jobs {
		s := kubectl.Summarize(job, now)
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n", s.Name, s.Status,
			s.Active, s.Succeeded, s.Failed, formatDuration(s.Duration), formatDuration(s.Age))
	}

	return w.Flush()
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(time.Second).String()
}
