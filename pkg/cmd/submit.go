// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

type SubmitOptions struct {
	JobFlags     JobFlags
	ClusterFlags ClusterFlags
	KeepManifest bool
	Debug        bool
}

func NewSubmitOptions() *SubmitOptions {
	return &SubmitOptions{}
}

func NewSubmitCmd(o *SubmitOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "submit [-- command args...]",
		Aliases: []string{"batch", "b"},
		Short:   "Render job manifest and submit it to the cluster",
		Args:    cobra.ArbitraryArgs,
		RunE:    func(c *cobra.Command, args []string) error { return o.Run(c, args) },
	}
	o.JobFlags.Set(cmd)
	o.ClusterFlags.Set(cmd)
	cmd.Flags().BoolVar(&o.KeepManifest, "keep-manifest", false, "Keep rendered manifest file and print its path")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *SubmitOptions) Run(cmd *cobra.Command, args []string) error {
	ui := newUI(cmd, o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	cfg, err := o.JobFlags.JobConfig(cmd.Flags(), args, hasCmdArgs(cmd, args))
	if err != nil {
		return err
	}

	tmpFile, err := newEngine(&o.ClusterFlags, ui).Generate(cfg)
	if err != nil {
		return err
	}

	if o.KeepManifest {
		ui.Warnf("Manifest: %s\n", tmpFile.Path())
	} else {
		defer tmpFile.Remove()
	}

	return o.ClusterFlags.Jobs(ui).Submit(cmd.Context(), tmpFile.Path(), ui.Stdout(), ui.Stderr())
}
