// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/kjob/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type KjobOptions struct{}

func NewDefaultKjobOptions() *KjobOptions {
	return &KjobOptions{}
}

func NewDefaultKjobCmd() *cobra.Command {
	return NewKjobCmd(NewDefaultKjobOptions())
}

func NewKjobCmd(_ *KjobOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kjob",
		Version: version.Version,
		Short:   "kjob renders and submits Kubernetes jobs",
		Long: `kjob renders and submits Kubernetes jobs.

Job manifests are rendered from a template (or a built-in default) by
replacing $(PLACEHOLDER) tokens with values given as flags. Placeholders
without a value remove the line they appear on.

Example:

  kjob submit --image busybox --cpu 2 --memory 1Gi -- echo hello`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewSubmitCmd(NewSubmitOptions()))
	cmd.AddCommand(NewTemplateCmd(NewTemplateOptions()))
	cmd.AddCommand(NewListCmd(NewListOptions()))
	cmd.AddCommand(NewStatusCmd(NewStatusOptions()))
	cmd.AddCommand(NewCancelCmd(NewCancelOptions()))
	cmd.AddCommand(NewLogsCmd(NewLogsOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		disallowUndeclaredArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

// disallowUndeclaredArgs leaves commands that declare their
// positional arguments alone.
func disallowUndeclaredArgs(cmd *cobra.Command) {
	if cmd.Args != nil {
		return
	}
	cobrautil.DisallowExtraArgs(cmd)
}
