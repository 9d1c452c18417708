// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/kjob/pkg/cmd/ui"
	"carvel.dev/kjob/pkg/kubectl"
	"github.com/spf13/cobra"
)

type ClusterFlags struct {
	KubectlPath string
	Namespace   string
}

func (s *ClusterFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.KubectlPath, "kubectl-path", kubectl.DefaultBinaryPath, "Path to kubectl binary")
	cmd.Flags().StringVar(&s.Namespace, "namespace", "", "Namespace of jobs (defaults to kubectl's current namespace)")
}

func (s *ClusterFlags) Runner(ui ui.UI) kubectl.Runner {
	return kubectl.NewExecRunner(s.KubectlPath, ui)
}

func (s *ClusterFlags) Jobs(ui ui.UI) kubectl.Jobs {
	return kubectl.NewJobs(s.Runner(ui), s.Namespace)
}

func newUI(cmd *cobra.Command, debug bool) ui.UI {
	return ui.NewCustomWriterTTY(debug, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
