// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"path/filepath"
	"time"

	"carvel.dev/kjob/pkg/cmd/ui"
	"carvel.dev/kjob/pkg/files"
	"carvel.dev/kjob/pkg/kubectl"
	"carvel.dev/kjob/pkg/template"
	"carvel.dev/kjob/pkg/values"
	"github.com/spf13/cobra"
)

type TemplateOptions struct {
	JobFlags     JobFlags
	ClusterFlags ClusterFlags
	OutputFile   string
	Debug        bool
}

func NewTemplateOptions() *TemplateOptions {
	return &TemplateOptions{}
}

func NewTemplateCmd(o *TemplateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template [-- command args...]",
		Aliases: []string{"t", "tpl"},
		Short:   "Render job manifest without submitting it",
		Args:    cobra.ArbitraryArgs,
		RunE:    func(c *cobra.Command, args []string) error { return o.Run(c, args) },
	}
	o.JobFlags.Set(cmd)
	o.ClusterFlags.Set(cmd)
	cmd.Flags().StringVarP(&o.OutputFile, "output-file", "o", "", "Write manifest to file instead of stdout")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *TemplateOptions) Run(cmd *cobra.Command, args []string) error {
	ui := newUI(cmd, o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	cfg, err := o.JobFlags.JobConfig(cmd.Flags(), args, hasCmdArgs(cmd, args))
	if err != nil {
		return err
	}

	result, err := newEngine(&o.ClusterFlags, ui).Render(cfg)
	if err != nil {
		return err
	}

	if len(o.OutputFile) == 0 {
		ui.Printf("%s", result)
		return nil
	}

	outputFile := files.NewOutputFile(filepath.Base(o.OutputFile), []byte(result))

	err = outputFile.Create(filepath.Dir(o.OutputFile))
	if err != nil {
		return err
	}

	ui.Debugf("wrote manifest to %s\n", o.OutputFile)

	return nil
}

func newEngine(clusterFlags *ClusterFlags, ui ui.UI) template.Engine {
	checker := kubectl.NewVersionChecker(clusterFlags.Runner(ui))
	return template.NewEngine(values.NewResolver(checker), ui)
}

// hasCmdArgs reports whether command arguments were given, counting
// a bare "--" as an empty list of arguments.
func hasCmdArgs(cmd *cobra.Command, args []string) bool {
	return len(args) > 0 || cmd.ArgsLenAtDash() >= 0
}
