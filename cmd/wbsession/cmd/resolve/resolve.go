// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"workbench.dev/x/session/pkg/sessionconfig"
	"workbench.dev/x/session/pkg/utils"
)

func printWarnings(p utils.RawPrinter, warnings []string) {
	for _, w := range warnings {
		p.PrintErrln(color.YellowString("warning: %s", w))
	}
}

func Cmd() *cobra.Command {
	var optionsFile string
	var apply bool
	var verify bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "resolve the session configuration",
		Long: `resolve the session configuration

	discovers the install root, resolves every bundled resource path, derives
	the session scope and prints the resolved record. With --apply, the
	environment mutations (one-shot variables cleared, key material published)
	are replayed onto this process before printing.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sessionconfig.DefaultOptions()
			if optionsFile != "" {
				var err error
				opts, err = sessionconfig.LoadOptionsFile(optionsFile)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("mode") {
				opts.ProgramMode, _ = cmd.Flags().GetString("mode")
			}
			if cmd.Flags().Changed("project-id") {
				opts.ProjectID, _ = cmd.Flags().GetString("project-id")
			}
			if cmd.Flags().Changed("scope-id") {
				opts.ScopeID, _ = cmd.Flags().GetString("scope-id")
			}
			opts.VerifyInstallation = opts.VerifyInstallation || verify

			exePath, err := os.Executable()
			if err != nil {
				return err
			}

			inputs := sessionconfig.RawInputs{
				Args:           os.Args,
				Environ:        sessionconfig.EnvironFromOS(),
				Options:        opts,
				ExecutablePath: exePath,
			}

			cfg, result, err := sessionconfig.Resolve(inputs)
			printWarnings(cmd, result.Warnings)
			if err != nil {
				return err
			}

			if apply {
				if err := sessionconfig.Apply(result.EnvMutations); err != nil {
					return err
				}
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			cmd.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&optionsFile, "options-file", "", "path to the YAML options file")
	cmd.Flags().String("mode", "", "program mode (desktop or server)")
	cmd.Flags().String("project-id", "", "project identifier of the session scope")
	cmd.Flags().String("scope-id", "", "scope identifier of the session scope")
	cmd.Flags().BoolVar(&verify, "verify-installation", false, "run in installation verification mode")
	cmd.Flags().BoolVar(&apply, "apply", false, "apply the resolved environment mutations to this process")

	return cmd
}
