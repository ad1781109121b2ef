// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"workbench.dev/x/session/pkg/runtimes"
	"workbench.dev/x/session/pkg/sessionconfig"
)

var ErrNoRuntimeFound = fmt.Errorf("no valid runtime installation found")

func Cmd() *cobra.Command {
	var archStr, output string
	var preferredOnly bool

	cmd := &cobra.Command{
		Use:   "runtimes",
		Short: "list installed R runtimes",
		Long: `list installed R runtimes

	enumerates every discovery source (R_HOME, conda layouts, the version
	store, well-known installation roots), validates and ranks the candidates
	and marks the preferred pick.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			arch, err := runtimes.ParseArchitecture(archStr)
			if err != nil {
				return err
			}

			locator := runtimes.NewLocator()
			locator.TargetArch = arch
			locator.Environ = sessionconfig.EnvironFromOS()

			preferred, havePreferred := locator.PickPreferred(arch, preferredOnly)

			if preferredOnly {
				if !havePreferred {
					return ErrNoRuntimeFound
				}
				cmd.Println(preferred.Description())
				return nil
			}

			versions := locator.DiscoverAll()
			if len(versions) == 0 {
				return ErrNoRuntimeFound
			}

			if output == "json" {
				rows := lo.Map(versions, func(v runtimes.RuntimeVersion, _ int) map[string]string {
					return map[string]string{
						"version":   v.Version.SemVer().String(),
						"arch":      v.Arch.String(),
						"home-dir":  v.HomeDir,
						"bin-dir":   v.BinDir,
						"preferred": fmt.Sprintf("%t", havePreferred && v.HomeDir == preferred.HomeDir),
					}
				})
				out, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Println(runtimes.Table(versions, preferred))
			return nil
		},
	}

	cmd.Flags().StringVar(&archStr, "arch", "x64", "target architecture (x64 or x86)")
	cmd.Flags().BoolVar(&preferredOnly, "preferred", false, "print only the preferred runtime, failing when none is registered")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table or json)")

	return cmd
}
