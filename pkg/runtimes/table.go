// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

// Table renders discovered runtimes for terminal presentation, one row per
// installation, preferred pick starred.
func Table(versions []RuntimeVersion, preferred RuntimeVersion) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Rows(lo.Map(versions, func(v RuntimeVersion, _ int) []string {
			indicator := ""
			if !preferred.Empty() && v.sameInstallation(preferred) {
				indicator = "*"
			}
			return []string{
				indicator,
				v.Version.SemVer().String(),
				v.Arch.String(),
				v.HomeDir,
			}
		})...).
		Render()
}
