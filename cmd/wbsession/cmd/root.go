// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"workbench.dev/x/session/cmd/wbsession/cmd/resolve"
	"workbench.dev/x/session/cmd/wbsession/cmd/runtimes"
	"workbench.dev/x/session/pkg/buildinfo"
	"workbench.dev/x/session/pkg/logging"
)

const WbSessionName = "wbsession"

func RootCmd(ctx context.Context) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   WbSessionName,
		Short: "session host startup tooling",
	}

	if err := logging.InitLogging(); err != nil {
		return nil, err
	}

	cmd.AddCommand(
		resolve.Cmd(),
		runtimes.Cmd(),
	)

	version, err := yaml.Marshal(buildinfo.Get())
	if err != nil {
		return nil, err
	}
	cmd.Version = string(version)
	cmd.SetVersionTemplate("{{.Version}}")

	return cmd, nil
}
