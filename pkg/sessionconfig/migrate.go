// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"context"
	"os"
	"path/filepath"

	"workbench.dev/x/session/pkg/utils"
)

const (
	migratedMarkerFile = "state-migrated"
	migrationLockFile  = ".migration.lock"
)

func legacyStateDirName(mode ProgramMode) string {
	if mode == Server {
		return ".workbench-server"
	}
	return ".workbench"
}

// migrateLegacyState moves state from the old dot-directory in the user home
// into the per-user data directory, once. Concurrent sessions racing on first
// start are serialized through a file lock; whoever wins copies, everyone
// else sees the marker. Failures are reported but never fatal.
func migrateLegacyState(homePath, scratchPath string, mode ProgramMode) error {
	legacyDir := filepath.Join(homePath, legacyStateDirName(mode))
	if exists, err := utils.DirExists(legacyDir); err != nil || !exists {
		return err
	}
	if utils.FileExists(filepath.Join(scratchPath, migratedMarkerFile)) {
		return nil
	}

	return utils.WithFileLock(context.Background(), filepath.Join(scratchPath, migrationLockFile), func() error {
		marker := filepath.Join(scratchPath, migratedMarkerFile)
		if utils.FileExists(marker) {
			return nil
		}
		if err := utils.CopyDir(legacyDir, scratchPath); err != nil {
			return err
		}
		return os.WriteFile(marker, []byte(legacyDir+"\n"), 0600)
	})
}
