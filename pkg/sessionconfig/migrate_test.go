// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacyState(t *testing.T) {
	home := t.TempDir()
	scratch := t.TempDir()

	legacyDir := filepath.Join(home, ".workbench")
	require.NoError(t, os.MkdirAll(filepath.Join(legacyDir, "sessions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(legacyDir, "sessions", "state"), []byte("old"), 0o644))

	require.NoError(t, migrateLegacyState(home, scratch, Desktop))

	migrated, err := os.ReadFile(filepath.Join(scratch, "sessions", "state"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(migrated))
	assert.FileExists(t, filepath.Join(scratch, migratedMarkerFile))
}

func TestMigrateLegacyStateRunsOnce(t *testing.T) {
	home := t.TempDir()
	scratch := t.TempDir()

	legacyDir := filepath.Join(home, ".workbench-server")
	require.NoError(t, os.MkdirAll(legacyDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(legacyDir, "state"), []byte("old"), 0o644))

	require.NoError(t, migrateLegacyState(home, scratch, Server))

	// state written since the first migration must survive a second run
	require.NoError(t, os.WriteFile(filepath.Join(legacyDir, "later"), []byte("x"), 0o644))
	require.NoError(t, migrateLegacyState(home, scratch, Server))
	assert.NoFileExists(t, filepath.Join(scratch, "later"))
}

func TestMigrateLegacyStateNothingToDo(t *testing.T) {
	scratch := t.TempDir()
	require.NoError(t, migrateLegacyState(t.TempDir(), scratch, Desktop))
	assert.NoFileExists(t, filepath.Join(scratch, migratedMarkerFile))
}

func TestMigrateLegacyStateKeepsExistingFiles(t *testing.T) {
	home := t.TempDir()
	scratch := t.TempDir()

	legacyDir := filepath.Join(home, ".workbench")
	require.NoError(t, os.MkdirAll(legacyDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(legacyDir, "state"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "state"), []byte("new"), 0o644))

	require.NoError(t, migrateLegacyState(home, scratch, Desktop))

	kept, err := os.ReadFile(filepath.Join(scratch, "state"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(kept))
}
