// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates a file (and its parents) under a test tree.
func WriteFile(t *testing.T, path string, contents []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, contents, 0o644))
}

// InstallTree lays out a minimal install root: a bin directory holding a
// fake session executable, with sibling resource directories. Returns the
// root and the executable path.
func InstallTree(t *testing.T) (root, exePath string) {
	t.Helper()
	root = t.TempDir()
	exePath = filepath.Join(root, "bin", "wbsession")
	WriteFile(t, exePath, []byte("#!/bin/sh\n"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resources"), 0o755))
	return root, exePath
}
