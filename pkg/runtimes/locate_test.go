// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"workbench.dev/x/session/pkg/testutil"
)

const testLibraryName = "R.dll"

// fakeLibrary builds shared-library bytes carrying a sniffable architecture
// and an embedded file version.
func fakeLibrary(arch Architecture, v VersionNumber) []byte {
	machine := uint16(peMachineAMD64)
	if arch == ArchX86 {
		machine = peMachineI386
	}
	return append(peImage(machine), fixedFileInfo(v)...)
}

// installRuntime lays out a runtime home with a probe-able library under
// home/bin and returns the home directory.
func installRuntime(t *testing.T, home string, arch Architecture, v VersionNumber) string {
	t.Helper()
	testutil.WriteFile(t, filepath.Join(home, "bin", testLibraryName), fakeLibrary(arch, v))
	return home
}

func testLocator() *Locator {
	return &Locator{
		LibraryName:  testLibraryName,
		TargetArch:   ArchX64,
		MinimumMajor: minimumMajorVersion,
		MinimumMinor: minimumMinorVersion,
	}
}

func TestDiscoverAllFromWellKnownRoot(t *testing.T) {
	root := t.TempDir()
	home := installRuntime(t, filepath.Join(root, "R", "R-4.0.1"), ArchX64, VersionNumber{4, 0, 1, 0})

	l := testLocator()
	l.Environ = map[string]string{"ProgramFiles": root}

	found := l.DiscoverAll()
	require.Len(t, found, 1)
	assert.Equal(t, home, found[0].HomeDir)
	assert.Equal(t, VersionNumber{4, 0, 1, 0}, found[0].Version)
	assert.Equal(t, ArchX64, found[0].Arch)

	preferred, ok := l.PickPreferred(ArchX64, false)
	require.True(t, ok)
	assert.Equal(t, home, preferred.HomeDir)
}

func TestDiscoverAllFromRHome(t *testing.T) {
	home := installRuntime(t, t.TempDir(), ArchX64, VersionNumber{4, 2, 0, 0})

	l := testLocator()
	l.Environ = map[string]string{"R_HOME": home}

	found := l.DiscoverAll()
	require.Len(t, found, 1)
	assert.Equal(t, home, found[0].HomeDir)
}

func TestDiscoverAllDeduplicatesSources(t *testing.T) {
	root := t.TempDir()
	home := installRuntime(t, filepath.Join(root, "R", "R-4.0.1"), ArchX64, VersionNumber{4, 0, 1, 0})

	// the same installation reachable through R_HOME and the well-known root
	l := testLocator()
	l.Environ = map[string]string{
		"R_HOME":       home,
		"ProgramFiles": root,
	}

	found := l.DiscoverAll()
	require.Len(t, found, 1)
	assert.Equal(t, home, found[0].HomeDir)
}

func TestDiscoverAllFromDirStore(t *testing.T) {
	home := installRuntime(t, t.TempDir(), ArchX64, VersionNumber{4, 1, 0, 0})

	storeRoot := t.TempDir()
	testutil.WriteFile(t, filepath.Join(storeRoot, "current-user", "x64", "R-4.1.0", installPathValue), []byte(home+"\n"))

	l := testLocator()
	l.Store = DirStore{Root: storeRoot}

	found := l.DiscoverAll()
	require.Len(t, found, 1)
	assert.Equal(t, home, found[0].HomeDir)
}

func TestDiscoverAllFromCondaPrefix(t *testing.T) {
	prefix := t.TempDir()
	home := installRuntime(t, filepath.Join(prefix, "lib", "R"), ArchX64, VersionNumber{4, 0, 0, 0})

	l := testLocator()
	l.Environ = map[string]string{"CONDA_PREFIX": prefix}

	found := l.DiscoverAll()
	require.Len(t, found, 1)
	assert.Equal(t, home, found[0].HomeDir)
}

func TestDiscoverAllRejectsOldVersions(t *testing.T) {
	home := installRuntime(t, t.TempDir(), ArchX64, VersionNumber{2, 15, 3, 0})

	l := testLocator()
	l.Environ = map[string]string{"R_HOME": home}

	assert.Empty(t, l.DiscoverAll())
}

func TestDiscoverAllFiltersArchitecture(t *testing.T) {
	home := installRuntime(t, t.TempDir(), ArchX86, VersionNumber{4, 0, 1, 0})

	l := testLocator()
	l.Environ = map[string]string{"R_HOME": home}

	assert.Empty(t, l.DiscoverAll())

	l.TargetArch = ArchX86
	found := l.DiscoverAll()
	require.Len(t, found, 1)
	assert.Equal(t, ArchX86, found[0].Arch)
}

func TestStoreCurrentEntryWins(t *testing.T) {
	root := t.TempDir()
	installRuntime(t, filepath.Join(root, "R", "R-4.2.0"), ArchX64, VersionNumber{4, 2, 0, 0})
	older := installRuntime(t, filepath.Join(root, "R", "R-4.0.1"), ArchX64, VersionNumber{4, 0, 1, 0})

	storeRoot := t.TempDir()
	testutil.WriteFile(t, filepath.Join(storeRoot, "current-user", "x64", installPathValue), []byte(older))

	l := testLocator()
	l.Store = DirStore{Root: storeRoot}
	l.Environ = map[string]string{"ProgramFiles": root}

	// the recorded choice beats the higher-versioned auto-detected install
	preferred, ok := l.PickPreferred(ArchX64, false)
	require.True(t, ok)
	assert.Equal(t, older, preferred.HomeDir)
}

func TestPickPreferredOnly(t *testing.T) {
	home := installRuntime(t, t.TempDir(), ArchX64, VersionNumber{4, 0, 1, 0})

	l := testLocator()
	l.Environ = map[string]string{"R_HOME": home}

	_, ok := l.PickPreferred(ArchX64, true)
	assert.False(t, ok)

	preferred, ok := l.PickPreferred(ArchX64, false)
	require.True(t, ok)
	assert.Equal(t, home, preferred.HomeDir)
}

func TestDetectVersionsInDir(t *testing.T) {
	home := installRuntime(t, t.TempDir(), ArchX64, VersionNumber{4, 0, 1, 0})
	binDir := filepath.Join(home, "bin")

	l := testLocator()

	t.Run("bin directory", func(t *testing.T) {
		found := l.DetectVersionsInDir(binDir)
		require.Len(t, found, 1)
		assert.Equal(t, binDir, found[0].BinDir)
		assert.Equal(t, home, found[0].HomeDir)
	})

	t.Run("home directory", func(t *testing.T) {
		found := l.DetectVersionsInDir(home)
		require.Len(t, found, 1)
		assert.Equal(t, binDir, found[0].BinDir)
	})

	t.Run("unrelated directory", func(t *testing.T) {
		assert.Empty(t, l.DetectVersionsInDir(t.TempDir()))
	})
}
