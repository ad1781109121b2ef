// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/samber/lo"
	"workbench.dev/x/session/pkg/utils"
	"workbench.dev/x/session/pkg/utils/stringset"
)

// Minimum runtime version hosted sessions can embed.
const (
	minimumMajorVersion = 3
	minimumMinorVersion = 0
)

// sharedLibraryName is the runtime library probed inside a bin directory.
func sharedLibraryName(goos string) string {
	switch goos {
	case "windows":
		return "R.dll"
	case "darwin":
		return "libR.dylib"
	default:
		return "libR.so"
	}
}

// wellKnownRootVars name the installation roots scanned brute-force, in
// order. Duplicate values (common for ProgramFiles vs ProgramW6432) are
// collapsed.
var wellKnownRootVars = []string{"ProgramFiles", "ProgramW6432", "ProgramFiles(x86)"}

// Locator discovers installed runtimes. The zero value is not usable; call
// NewLocator for a locator wired to this host, then override fields for
// tests.
type Locator struct {
	// Store is the registry-like record of installed runtimes.
	Store VersionStore

	// Environ snapshots the variables discovery reads (R_HOME, CONDA_PREFIX,
	// the well-known roots). Nil means empty.
	Environ map[string]string

	// ExecutableDir anchors the conda relative-layout probes.
	ExecutableDir string

	// LibraryName overrides the probed shared library name. Empty means the
	// host default.
	LibraryName string

	// TargetArch is the architecture sessions must match.
	TargetArch Architecture

	// MinimumMajor and MinimumMinor gate candidate versions.
	MinimumMajor, MinimumMinor int
}

func NewLocator() *Locator {
	exeDir, err := utils.ExecutableDir()
	if err != nil {
		exeDir = ""
	}
	return &Locator{
		Store:         PlatformStore(),
		Environ:       nil,
		ExecutableDir: exeDir,
		LibraryName:   sharedLibraryName(runtime.GOOS),
		TargetArch:    ArchX64,
		MinimumMajor:  minimumMajorVersion,
		MinimumMinor:  minimumMinorVersion,
	}
}

func (l *Locator) env(name string) string {
	if l.Environ == nil {
		return ""
	}
	return l.Environ[name]
}

func (l *Locator) libName() string {
	if l.LibraryName != "" {
		return l.LibraryName
	}
	return sharedLibraryName(runtime.GOOS)
}

// versionsFromHome appends candidate bin directories found under a runtime
// home. The candidates may not be valid.
func (l *Locator) versionsFromHome(home string, results *[]RuntimeVersion) {
	if home == "" {
		return
	}
	for _, sub := range []string{"bin", filepath.Join("bin", "x64")} {
		binDir := filepath.Join(home, sub)
		if utils.FileExists(filepath.Join(binDir, l.libName())) {
			*results = append(*results, newRuntimeVersion(binDir, l.libName()))
		}
	}
}

// DetectVersionsInDir interprets a user-chosen directory as either a bin
// directory or a runtime home and returns the candidates found there.
func (l *Locator) DetectVersionsInDir(dir string) []RuntimeVersion {
	if utils.FileExists(filepath.Join(dir, l.libName())) {
		return []RuntimeVersion{newRuntimeVersion(dir, l.libName())}
	}
	if filepath.Base(filepath.Clean(dir)) == "bin" {
		dir = binDirToHomeDir(filepath.Clean(dir))
	}
	var results []RuntimeVersion
	l.versionsFromHome(dir, &results)
	return results
}

// enumStore appends every installation registered in the version store for
// the target architecture, both scopes.
func (l *Locator) enumStore(results *[]RuntimeVersion) {
	if l.Store == nil {
		return
	}
	for _, scope := range storeScopes {
		keys, err := l.Store.ListKeys(scope, l.TargetArch)
		if err != nil {
			slog.Warn("unable to enumerate version store", "scope", scope.String(), "err", err)
			continue
		}
		for _, key := range keys {
			if installPath, ok := l.Store.GetString(scope, l.TargetArch, key, installPathValue); ok {
				l.versionsFromHome(installPath, results)
			}
		}
	}
}

// enumWellKnownRoots scans each program-files style root for an "R"
// subfolder whose immediate children are version homes.
func (l *Locator) enumWellKnownRoots(results *[]RuntimeVersion) {
	seen := stringset.StringSet{}
	for _, name := range wellKnownRootVars {
		root := l.env(name)
		if root == "" || seen.Contains(root) {
			continue
		}
		seen.Add(root)
		if !filepath.IsAbs(root) {
			continue
		}
		entries, err := filepath.Glob(filepath.Join(root, "R", "*"))
		if err != nil {
			continue
		}
		for _, home := range entries {
			if ok, _ := utils.DirExists(home); ok {
				l.versionsFromHome(home, results)
			}
		}
	}
}

// enumConda probes the conda environment layouts: CONDA_PREFIX first, then
// the layouts relative to the executable.
func (l *Locator) enumConda(results *[]RuntimeVersion) {
	prefixes := []string{filepath.Join("lib", "R"), "R"}
	if condaPrefix := l.env("CONDA_PREFIX"); condaPrefix != "" {
		for _, p := range prefixes {
			l.versionsFromHome(filepath.Join(condaPrefix, p), results)
		}
	}
	if l.ExecutableDir != "" {
		for _, p := range prefixes {
			home := filepath.Clean(filepath.Join(l.ExecutableDir, "..", "..", p))
			if ok, _ := utils.DirExists(home); ok {
				l.versionsFromHome(home, results)
			}
		}
	}
}

// DiscoverAll returns every valid runtime installation it can find, ranked
// and de-duplicated, filtered to the target architecture. Known candidates
// (which may not be valid) can be passed in and take part in ranking.
func (l *Locator) DiscoverAll(known ...RuntimeVersion) []RuntimeVersion {
	versions := slices.Clone(known)

	l.versionsFromHome(l.env("R_HOME"), &versions)
	l.enumConda(&versions)
	l.enumStore(&versions)
	l.enumWellKnownRoots(&versions)

	versions = lo.Filter(versions, func(v RuntimeVersion, _ int) bool {
		return v.validate(l.libName(), l.MinimumMajor, l.MinimumMinor) == ValidateSuccess
	})

	slices.SortFunc(versions, compareRanked)
	versions = slices.CompactFunc(versions, RuntimeVersion.sameInstallation)

	return lo.Filter(versions, func(v RuntimeVersion, _ int) bool {
		return v.Arch == l.TargetArch
	})
}

// currentFromStore reads the store's "currently installed" entry for one
// scope and returns it when valid and of the requested architecture.
func (l *Locator) currentFromStore(scope StoreScope, arch Architecture) (RuntimeVersion, bool) {
	if l.Store == nil {
		return RuntimeVersion{}, false
	}
	installPath, ok := l.Store.GetString(scope, arch, "", installPathValue)
	if !ok {
		return RuntimeVersion{}, false
	}
	var candidates []RuntimeVersion
	l.versionsFromHome(installPath, &candidates)
	for _, v := range candidates {
		if v.validate(l.libName(), l.MinimumMajor, l.MinimumMinor) == ValidateSuccess && v.Arch == arch {
			return v, true
		}
	}
	return RuntimeVersion{}, false
}

// PickPreferred selects the runtime a session should embed absent an
// explicit override. A "currently installed" store entry wins over the
// ranked list even when a higher version exists elsewhere: an explicit user
// choice recorded in the store beats auto-detection. With preferredOnly set
// and no store entry, the pick is empty.
func (l *Locator) PickPreferred(arch Architecture, preferredOnly bool) (RuntimeVersion, bool) {
	if preferred, ok := l.currentFromStore(CurrentUser, arch); ok {
		return preferred, true
	}
	if preferred, ok := l.currentFromStore(LocalMachine, arch); ok {
		return preferred, true
	}
	if preferredOnly {
		return RuntimeVersion{}, false
	}

	for _, v := range l.DiscoverAll() {
		if v.Arch == arch {
			return v, true
		}
	}
	return RuntimeVersion{}, false
}
