// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"workbench.dev/x/session/pkg/utils"
)

// LayoutKind identifies how the installation is laid out on disk. It is
// selected once from on-disk probes and drives every resource default and
// relocation rule afterwards.
type LayoutKind int

const (
	LayoutStandard LayoutKind = iota
	LayoutAppBundle
	LayoutCondaBuild
	LayoutWindowsPortable
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutStandard:
		return "standard"
	case LayoutAppBundle:
		return "app-bundle"
	case LayoutCondaBuild:
		return "conda-build"
	case LayoutWindowsPortable:
		return "windows-portable"
	default:
		return "Unknown"
	}
}

func (k *LayoutKind) MarshalYAML() ([]byte, error) {
	return []byte(k.String()), nil
}

var _ yaml.BytesMarshaler = (*LayoutKind)(nil)

// bundleMarkerFile marks a macOS application bundle; resources live in the
// Resources subdirectory next to it.
const bundleMarkerFile = "Info.plist"

// condaShareDir is where a conda build keeps bundled resources relative to
// the executable directory.
const condaShareDir = "../share/workbench"

// PathLayoutPolicy corrects the probed install root for its layout and knows
// the layout-specific resource defaults and relocations.
type PathLayoutPolicy struct {
	Kind LayoutKind

	// InstallRoot is the corrected, absolute install root.
	InstallRoot string
}

// detectLayout applies the platform-specific corrections to a probed install
// root: a bundle marker redirects into the bundle's Resources directory, a
// 32-bit compatibility subdirectory redirects to its parent.
func detectLayout(root, goos string, conda bool) PathLayoutPolicy {
	root = filepath.Clean(root)

	if conda {
		return PathLayoutPolicy{Kind: LayoutCondaBuild, InstallRoot: root}
	}

	if goos == "darwin" && utils.FileExists(filepath.Join(root, bundleMarkerFile)) {
		return PathLayoutPolicy{
			Kind:        LayoutAppBundle,
			InstallRoot: filepath.Join(root, "Resources"),
		}
	}

	if goos == "windows" {
		if ok, _ := utils.DirExists(filepath.Join(root, "x86")); ok {
			return PathLayoutPolicy{
				Kind:        LayoutWindowsPortable,
				InstallRoot: filepath.Dir(root),
			}
		}
	}

	return PathLayoutPolicy{Kind: LayoutStandard, InstallRoot: root}
}

// Resource path logical names.
const (
	ResRResources     = "r-resources"
	ResWwwLocal       = "www-local"
	ResWwwSymbolMaps  = "www-symbol-maps"
	ResRSources       = "r-sources"
	ResRModuleSources = "r-module-sources"
	ResSessionLibrary = "session-library"
	ResPackageArchive = "package-archives"
	ResPostback       = "postback"
	ResDiagnostics    = "diagnostics"
	ResConsoleIo      = "console-io"
	ResGnuDiff        = "gnudiff"
	ResGnuGrep        = "gnugrep"
	ResMsysSsh        = "msys-ssh"
	ResWinutils       = "winutils"
	ResWinpty         = "winpty"
	ResDictionaries   = "dictionaries"
	ResMathjax        = "mathjax"
	ResClangHeaders   = "libclang-headers"
	ResPandoc         = "pandoc"
	ResLibclang       = "libclang"
)

// libclangVersion is appended to the default helper library path so multiple
// bundled versions can coexist.
const libclangVersion = "5.0.2"

// resourceSpec declares one bundled resource: its default location per
// layout, whether a macOS desktop bundle relocates it next to the
// executables, and whether it only exists on Windows installs.
type resourceSpec struct {
	name        string
	defaultPath string

	// condaPath replaces defaultPath under a conda layout; conda keeps
	// binaries in prefix/bin while resources sit in prefix/share, so most
	// executable paths shift up two levels.
	condaPath string

	// bundlePath, when non-empty, replaces the default under a macOS desktop
	// app bundle. It is completed against the bundle directory (the parent of
	// the resources root).
	bundlePath string

	windowsOnly bool

	// versionSuffix is appended to the default path before resolution, unless
	// the path was customized away from the default.
	versionSuffix string
}

var resourceSpecs = []resourceSpec{
	{name: ResRResources, defaultPath: "resources"},
	{name: ResWwwLocal, defaultPath: "www"},
	{name: ResWwwSymbolMaps, defaultPath: "www-symbolmaps"},
	{name: ResRSources, defaultPath: "R"},
	{name: ResRModuleSources, defaultPath: "R/modules"},
	{name: ResSessionLibrary, defaultPath: "R/library"},
	{name: ResPackageArchive, defaultPath: "R/packages"},
	{name: ResPostback, defaultPath: "bin/postback/wbpostback",
		condaPath: "../../bin/wbpostback", bundlePath: "MacOS/postback/wbpostback"},
	{name: ResDiagnostics, defaultPath: "bin/diagnostics",
		condaPath: "../../bin/diagnostics"},
	{name: ResConsoleIo, defaultPath: "bin/consoleio.exe",
		condaPath: "../../bin/consoleio.exe", windowsOnly: true},
	{name: ResGnuDiff, defaultPath: "bin/gnudiff",
		condaPath: "../../mingw-w64/bin", windowsOnly: true},
	{name: ResGnuGrep, defaultPath: "bin/gnugrep",
		condaPath: "../../mingw-w64/bin", windowsOnly: true},
	{name: ResMsysSsh, defaultPath: "bin/msys-ssh-1000-18",
		condaPath: "../../usr/bin", windowsOnly: true},
	{name: ResWinutils, defaultPath: "bin/winutils", windowsOnly: true},
	{name: ResWinpty, defaultPath: "bin", windowsOnly: true},
	{name: ResDictionaries, defaultPath: "resources/dictionaries"},
	{name: ResMathjax, defaultPath: "resources/mathjax"},
	{name: ResClangHeaders, defaultPath: "resources/libclang/builtin-headers"},
	{name: ResPandoc, defaultPath: "bin/pandoc",
		condaPath: "../../bin/pandoc", bundlePath: "MacOS/pandoc"},
	{name: ResLibclang, defaultPath: "bin/rsclang",
		condaPath: "../../bin/rsclang", bundlePath: "MacOS/rsclang",
		versionSuffix: libclangVersion},
}

func (s resourceSpec) layoutDefault(kind LayoutKind) string {
	if kind == LayoutCondaBuild && s.condaPath != "" {
		return s.condaPath
	}
	return s.defaultPath
}

// resolveResource turns one raw resource path into an absolute one, applying
// the layout relocation rules.
func (p PathLayoutPolicy) resolveResource(spec resourceSpec, raw string, mode ProgramMode) string {
	layoutDefault := spec.layoutDefault(p.Kind)
	if raw == "" {
		raw = layoutDefault
	}

	customized := raw != layoutDefault

	// desktop app bundles keep some helpers next to the executables rather
	// than under Resources
	if !customized && spec.bundlePath != "" && p.Kind == LayoutAppBundle && mode == Desktop {
		return utils.ResolvePath(filepath.Dir(p.InstallRoot), spec.bundlePath)
	}

	if !customized && spec.versionSuffix != "" {
		raw = raw + "/" + spec.versionSuffix
	}

	return utils.ResolvePath(p.InstallRoot, raw)
}

// resolveWinpty locates the pty helper library. On a full install it lives
// next to the session executable; otherwise it lives under a bitness-named
// subdirectory of the configured helper root.
func (p PathLayoutPolicy) resolveWinpty(raw string, arch string) string {
	if raw == "" {
		raw = "bin"
	}
	base := utils.ResolvePath(p.InstallRoot, raw)

	rel, err := filepath.Rel(p.InstallRoot, base)
	within := err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))

	a64 := arch == "amd64" || arch == "arm64"
	switch {
	case within && a64:
		return filepath.Join(base, "winpty.dll")
	case within:
		return filepath.Join(base, "x86", "winpty.dll")
	case a64:
		return filepath.Join(base, "64", "bin", "winpty.dll")
	default:
		return filepath.Join(base, "32", "bin", "winpty.dll")
	}
}
