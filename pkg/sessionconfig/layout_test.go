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

func TestDetectLayoutStandard(t *testing.T) {
	root := t.TempDir()
	layout := detectLayout(root, "linux", false)
	assert.Equal(t, LayoutStandard, layout.Kind)
	assert.Equal(t, root, layout.InstallRoot)
}

func TestDetectLayoutConda(t *testing.T) {
	root := t.TempDir()
	layout := detectLayout(root, "linux", true)
	assert.Equal(t, LayoutCondaBuild, layout.Kind)
	assert.Equal(t, root, layout.InstallRoot)
}

func TestDetectLayoutAppBundle(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, bundleMarkerFile), []byte("<plist/>"), 0o644))

	layout := detectLayout(root, "darwin", false)
	assert.Equal(t, LayoutAppBundle, layout.Kind)
	assert.Equal(t, filepath.Join(root, "Resources"), layout.InstallRoot)

	// the marker only counts on darwin
	layout = detectLayout(root, "linux", false)
	assert.Equal(t, LayoutStandard, layout.Kind)
	assert.Equal(t, root, layout.InstallRoot)
}

func TestDetectLayoutWindowsPortable(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "x64")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "x86"), 0o755))

	layout := detectLayout(root, "windows", false)
	assert.Equal(t, LayoutWindowsPortable, layout.Kind)
	assert.Equal(t, parent, layout.InstallRoot)
}

func TestResolveResourceDefaults(t *testing.T) {
	p := PathLayoutPolicy{Kind: LayoutStandard, InstallRoot: "/opt/workbench"}

	spec := resourceSpec{name: ResWwwLocal, defaultPath: "www"}
	assert.Equal(t, "/opt/workbench/www", p.resolveResource(spec, "", Desktop))
	assert.Equal(t, "/opt/workbench/www-alt", p.resolveResource(spec, "www-alt", Desktop))
	assert.Equal(t, "/srv/www", p.resolveResource(spec, "/srv/www", Desktop))
}

func TestResolveResourceCondaRelocation(t *testing.T) {
	p := PathLayoutPolicy{Kind: LayoutCondaBuild, InstallRoot: "/opt/conda/share/workbench"}

	spec := resourceSpec{name: ResPandoc, defaultPath: "bin/pandoc", condaPath: "../../bin/pandoc"}
	assert.Equal(t, "/opt/conda/bin/pandoc", p.resolveResource(spec, "", Desktop))

	// explicitly configuring the normal default counts as a customization
	assert.Equal(t, "/opt/conda/share/workbench/bin/pandoc", p.resolveResource(spec, "bin/pandoc", Desktop))
}

func TestResolveResourceBundleRelocation(t *testing.T) {
	p := PathLayoutPolicy{Kind: LayoutAppBundle, InstallRoot: "/Applications/Workbench.app/Contents/Resources"}
	spec := resourceSpec{name: ResPandoc, defaultPath: "bin/pandoc", bundlePath: "MacOS/pandoc"}

	// desktop bundles keep helpers next to the executables
	assert.Equal(t, "/Applications/Workbench.app/Contents/MacOS/pandoc",
		p.resolveResource(spec, "", Desktop))

	// server mode and customized paths stay under the resources root
	assert.Equal(t, "/Applications/Workbench.app/Contents/Resources/bin/pandoc",
		p.resolveResource(spec, "", Server))
	assert.Equal(t, "/Applications/Workbench.app/Contents/Resources/opt/pandoc",
		p.resolveResource(spec, "opt/pandoc", Desktop))
}

func TestResolveResourceVersionSuffix(t *testing.T) {
	p := PathLayoutPolicy{Kind: LayoutStandard, InstallRoot: "/opt/workbench"}
	spec := resourceSpec{name: ResLibclang, defaultPath: "bin/rsclang", versionSuffix: libclangVersion}

	assert.Equal(t, "/opt/workbench/bin/rsclang/"+libclangVersion, p.resolveResource(spec, "", Desktop))

	// customized locations are taken verbatim
	assert.Equal(t, "/usr/lib/clang", p.resolveResource(spec, "/usr/lib/clang", Desktop))
}

func TestResolveWinpty(t *testing.T) {
	p := PathLayoutPolicy{Kind: LayoutStandard, InstallRoot: "/opt/workbench"}

	tests := []struct {
		name string
		raw  string
		arch string
		want string
	}{
		{name: "within install 64-bit", raw: "", arch: "amd64",
			want: "/opt/workbench/bin/winpty.dll"},
		{name: "within install 32-bit", raw: "bin", arch: "386",
			want: "/opt/workbench/bin/x86/winpty.dll"},
		{name: "external 64-bit", raw: "/opt/winpty", arch: "amd64",
			want: "/opt/winpty/64/bin/winpty.dll"},
		{name: "external 32-bit", raw: "/opt/winpty", arch: "386",
			want: "/opt/winpty/32/bin/winpty.dll"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.resolveWinpty(tt.raw, tt.arch))
		})
	}
}
