// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"os"
	"path/filepath"
)

const appDataDirName = "workbench"

// userHomePath returns the first non-empty value among the named environment
// variables, falling back to the OS account home.
func userHomePath(env Environ, names ...string) string {
	for _, name := range names {
		if v := env.Get(name); v != "" {
			return filepath.Clean(v)
		}
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return string(os.PathSeparator)
}

// userDataDir is the per-user data directory for session state: XDG data dir
// on unix (usually ~/.local/share), LOCALAPPDATA on Windows.
func userDataDir(env Environ, goos, homePath string) string {
	var base string
	switch goos {
	case "windows":
		base = env.Get("LOCALAPPDATA")
		if base == "" {
			base = env.Get("APPDATA")
		}
		if base == "" {
			base = filepath.Join(homePath, "AppData", "Local")
		}
	default:
		base = env.Get("XDG_DATA_HOME")
		if base == "" {
			base = filepath.Join(homePath, ".local", "share")
		}
	}
	return filepath.Join(base, appDataDirName)
}
