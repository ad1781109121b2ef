// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHomePath(t *testing.T) {
	env := Environ{
		RUserEnvVar: "/mnt/r-user",
		HomeEnvVar:  "/home/jsmith",
	}
	assert.Equal(t, "/mnt/r-user", userHomePath(env, RUserEnvVar, HomeEnvVar))

	delete(env, RUserEnvVar)
	assert.Equal(t, "/home/jsmith", userHomePath(env, RUserEnvVar, HomeEnvVar))
}

func TestUserDataDir(t *testing.T) {
	tests := []struct {
		name string
		env  Environ
		goos string
		want string
	}{
		{
			name: "xdg data home",
			env:  Environ{"XDG_DATA_HOME": "/data"},
			goos: "linux",
			want: filepath.Join("/data", appDataDirName),
		},
		{
			name: "unix default",
			env:  Environ{},
			goos: "linux",
			want: filepath.Join("/home/jsmith", ".local", "share", appDataDirName),
		},
		{
			name: "windows local app data",
			env:  Environ{"LOCALAPPDATA": `C:\Users\jsmith\AppData\Local`},
			goos: "windows",
			want: filepath.Join(`C:\Users\jsmith\AppData\Local`, appDataDirName),
		},
		{
			name: "windows roaming fallback",
			env:  Environ{"APPDATA": `C:\Users\jsmith\AppData\Roaming`},
			goos: "windows",
			want: filepath.Join(`C:\Users\jsmith\AppData\Roaming`, appDataDirName),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userDataDir(tt.env, tt.goos, "/home/jsmith"))
		})
	}
}
