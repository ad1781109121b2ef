// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"os"
	"runtime"
	"strings"

	"workbench.dev/x/session/pkg/utils"
)

// Environ is a point-in-time snapshot of the process environment. The resolver
// only ever reads its own copy; requested changes come back as EnvMutations.
type Environ map[string]string

func EnvironFromOS() Environ {
	e := Environ{}
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			e[name] = value
		}
	}
	return e
}

func (e Environ) Get(name string) string {
	return e[name]
}

func (e Environ) clone() Environ {
	c := make(Environ, len(e))
	for k, v := range e {
		c[k] = v
	}
	return c
}

// RawInputs carries everything Resolve consumes. Nothing is read from process
// globals, which keeps resolution repeatable under test.
type RawInputs struct {
	// Args is the raw argument vector, os.Args shaped.
	Args []string

	// Environ is the environment snapshot. Required.
	Environ Environ

	// Options holds the pre-parsed command line and options file values.
	// Nil means all defaults.
	Options *Options

	// ExecutablePath locates the running binary for install-root probing.
	ExecutablePath string

	// Hints describes the host platform. Zero value means "this host".
	Hints PlatformHints

	// Overlay is an optional vendor configuration hook. Nil means none.
	Overlay Overlay

	// TempDir overrides the throwaway-home parent used by verify-installation
	// mode. Empty means os.TempDir().
	TempDir string
}

type PlatformHints struct {
	// OS is a GOOS value. Empty means runtime.GOOS.
	OS string

	// Arch is a GOARCH value. Empty means runtime.GOARCH.
	Arch string
}

func (h PlatformHints) os() string {
	if h.OS != "" {
		return h.OS
	}
	return runtime.GOOS
}

func (h PlatformHints) arch() string {
	if h.Arch != "" {
		return h.Arch
	}
	return runtime.GOARCH
}

// EnvMutation is one environment change requested by the resolver, applied by
// the caller after resolution.
type EnvMutation struct {
	Name  string
	Value string
	Unset bool
}

// Apply replays the mutations onto the real process environment.
func Apply(mutations []EnvMutation) error {
	for _, m := range mutations {
		if !utils.IsValidEnvVarIdentifier(m.Name) {
			continue
		}
		var err error
		if m.Unset {
			err = os.Unsetenv(m.Name)
		} else {
			err = os.Setenv(m.Name, m.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Result is the side-channel output of a resolution run: the environment
// changes to apply and the non-fatal warnings encountered.
type Result struct {
	EnvMutations []EnvMutation
	Warnings     []string
}
