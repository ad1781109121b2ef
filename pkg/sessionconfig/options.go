// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// OptionsFilename is the name of the optional options file looked up under
// the install root's etc directory.
const OptionsFilename = "wbsession.yaml"

// Options is the raw, unresolved option record: command line and options
// file values before any path resolution. Resolve consumes exactly one of
// these and never mutates it.
type Options struct {
	ProgramMode  string `yaml:"program-mode,omitempty"`
	UserIdentity string `yaml:"user-identity,omitempty"`

	ProjectID string `yaml:"project-id,omitempty"`
	ScopeID   string `yaml:"scope-id,omitempty"`

	VerifyInstallation bool `yaml:"verify-installation,omitempty"`
	LauncherSession    bool `yaml:"launcher-session,omitempty"`
	Standalone         bool `yaml:"standalone,omitempty"`
	VerifySignatures   bool `yaml:"verify-signatures,omitempty"`

	TimeoutMinutes int `yaml:"timeout-minutes,omitempty"`

	SaveActionDefault string `yaml:"save-action-default,omitempty"`

	// DefaultWorkingDir and DefaultProjectDir use the sentinel "~" for "the
	// user home"; anything else is created on disk during resolution.
	DefaultWorkingDir string `yaml:"default-working-dir,omitempty"`
	DefaultProjectDir string `yaml:"default-project-dir,omitempty"`

	// CRANReposFile is resolved against the install root unless absolute.
	CRANReposFile string `yaml:"cran-repos-file,omitempty"`

	// SharedStoragePath is where shared projects keep their scope index.
	SharedStoragePath string `yaml:"shared-storage-path,omitempty"`

	// Resources overrides bundled resource locations by logical name.
	// Missing entries use the layout defaults.
	Resources map[string]string `yaml:"resources,omitempty"`
}

func DefaultOptions() *Options {
	return &Options{
		ProgramMode:       Desktop.String(),
		TimeoutMinutes:    120,
		DefaultWorkingDir: "~",
		DefaultProjectDir: "~",
		CRANReposFile:     "etc/repos.conf",
		Resources:         map[string]string{},
	}
}

// LoadOptionsFile merges an optional YAML options file over the defaults.
// A missing file is not an error.
func LoadOptionsFile(path string) (*Options, error) {
	opts := DefaultOptions()

	fileInfo, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		return opts, nil
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory and not a file", path)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(bytes, opts); err != nil {
		return nil, err
	}
	if opts.Resources == nil {
		opts.Resources = map[string]string{}
	}
	return opts, nil
}

// Overlay is a vendor configuration hook. PreResolve may adjust the raw
// options before paths are derived; Validate sees the finished configuration
// and may veto the whole resolution. Either error is fatal.
type Overlay interface {
	PreResolve(opts *Options) error
	Validate(cfg *ResolvedConfiguration) error
}
