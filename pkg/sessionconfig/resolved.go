// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

// ResolvedConfiguration is the immutable result of a resolution run. It is
// created once on the startup path, before any worker goroutine exists, and
// may be shared freely afterwards; nothing writes to it after Resolve
// returns.
//
// Secret material is excluded from YAML output on purpose.
type ResolvedConfiguration struct {
	InstallRoot string     `yaml:"install-root"`
	Layout      LayoutKind `yaml:"layout"`

	ProgramMode     ProgramMode `yaml:"program-mode"`
	ProgramIdentity string      `yaml:"program-identity"`
	UserIdentity    string      `yaml:"user-identity"`

	Scope              SessionScope `yaml:"scope,omitempty"`
	ScopeState         ScopeState   `yaml:"scope-state"`
	InitialProjectPath string       `yaml:"initial-project-path,omitempty"`

	UserHomePath    string `yaml:"user-home-path"`
	UserScratchPath string `yaml:"user-scratch-path"`

	// VerifyInstallationHomeDir is the throwaway home used by server-mode
	// verification runs; empty otherwise.
	VerifyInstallationHomeDir string `yaml:"verify-installation-home-dir,omitempty"`

	ResourcePaths map[string]string `yaml:"resource-paths"`

	DefaultWorkingDir string `yaml:"default-working-dir"`
	DefaultProjectDir string `yaml:"default-project-dir"`

	SaveActionDefault SaveAction `yaml:"save-action-default"`
	TimeoutMinutes    int        `yaml:"timeout-minutes"`

	ShowUserHomePage      bool `yaml:"show-user-home-page"`
	MultiSession          bool `yaml:"multi-session"`
	ProjectSharingEnabled bool `yaml:"project-sharing-enabled"`

	InitialWorkingDir      string `yaml:"initial-working-dir,omitempty"`
	InitialEnvironmentFile string `yaml:"initial-environment-file,omitempty"`

	LimitRpcClientUid int    `yaml:"limit-rpc-client-uid"`
	MinimumUserId     int    `yaml:"minimum-user-id,omitempty"`
	RequiredUserGroup string `yaml:"required-user-group,omitempty"`

	RVersionsPath       string `yaml:"r-versions-path,omitempty"`
	DefaultRVersion     string `yaml:"default-r-version,omitempty"`
	DefaultRVersionHome string `yaml:"default-r-version-home,omitempty"`

	CRANReposEncoded string `yaml:"cran-repos,omitempty"`

	SharedSecret         string `yaml:"-"`
	MonitorSharedSecret  string `yaml:"-"`
	SigningKey           string `yaml:"-"`
	SessionRsaPublicKey  string `yaml:"-"`
	SessionRsaPrivateKey string `yaml:"-"`
}

// ResourcePath returns the absolute path of a bundled resource by logical
// name, or "" when the resource does not exist on this platform.
func (c *ResolvedConfiguration) ResourcePath(name string) string {
	return c.ResourcePaths[name]
}
