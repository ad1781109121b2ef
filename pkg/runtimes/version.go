// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Architecture of a runtime's shared library. The ordering matters: ranking
// puts higher values (64-bit) first.
type Architecture int

const (
	ArchNone Architecture = iota
	ArchUnknown
	ArchX86
	ArchX64
)

func (a Architecture) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchX64:
		return "x64"
	case ArchUnknown:
		return "unknown"
	default:
		return "none"
	}
}

func ParseArchitecture(s string) (Architecture, error) {
	switch strings.ToLower(s) {
	case "x86":
		return ArchX86, nil
	case "x64", "amd64":
		return ArchX64, nil
	default:
		return ArchNone, fmt.Errorf("invalid architecture %q. must be one of 'x86', 'x64'", s)
	}
}

// VersionNumber is the 4-part file version embedded in the runtime shared
// library, compared part by part from the left.
type VersionNumber [4]int

func (v VersionNumber) Compare(other VersionNumber) int {
	for i := range v {
		if v[i] != other[i] {
			if v[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v VersionNumber) IsZero() bool {
	return v == VersionNumber{}
}

func (v VersionNumber) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}

// SemVer drops the build part and exposes the version for display and
// semver-aware comparisons.
func (v VersionNumber) SemVer() *semver.Version {
	return semver.New(uint64(v[0]), uint64(v[1]), uint64(v[2]), "", "")
}

// meetsMinimum gates on a (major, minor) threshold: a higher major always
// wins regardless of minor; an equal major requires minor at or above the
// threshold.
func (v VersionNumber) meetsMinimum(major, minor int) bool {
	if v[0] > major {
		return true
	}
	if v[0] < major {
		return false
	}
	return v[1] >= minor
}

// RuntimeVersion is one discovered runtime installation. Candidates are
// created transiently during a discovery pass and may be invalid until
// validated.
type RuntimeVersion struct {
	BinDir  string        `json:"bin-dir" yaml:"bin-dir"`
	HomeDir string        `json:"home-dir" yaml:"home-dir"`
	Version VersionNumber `json:"-" yaml:"-"`
	Arch    Architecture  `json:"-" yaml:"-"`
}

// newRuntimeVersion probes the named shared library inside binDir for its
// architecture and embedded version. Probing failures leave the zero values;
// validation rejects those later.
func newRuntimeVersion(binDir, libraryName string) RuntimeVersion {
	v := RuntimeVersion{
		BinDir:  binDir,
		HomeDir: binDirToHomeDir(binDir),
	}
	if binDir == "" {
		return v
	}
	data, err := os.ReadFile(filepath.Join(binDir, libraryName))
	if err != nil {
		return v
	}
	v.Arch = DetectArchitecture(data)
	if version, ok := FileVersion(data); ok {
		v.Version = version
	}
	return v
}

func (v RuntimeVersion) Empty() bool {
	return v.BinDir == ""
}

// Description renders the version for presentation, 64/32-bit tagged.
func (v RuntimeVersion) Description() string {
	var b strings.Builder
	switch v.Arch {
	case ArchX64:
		b.WriteString("[64-bit] ")
	case ArchX86:
		b.WriteString("[32-bit] ")
	}
	b.WriteString(v.HomeDir)
	return b.String()
}

type ValidateResult int

const (
	ValidateSuccess ValidateResult = iota
	ValidateNotFound
	ValidateVersionTooOld
)

// validate checks that the candidate points at a real runtime library new
// enough to host a session.
func (v RuntimeVersion) validate(libraryName string, minMajor, minMinor int) ValidateResult {
	if v.Empty() || v.HomeDir == "" {
		return ValidateNotFound
	}
	if _, err := os.Stat(filepath.Join(v.BinDir, libraryName)); err != nil {
		return ValidateNotFound
	}
	if !v.Version.meetsMinimum(minMajor, minMinor) {
		return ValidateVersionTooOld
	}
	return ValidateSuccess
}

// sameInstallation treats two candidates with the same home directory
// (case-insensitive) as duplicates.
func (v RuntimeVersion) sameInstallation(other RuntimeVersion) bool {
	return strings.EqualFold(v.HomeDir, other.HomeDir)
}

// compareRanked orders candidates for presentation: version descending, then
// home directory case-insensitive ascending, then 64-bit before 32-bit, then
// bin directory case-insensitive ascending.
func compareRanked(a, b RuntimeVersion) int {
	if c := b.Version.Compare(a.Version); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.HomeDir), strings.ToLower(b.HomeDir)); c != 0 {
		return c
	}
	if c := int(b.Arch) - int(a.Arch); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(a.BinDir), strings.ToLower(b.BinDir))
}

// binDirToHomeDir derives the installation home from a bin directory by
// stripping the trailing "bin" segment (and the architecture segment below
// it, for bin/x64 style layouts). Returns "" when the shape is unrecognized.
func binDirToHomeDir(binDir string) string {
	if binDir == "" || !filepath.IsAbs(binDir) {
		return ""
	}
	dir := filepath.Clean(binDir)
	if filepath.Base(dir) != "bin" {
		dir = filepath.Dir(dir)
	}
	if filepath.Base(dir) == "bin" {
		return filepath.Dir(dir)
	}
	return ""
}
