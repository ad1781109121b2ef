// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildinfo

// To be populated at build-time, e.g.:
// go build -ldflags "-X 'workbench.dev/x/session/pkg/buildinfo.SessionVersion=1.2.3'"
var (
	SessionVersion string
	Build          string
	BuildDate      string
)

type VersionInfo struct {
	Version   string `json:"version"`
	Build     string `json:"build"`
	BuildDate string `json:"buildDate"`
}

func defaultUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func Get() VersionInfo {
	return VersionInfo{
		Version:   defaultUnknown(SessionVersion),
		Build:     defaultUnknown(Build),
		BuildDate: defaultUnknown(BuildDate),
	}
}
