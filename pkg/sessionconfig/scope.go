// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"workbench.dev/x/session/pkg/utils"
)

// SessionScope identifies which persistent session state a process attaches
// to: a project id (possibly empty for a projectless session) plus a session
// id disambiguating concurrent sessions on the same project.
type SessionScope struct {
	ProjectID string `yaml:"project-id,omitempty"`
	SessionID string `yaml:"session-id,omitempty"`
}

func ScopeFromProjectID(projectID, scopeID string) SessionScope {
	return SessionScope{ProjectID: projectID, SessionID: scopeID}
}

func (s SessionScope) Empty() bool {
	return s.ProjectID == "" && s.SessionID == ""
}

var projectIDRegex = regexp.MustCompile(`^[0-9a-f]{8}$`)

// projectIndexDir holds one file per project id whose contents is the
// project directory path (possibly "~"-aliased).
const projectIndexDir = "projects"

// validateSessionScope checks a non-empty scope against the known state
// locations and reports the initial project path when the scope maps to a
// real project on disk. Shared storage is consulted only when project
// sharing is enabled.
func validateSessionScope(scope SessionScope, homePath, scratchPath, sharedStoragePath string, sharingEnabled bool) (ScopeState, string) {
	if scope.ProjectID == "" {
		// session-only scope, nothing to look up
		return ScopeValid, ""
	}

	if !projectIDRegex.MatchString(scope.ProjectID) {
		return ScopeInvalidProject, ""
	}

	projectPath, ok := lookupProjectID(scratchPath, scope.ProjectID)
	if !ok && sharingEnabled && sharedStoragePath != "" {
		projectPath, ok = lookupProjectID(sharedStoragePath, scope.ProjectID)
	}
	if !ok {
		return ScopeMissingProject, ""
	}

	resolved := utils.ResolveAliasedPath(projectPath, homePath)
	if exists, err := utils.DirExists(resolved); err != nil || !exists {
		return ScopeInvalidPath, ""
	}
	return ScopeValid, resolved
}

func lookupProjectID(statePath, projectID string) (string, bool) {
	indexFile := filepath.Join(statePath, projectIndexDir, projectID)
	contents, err := os.ReadFile(indexFile)
	if err != nil {
		return "", false
	}
	projectPath := strings.TrimSpace(string(contents))
	return projectPath, projectPath != ""
}
