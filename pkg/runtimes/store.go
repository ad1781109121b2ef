// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"os"
	"path/filepath"
	"strings"
)

// StoreScope is one of the two roots a version store is queried under.
type StoreScope int

const (
	CurrentUser StoreScope = iota
	LocalMachine
)

func (s StoreScope) String() string {
	switch s {
	case CurrentUser:
		return "current-user"
	case LocalMachine:
		return "local-machine"
	default:
		return "Unknown"
	}
}

var storeScopes = []StoreScope{CurrentUser, LocalMachine}

// installPathValue names the value carrying an installation's home directory.
const installPathValue = "InstallPath"

// VersionStore is an ordered external store of registered runtime
// installations. Windows hosts back it with the registry; other hosts (and
// tests) use a directory convention. Ranking logic never touches the store
// directly, only through this interface.
type VersionStore interface {
	// ListKeys enumerates the per-version keys under the runtime root for one
	// scope and architecture. A missing root is not an error, just empty.
	ListKeys(scope StoreScope, arch Architecture) ([]string, error)

	// GetString reads a named value from a version key; the empty key
	// addresses the runtime root itself (which carries the "currently
	// installed" entry).
	GetString(scope StoreScope, arch Architecture, key, name string) (string, bool)
}

// DirStore reads registered versions from a directory convention:
// <root>/<scope>/<arch>/<key>/<name>, where values are files holding a
// single string. The empty key maps to <root>/<scope>/<arch>/<name>.
type DirStore struct {
	Root string
}

func (s DirStore) base(scope StoreScope, arch Architecture) string {
	return filepath.Join(s.Root, scope.String(), arch.String())
}

func (s DirStore) ListKeys(scope StoreScope, arch Architecture) ([]string, error) {
	entries, err := os.ReadDir(s.base(scope, arch))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}

func (s DirStore) GetString(scope StoreScope, arch Architecture, key, name string) (string, bool) {
	path := filepath.Join(s.base(scope, arch), key, name)
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(contents))
	return value, value != ""
}

var _ VersionStore = DirStore{}
