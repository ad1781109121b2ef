// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package runtimes

import (
	"log/slog"

	"golang.org/x/sys/windows/registry"
)

const runtimeRegistryPath = `Software\R-core\R`

// RegistryStore reads registered runtime installations from the Windows
// registry, querying the WOW64 view matching the requested architecture.
type RegistryStore struct{}

func rootKey(scope StoreScope) registry.Key {
	if scope == LocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

func wowFlag(arch Architecture) (uint32, bool) {
	switch arch {
	case ArchX86:
		return registry.WOW64_32KEY, true
	case ArchX64:
		return registry.WOW64_64KEY, true
	default:
		return 0, false
	}
}

func (RegistryStore) open(scope StoreScope, arch Architecture, key string) (registry.Key, bool) {
	flag, ok := wowFlag(arch)
	if !ok {
		return 0, false
	}
	path := runtimeRegistryPath
	if key != "" {
		path += `\` + key
	}
	k, err := registry.OpenKey(rootKey(scope), path, registry.READ|flag)
	if err != nil {
		if err != registry.ErrNotExist {
			slog.Warn("unable to open registry key", "path", path, "err", err)
		}
		return 0, false
	}
	return k, true
}

func (s RegistryStore) ListKeys(scope StoreScope, arch Architecture) ([]string, error) {
	k, ok := s.open(scope, arch, "")
	if !ok {
		return nil, nil
	}
	defer k.Close()
	return k.ReadSubKeyNames(-1)
}

func (s RegistryStore) GetString(scope StoreScope, arch Architecture, key, name string) (string, bool) {
	k, ok := s.open(scope, arch, key)
	if !ok {
		return "", false
	}
	defer k.Close()
	value, _, err := k.GetStringValue(name)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

var _ VersionStore = RegistryStore{}

// PlatformStore returns the registry-backed store.
func PlatformStore() VersionStore {
	return RegistryStore{}
}
