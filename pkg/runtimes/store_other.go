// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package runtimes

// defaultStoreRoot is the directory-convention equivalent of the Windows
// registry on hosts without one.
const defaultStoreRoot = "/etc/workbench/r-versions"

// PlatformStore returns the directory-backed store.
func PlatformStore() VersionStore {
	return DirStore{Root: defaultStoreRoot}
}
