// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"bytes"
	"encoding/binary"
	"regexp"
	"strconv"
)

// fixedFileInfoSignature marks a VS_FIXEDFILEINFO block inside a PE version
// resource, stored little-endian.
var fixedFileInfoSignature = []byte{0xBD, 0x04, 0xEF, 0xFE}

// dwFileVersionMS and dwFileVersionLS sit 8 and 12 bytes past the signature.
const (
	fileVersionMSOffset = 8
	fileVersionLSOffset = 12
	fixedFileInfoLen    = 16
)

// versionStringPattern is the fallback for libraries without a version
// resource: the runtime embeds its own banner string.
var versionStringPattern = regexp.MustCompile(`R version (\d+)\.(\d+)\.(\d+)`)

// FileVersion extracts the 4-part version embedded in a shared library held
// in memory. It prefers the PE version resource and falls back to the
// runtime's banner string. Reports false when neither is present.
func FileVersion(data []byte) (VersionNumber, bool) {
	if v, ok := versionFromFixedFileInfo(data); ok {
		return v, true
	}
	return versionFromBanner(data)
}

func versionFromFixedFileInfo(data []byte) (VersionNumber, bool) {
	idx := bytes.Index(data, fixedFileInfoSignature)
	if idx < 0 || idx+fixedFileInfoLen > len(data) {
		return VersionNumber{}, false
	}
	ms := binary.LittleEndian.Uint32(data[idx+fileVersionMSOffset:])
	ls := binary.LittleEndian.Uint32(data[idx+fileVersionLSOffset:])
	return VersionNumber{
		int(ms >> 16),
		int(ms & 0xFFFF),
		int(ls >> 16),
		int(ls & 0xFFFF),
	}, true
}

func versionFromBanner(data []byte) (VersionNumber, bool) {
	m := versionStringPattern.FindSubmatch(data)
	if m == nil {
		return VersionNumber{}, false
	}
	var v VersionNumber
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(string(m[i+1]))
		if err != nil {
			return VersionNumber{}, false
		}
		v[i] = n
	}
	return v, true
}
