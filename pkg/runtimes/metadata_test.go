// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFileInfo builds a VS_FIXEDFILEINFO block carrying the version.
func fixedFileInfo(v VersionNumber) []byte {
	buf := make([]byte, fixedFileInfoLen)
	copy(buf, fixedFileInfoSignature)
	binary.LittleEndian.PutUint32(buf[fileVersionMSOffset:], uint32(v[0])<<16|uint32(v[1]))
	binary.LittleEndian.PutUint32(buf[fileVersionLSOffset:], uint32(v[2])<<16|uint32(v[3]))
	return buf
}

func TestFileVersionFromResource(t *testing.T) {
	want := VersionNumber{4, 3, 1, 0}
	data := append(make([]byte, 128), fixedFileInfo(want)...)

	got, ok := FileVersion(data)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFileVersionTruncatedResource(t *testing.T) {
	data := append(make([]byte, 16), fixedFileInfoSignature...)
	_, ok := FileVersion(data)
	assert.False(t, ok)
}

func TestFileVersionFromBanner(t *testing.T) {
	data := append([]byte("some strings before "), []byte("R version 4.2.3 (Shortstop Beagle)")...)

	got, ok := FileVersion(data)
	require.True(t, ok)
	assert.Equal(t, VersionNumber{4, 2, 3, 0}, got)
}

func TestFileVersionAbsent(t *testing.T) {
	_, ok := FileVersion(make([]byte, 256))
	assert.False(t, ok)
}
