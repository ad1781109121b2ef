// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// peImage builds a minimal PE header with the given machine word.
func peImage(machine uint16) []byte {
	buf := make([]byte, 0x50)
	binary.LittleEndian.PutUint32(buf[peHeaderOffsetField:], 0x40)
	binary.LittleEndian.PutUint32(buf[0x40:], peMagic)
	binary.LittleEndian.PutUint16(buf[0x44:], machine)
	return buf
}

func elfImage(machine uint16) []byte {
	buf := make([]byte, 0x40)
	copy(buf, []byte{0x7f, 'E', 'L', 'F', 2, 1, 1})
	binary.LittleEndian.PutUint16(buf[elfMachineOffset:], machine)
	return buf
}

func TestDetectArchitecture(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Architecture
	}{
		{name: "pe x64", data: peImage(peMachineAMD64), want: ArchX64},
		{name: "pe x86", data: peImage(peMachineI386), want: ArchX86},
		{name: "pe unknown machine", data: peImage(0x01c4), want: ArchUnknown},
		{name: "elf x64", data: elfImage(elfMachineX8664), want: ArchX64},
		{name: "elf x86", data: elfImage(elfMachine386), want: ArchX86},
		{name: "elf unknown machine", data: elfImage(0xB7), want: ArchUnknown},
		{name: "empty", data: nil, want: ArchNone},
		{name: "truncated", data: make([]byte, 8), want: ArchNone},
		{name: "wrong magic", data: make([]byte, 0x50), want: ArchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectArchitecture(tt.data))
		})
	}
}

func TestDetectArchitectureHeaderOffsetPastEnd(t *testing.T) {
	buf := make([]byte, 0x50)
	binary.LittleEndian.PutUint32(buf[peHeaderOffsetField:], 0xFFFFFF)
	assert.Equal(t, ArchNone, DetectArchitecture(buf))
}

func TestDetectArchitectureMachO(t *testing.T) {
	buf := make([]byte, 0x20)
	binary.LittleEndian.PutUint32(buf, machoMagic64)
	binary.LittleEndian.PutUint32(buf[4:], machoCPUTypeX864)
	assert.Equal(t, ArchX64, DetectArchitecture(buf))

	binary.LittleEndian.PutUint32(buf[4:], 0x0100000C)
	assert.Equal(t, ArchUnknown, DetectArchitecture(buf))
}
