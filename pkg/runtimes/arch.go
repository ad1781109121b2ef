// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtimes

import "encoding/binary"

// PE image constants. See the PE/COFF specification: the offset of the image
// header lives at 0x3C, followed by the "PE\0\0" magic and the machine word.
const (
	peHeaderOffsetField = 0x3C
	peMagic             = 0x00004550
	peMachineI386       = 0x014c
	peMachineAMD64      = 0x8664
)

// ELF constants: e_machine sits at offset 18 of the identification header.
const (
	elfMachineOffset = 18
	elfMachine386    = 0x03
	elfMachineX8664  = 0x3E
)

// Mach-O 64-bit little-endian magic and cpu types.
const (
	machoMagic64     = 0xFEEDFACF
	machoCPUTypeX864 = 0x01000007
)

// DetectArchitecture sniffs the image header of a shared library held in
// memory. Truncated buffers and unrecognized magics yield ArchNone; a
// well-formed header with an unrecognized machine yields ArchUnknown. Never
// panics on malformed input.
func DetectArchitecture(data []byte) Architecture {
	if arch, ok := detectPE(data); ok {
		return arch
	}
	if arch, ok := detectELF(data); ok {
		return arch
	}
	if arch, ok := detectMachO(data); ok {
		return arch
	}
	return ArchNone
}

func detectPE(data []byte) (Architecture, bool) {
	if len(data) < peHeaderOffsetField+4 {
		return ArchNone, false
	}
	headerOffset := binary.LittleEndian.Uint32(data[peHeaderOffsetField:])
	if uint64(headerOffset)+6 > uint64(len(data)) {
		return ArchNone, false
	}
	if binary.LittleEndian.Uint32(data[headerOffset:]) != peMagic {
		return ArchNone, false
	}
	machine := binary.LittleEndian.Uint16(data[headerOffset+4:])
	switch machine {
	case peMachineI386:
		return ArchX86, true
	case peMachineAMD64:
		return ArchX64, true
	default:
		return ArchUnknown, true
	}
}

func detectELF(data []byte) (Architecture, bool) {
	if len(data) < elfMachineOffset+2 {
		return ArchNone, false
	}
	if data[0] != 0x7f || data[1] != 'E' || data[2] != 'L' || data[3] != 'F' {
		return ArchNone, false
	}
	machine := binary.LittleEndian.Uint16(data[elfMachineOffset:])
	switch machine {
	case elfMachine386:
		return ArchX86, true
	case elfMachineX8664:
		return ArchX64, true
	default:
		return ArchUnknown, true
	}
}

func detectMachO(data []byte) (Architecture, bool) {
	if len(data) < 8 {
		return ArchNone, false
	}
	if binary.LittleEndian.Uint32(data) != machoMagic64 {
		return ArchNone, false
	}
	if binary.LittleEndian.Uint32(data[4:]) == machoCPUTypeX864 {
		return ArchX64, true
	}
	return ArchUnknown, true
}
