// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package memory implements the 4KB address space of the CHIP-8 machine.
// The font table occupies the bottom of memory and loaded programs begin at
// the Origin address. Every access is bounds checked; there is no way to
// read or write outside of the address space.
package memory

import (
	"github.com/kevinadari/gopher8/curated"
)

// Size of the address space in bytes.
const Size = 4096

// Origin is the address at which program data begins. The memory below the
// origin belongs to the machine (in a real interpreter it held the
// interpreter itself; here only the font table lives there).
const Origin = 0x200

// MaxProgramSize is the largest program that can be loaded.
const MaxProgramSize = Size - Origin

// Sentinal error messages.
const (
	AccessOutOfRange = "memory: access out of range (%#04x)"
	ProgramTooLarge  = "memory: program too large (%d bytes)"
)

// Memory is the flat RAM of the machine.
type Memory struct {
	internal [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes all of memory and rewrites the font table.
func (mem *Memory) Reset() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
	copy(mem.internal[FontOrigin:], fontTable[:])
}

// Read a single byte.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(AccessOutOfRange, address)
	}
	return mem.internal[address], nil
}

// Write a single byte.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(AccessOutOfRange, address)
	}
	mem.internal[address] = data
	return nil
}

// Load program data into memory, starting at the Origin address. The font
// table is never touched by a program load.
func (mem *Memory) Load(data []byte) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data))
	}
	copy(mem.internal[Origin:], data)
	return nil
}
