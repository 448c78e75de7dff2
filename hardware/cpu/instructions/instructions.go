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

// Package instructions decodes the 16-bit instruction words of the machine.
// Decoding is pure and total: every possible word decodes into its standard
// fields. Whether the decoded word names a defined instruction is answered
// separately, by the Lookup() function.
package instructions

// Instruction is one decoded 16-bit instruction word.
type Instruction struct {
	// the full instruction word, big-endian combination of the two fetched
	// bytes
	Value uint16

	// category nibble, bits 15-12. selects the instruction family
	Category uint8

	// register index X, bits 11-8
	X uint8

	// register index Y, bits 7-4
	Y uint8

	// immediate nibble, bits 3-0
	N uint8

	// immediate byte, bits 7-0
	NN uint8

	// address, bits 11-0
	NNN uint16
}

// Decode the instruction word formed by the big-endian combination of two
// bytes.
func Decode(hi uint8, lo uint8) Instruction {
	return DecodeWord(uint16(hi)<<8 | uint16(lo))
}

// DecodeWord extracts the standard fields from an instruction word.
func DecodeWord(word uint16) Instruction {
	return Instruction{
		Value:    word,
		Category: uint8(word >> 12),
		X:        uint8(word >> 8 & 0x0f),
		Y:        uint8(word >> 4 & 0x0f),
		N:        uint8(word & 0x000f),
		NN:       uint8(word & 0x00ff),
		NNN:      word & 0x0fff,
	}
}
