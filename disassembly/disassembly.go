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

// Package disassembly produces a static listing of a ROM. The listing is
// linear: every two-byte word from the start of the program is treated as an
// instruction, whether or not the program would ever execute it. Words that
// do not decode to a defined instruction are listed as data.
package disassembly

import (
	"fmt"
	"io"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/hardware/cpu/instructions"
	"github.com/kevinadari/gopher8/hardware/memory"
	"github.com/kevinadari/gopher8/romloader"
)

// Error messages.
const (
	WriteError = "disassembly: %v"
)

// Write a listing of the program data to output. Addresses are reported
// relative to the program origin, where the data would sit in machine
// memory.
func Write(output io.Writer, data []byte) error {
	for i := 0; i+1 < len(data); i += 2 {
		address := memory.Origin + uint16(i)
		ins := instructions.Decode(data[i], data[i+1])

		_, err := fmt.Fprintf(output, "%#04x  %04x  %s\n", address, ins.Value, ins)
		if err != nil {
			return curated.Errorf(WriteError, err)
		}
	}

	// a program with an odd number of bytes has a trailing byte that cannot
	// be an instruction
	if len(data)%2 == 1 {
		address := memory.Origin + uint16(len(data)-1)
		_, err := fmt.Fprintf(output, "%#04x  %02x    ???\n", address, data[len(data)-1])
		if err != nil {
			return curated.Errorf(WriteError, err)
		}
	}

	return nil
}

// FromLoader writes a listing of the ROM in the supplied loader, reading it
// from disk first if necessary.
func FromLoader(cart romloader.Loader, output io.Writer) error {
	if cart.Data == nil {
		if err := cart.Load(); err != nil {
			return err
		}
	}
	return Write(output, cart.Data)
}
