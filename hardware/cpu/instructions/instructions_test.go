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

package instructions_test

import (
	"testing"

	"github.com/kevinadari/gopher8/hardware/cpu/instructions"
	"github.com/kevinadari/gopher8/test"
)

func TestDecodeFields(t *testing.T) {
	ins := instructions.Decode(0xd1, 0x2f)

	test.Equate(t, ins.Value, 0xd12f)
	test.Equate(t, ins.Category, 0xd)
	test.Equate(t, ins.X, 0x1)
	test.Equate(t, ins.Y, 0x2)
	test.Equate(t, ins.N, 0xf)
	test.Equate(t, ins.NN, 0x2f)
	test.Equate(t, ins.NNN, 0x12f)
}

func TestDecodeIsTotal(t *testing.T) {
	// every 16-bit value decodes. not every decoded value is defined
	ins := instructions.DecodeWord(0xffff)
	test.Equate(t, ins.Category, 0xf)

	_, ok := instructions.Lookup(ins)
	test.Equate(t, ok, false)
}

func TestLookup(t *testing.T) {
	defined := []uint16{0x00e0, 0x00ee, 0x1228, 0x8124, 0xf165}

	for _, word := range defined {
		_, ok := instructions.Lookup(instructions.DecodeWord(word))
		if !ok {
			t.Errorf("expected %04x to be a defined instruction", word)
		}
	}

	// machine-code routine calls (0NNN) and incomplete encodings are not
	// defined instructions
	undefined := []uint16{0x0000, 0x0123, 0x00e1, 0x5001, 0x8008, 0x9001, 0xe000, 0xf000, 0xf066}
	for _, word := range undefined {
		_, ok := instructions.Lookup(instructions.DecodeWord(word))
		if ok {
			t.Errorf("expected %04x to be undefined", word)
		}
	}
}

func TestString(t *testing.T) {
	test.Equate(t, instructions.DecodeWord(0x00e0).String(), "CLS")
	test.Equate(t, instructions.DecodeWord(0x6a02).String(), "LD VA, 0x02")
	test.Equate(t, instructions.DecodeWord(0x1228).String(), "JP 0x228")
	test.Equate(t, instructions.DecodeWord(0xd01f).String(), "DRW V0, V1, 0xf")
	test.Equate(t, instructions.DecodeWord(0xffff).String(), "???")
}
