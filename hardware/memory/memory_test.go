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

package memory_test

import (
	"testing"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/hardware/memory"
	"github.com/kevinadari/gopher8/test"
)

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	// font table occupies bytes [0, 80) exactly
	v, err := mem.Read(0x000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xf0)

	v, err = mem.Read(0x04f)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x80)

	// everything above the font table is zero
	for a := uint16(0x050); a < memory.Size; a++ {
		v, err = mem.Read(a)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, 0x00)
	}
}

func TestBounds(t *testing.T) {
	mem := memory.NewMemory()

	_, err := mem.Read(memory.Size)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.AccessOutOfRange) {
		t.Errorf("expected AccessOutOfRange error (got %v)", err)
	}

	err = mem.Write(memory.Size, 0xff)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.AccessOutOfRange) {
		t.Errorf("expected AccessOutOfRange error (got %v)", err)
	}

	// last valid address is fine
	err = mem.Write(memory.Size-1, 0xff)
	test.ExpectedSuccess(t, err)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Load([]byte{0x60, 0x0a, 0x61, 0x0b})
	test.ExpectedSuccess(t, err)

	v, _ := mem.Read(memory.Origin)
	test.Equate(t, v, 0x60)
	v, _ = mem.Read(memory.Origin + 3)
	test.Equate(t, v, 0x0b)

	// font table is untouched by the load
	v, _ = mem.Read(0x000)
	test.Equate(t, v, 0xf0)
}

func TestLoadTooLarge(t *testing.T) {
	mem := memory.NewMemory()

	// largest possible program is okay
	err := mem.Load(make([]byte, memory.MaxProgramSize))
	test.ExpectedSuccess(t, err)

	// one byte more is not
	err = mem.Load(make([]byte, memory.MaxProgramSize+1))
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.ProgramTooLarge) {
		t.Errorf("expected ProgramTooLarge error (got %v)", err)
	}
}
