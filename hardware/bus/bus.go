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

// Package bus defines the interfaces between the CPU and the other
// sub-systems of the machine. The CPU package depends only on these
// interfaces, which keeps it honest about what it is allowed to touch and
// makes the sub-systems trivially mockable in tests.
package bus

// Memory is the address space as seen by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Video is the framebuffer as seen by the CPU. Only the clear-screen and
// draw-sprite instructions reach it.
type Video interface {
	Clear()
	DrawSprite(x uint8, y uint8, rows []uint8) bool
}

// Keypad is the input device as seen by the CPU: the key table for the skip
// instructions and the wait trigger for FX0A.
type Keypad interface {
	IsPressed(key uint8) bool
	WaitForKey(reg uint8)
}

// Timers are the countdown timers as seen by the CPU. The CPU can load both
// timers but read only the delay timer.
type Timers interface {
	Delay() uint8
	SetDelay(value uint8)
	SetSound(value uint8)
}
