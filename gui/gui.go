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

// Package gui defines the operations the emulation requires of a graphical
// interface. The only implementation is in the sdlplay sub-package.
package gui

// GUI defines the operations required of a graphical interface.
type GUI interface {
	// SetEventChannel registers the channel user input events should be
	// forwarded to
	SetEventChannel(chan Event)

	// Service the user interface. must be called regularly, from the main
	// goroutine
	Service()

	// SetPixels updates the displayed image. one byte per pixel, row major,
	// zero is a dark pixel and any other value is a lit pixel
	SetPixels(pixels []uint8) error

	// SetSound starts or stops the beep tone
	SetSound(active bool)

	// Destroy releases all resources held by the interface
	Destroy()
}
