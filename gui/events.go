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

package gui

// Event represents a user input event from the graphical interface.
type Event interface{}

// EventQuit is sent when the user closes the window.
type EventQuit struct{}

// EventKeyboard is sent on every key press and release. Key is the name of
// the key as reported by the windowing system.
type EventKeyboard struct {
	Key  string
	Down bool
}
