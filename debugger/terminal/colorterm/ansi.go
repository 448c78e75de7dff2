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

package colorterm

// ANSI control sequences used by the terminal.
const (
	normalPen = "\033[0m"
	boldPen   = "\033[1m"
	dimPen    = "\033[2m"

	penRed    = "\033[31m"
	penYellow = "\033[33m"
	penCyan   = "\033[36m"

	// erase from the cursor to the end of the line
	eraseLine = "\033[K"
)
