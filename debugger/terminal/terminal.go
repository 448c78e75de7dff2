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

// Package terminal defines the operations required by the command line
// interface of the debugger. Implementations are in the plainterm and
// colorterm sub-packages.
package terminal

// UserInterrupt is returned by TermRead() when the user has asked the
// session to end, with ctrl-c or by closing the input stream.
const UserInterrupt = "user interrupt"

// Style is used to hint at how a line of output should be presented.
type Style int

// The list of output styles.
const (
	// the result of a machine query. registers, memory, timers
	StyleMachineInfo Style = iota

	// an executed instruction
	StyleInstruction

	// help text and other responses to the user
	StyleFeedback

	// an error message. implementations must never suppress these
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns one line of user input, without the line terminator.
	TermRead(prompt string) (string, error)
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything
	Initialise() error

	// Restore the terminal to its original state
	CleanUp()
}
