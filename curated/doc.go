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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(), but the
// pattern does double duty as the identity of the error. The Is() function
// checks whether an error was created with a specific pattern:
//
//	e := curated.Errorf("vm: %v", err)
//
//	if curated.Is(e, "vm: %v") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain. This is how the emulation distinguishes fatal
// machine errors from plain IO errors: the fatal kinds are exported const
// patterns (see the hardware packages) and can be tested for at any depth of
// wrapping.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. This alleviates the problem of when and how to wrap errors:
// wrapping at every call site never produces a stuttering message.
//
// Sentinal patterns should be stored as const strings, suitably named and
// commented.
package curated
