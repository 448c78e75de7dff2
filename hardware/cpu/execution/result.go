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

// Package execution records the result of an executed instruction. Used by
// the debugger to narrate what the machine just did.
package execution

import (
	"fmt"

	"github.com/kevinadari/gopher8/hardware/cpu/instructions"
)

// Result records a single execution of a single instruction.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the decoded instruction
	Instruction instructions.Instruction

	// whether the instruction took a skip branch (the SE/SNE/SKP/SKNP
	// families)
	Skipped bool

	// whether the instruction put the machine into the key-wait state
	WaitForKey bool
}

// Reset nullifies the result. Used when the CPU is reset.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := fmt.Sprintf("%#04x  %04x  %s", r.Address, r.Instruction.Value, r.Instruction)
	if r.Skipped {
		s = fmt.Sprintf("%s  [skip]", s)
	}
	if r.WaitForKey {
		s = fmt.Sprintf("%s  [waiting]", s)
	}
	return s
}
