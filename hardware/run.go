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

package hardware

// Run the emulation continuously. The continueCheck function is called after
// every timer tick, or every instruction when instructionsPerTick is zero or
// less, and should return false to stop the emulation.
//
// Instruction execution and the timers are decoupled: instructionsPerTick
// instructions are executed and then both timers are ticked once. Blocked
// steps still count toward the tick so a program waiting on the keypad does
// not freeze its timers.
func (ch8 *Chip8) Run(instructionsPerTick int, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}
	if instructionsPerTick < 1 {
		instructionsPerTick = 1
	}

	for {
		for i := 0; i < instructionsPerTick; i++ {
			if _, err := ch8.Step(); err != nil {
				return err
			}
		}

		ch8.TickTimers()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
