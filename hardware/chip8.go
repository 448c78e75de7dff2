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

import (
	"github.com/kevinadari/gopher8/hardware/cpu"
	"github.com/kevinadari/gopher8/hardware/keypad"
	"github.com/kevinadari/gopher8/hardware/memory"
	"github.com/kevinadari/gopher8/hardware/timer"
	"github.com/kevinadari/gopher8/hardware/video"
	"github.com/kevinadari/gopher8/random"
	"github.com/kevinadari/gopher8/romloader"
)

// StepResult summarises what a call to Step() did.
type StepResult int

// A step either executed an instruction or was refused because the machine
// is waiting for a key. Errors are reported separately and are always fatal.
const (
	StepExecuted StepResult = iota
	StepBlocked
)

// Chip8 is the root of the emulated machine. The exported fields are
// intended for the debugger. Changing them mid-emulation is not.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
	Timers *timer.Timers
	Random *random.Random
}

// NewChip8 is the preferred method of initialisation for the Chip8 type.
func NewChip8() *Chip8 {
	ch8 := &Chip8{
		Mem:    memory.NewMemory(),
		Video:  video.NewVideo(),
		Keypad: keypad.NewKeypad(),
		Timers: timer.NewTimers(),
		Random: random.NewRandom(),
	}
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Video, ch8.Keypad, ch8.Timers, ch8.Random)
	return ch8
}

// Reset returns every sub-system to its power-on state. The loaded program,
// if any, is erased.
func (ch8 *Chip8) Reset() {
	ch8.Mem.Reset()
	ch8.Video.Reset()
	ch8.Keypad.Reset()
	ch8.Timers.Reset()
	ch8.CPU.Reset()
}

// Load resets the machine and copies a program into memory at the program
// origin.
func (ch8 *Chip8) Load(data []byte) error {
	ch8.Reset()
	return ch8.Mem.Load(data)
}

// AttachROM loads the program in the supplied loader, reading it from disk
// first if necessary.
func (ch8 *Chip8) AttachROM(cart romloader.Loader) error {
	if cart.Data == nil {
		if err := cart.Load(); err != nil {
			return err
		}
	}
	return ch8.Load(cart.Data)
}

// Step executes one instruction. When the machine is waiting for a key the
// step is refused with StepBlocked and nothing happens; the wait is resolved
// by a later call to KeyDown().
//
// A non-nil error is fatal. The machine state is unchanged by the failing
// instruction and further calls to Step() will return the same error.
func (ch8 *Chip8) Step() (StepResult, error) {
	if ch8.Keypad.IsWaiting() {
		return StepBlocked, nil
	}

	if err := ch8.CPU.ExecuteInstruction(); err != nil {
		return StepExecuted, err
	}

	return StepExecuted, nil
}

// TickTimers decrements both timers by one step. Timers run at their own
// rate, sixty ticks per second, independently of instruction execution.
func (ch8 *Chip8) TickTimers() {
	ch8.Timers.Tick()
}

// KeyDown presses a key. If the machine is waiting for a key the wait is
// resolved: the key code is written to the register named by the wait
// instruction and the program counter moves past it.
func (ch8 *Chip8) KeyDown(key uint8) error {
	reg, resolved, err := ch8.Keypad.KeyDown(key)
	if err != nil {
		return err
	}

	if resolved {
		ch8.CPU.V[reg] = key
		ch8.CPU.PC += 2
	}

	return nil
}

// KeyUp releases a key. Releases never resolve a key-wait.
func (ch8 *Chip8) KeyUp(key uint8) error {
	return ch8.Keypad.KeyUp(key)
}

// IsSoundActive returns true while the sound timer is counting down. The
// host should be emitting the beep tone.
func (ch8 *Chip8) IsSoundActive() bool {
	return ch8.Timers.IsSoundActive()
}
