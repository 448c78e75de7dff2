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

package cpu

import (
	"fmt"
	"strings"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/hardware/bus"
	"github.com/kevinadari/gopher8/hardware/cpu/execution"
	"github.com/kevinadari/gopher8/hardware/cpu/instructions"
	"github.com/kevinadari/gopher8/hardware/memory"
	"github.com/kevinadari/gopher8/random"
)

// NumRegisters is the number of general purpose registers. The last
// register, VF, doubles as the arithmetic flag register: flag-producing
// instructions overwrite whatever general purpose value it held.
const NumRegisters = 16

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 24

// Sentinal error messages. Every error returned by ExecuteInstruction() is
// fatal to the instruction stream: the machine state is exactly as it was
// before the failing instruction and the host must reset or terminate.
const (
	InvalidOpcode    = "cpu: invalid opcode (%04x)"
	StackOverflow    = "cpu: stack overflow"
	StackUnderflow   = "cpu: stack underflow"
	InvalidFontIndex = "cpu: invalid font index (%#02x)"
	InvalidKey       = "cpu: invalid key (%#02x)"
)

// CPU implements the fetch-decode-execute core of the machine. All access
// to the other sub-systems is through the interfaces in the bus package.
type CPU struct {
	// general purpose registers V0 to VF
	V [NumRegisters]uint8

	// the index register. semantically a 12-bit address but arithmetic on
	// it (ADD I, Vx) is not clamped, by convention
	I uint16

	// the program counter. must address a valid two-byte fetch or the next
	// ExecuteInstruction() fails
	PC uint16

	// return addresses of subroutine calls, innermost last
	Stack []uint16

	mem bus.Memory
	vid bus.Video
	key bus.Keypad
	tmr bus.Timers
	rnd *random.Random

	// result of the most recent call to ExecuteInstruction()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem bus.Memory, vid bus.Video, key bus.Keypad, tmr bus.Timers, rnd *random.Random) *CPU {
	mc := &CPU{
		mem: mem,
		vid: vid,
		key: key,
		tmr: tmr,
		rnd: rnd,
	}
	mc.Stack = make([]uint16, 0, StackDepth)
	mc.Reset()
	return mc
}

// Reset reinitialises all registers and empties the call stack. The program
// counter is loaded with the program origin address.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.I = 0
	mc.PC = memory.Origin
	mc.Stack = mc.Stack[:0]
	mc.LastResult.Reset()
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d\n", mc.PC, mc.I, len(mc.Stack)))
	for i := range mc.V {
		s.WriteString(fmt.Sprintf("V%X=%#02x ", i, mc.V[i]))
		if i == 7 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

// ExecuteInstruction fetches, decodes and executes a single instruction.
//
// A non-nil error is always one of the curated patterns listed in this
// package or in the memory package, and is fatal: no part of the machine
// state has been changed by the failing instruction.
func (mc *CPU) ExecuteInstruction() error {
	// fetch. the bounds check on the program counter is the memory bounds
	// check: a two-byte fetch at 4095 or beyond fails
	hi, err := mc.mem.Read(mc.PC)
	if err != nil {
		return err
	}
	lo, err := mc.mem.Read(mc.PC + 1)
	if err != nil {
		return err
	}

	ins := instructions.Decode(hi, lo)

	r := execution.Result{
		Address:     mc.PC,
		Instruction: ins,
	}

	// default program counter advancement is one instruction width.
	// deviations (jumps, skips, key-wait) adjust nextPC below. the program
	// counter itself is not written until execution has succeeded
	nextPC := mc.PC + 2

	switch ins.Category {
	case 0x0:
		switch ins.Value {
		case 0x00e0:
			mc.vid.Clear()
		case 0x00ee:
			if len(mc.Stack) == 0 {
				return curated.Errorf(StackUnderflow)
			}
			nextPC = mc.Stack[len(mc.Stack)-1]
			mc.Stack = mc.Stack[:len(mc.Stack)-1]
		default:
			// machine-code routine calls (0NNN) are not supported and are
			// rejected rather than silently ignored
			return curated.Errorf(InvalidOpcode, ins.Value)
		}

	case 0x1:
		nextPC = ins.NNN

	case 0x2:
		if len(mc.Stack) == StackDepth {
			return curated.Errorf(StackOverflow)
		}
		mc.Stack = append(mc.Stack, mc.PC+2)
		nextPC = ins.NNN

	case 0x3:
		if mc.V[ins.X] == ins.NN {
			nextPC += 2
			r.Skipped = true
		}

	case 0x4:
		if mc.V[ins.X] != ins.NN {
			nextPC += 2
			r.Skipped = true
		}

	case 0x5:
		if ins.N != 0x0 {
			return curated.Errorf(InvalidOpcode, ins.Value)
		}
		if mc.V[ins.X] == mc.V[ins.Y] {
			nextPC += 2
			r.Skipped = true
		}

	case 0x6:
		mc.V[ins.X] = ins.NN

	case 0x7:
		mc.V[ins.X] += ins.NN

	case 0x8:
		if err := mc.executeArithmetic(ins); err != nil {
			return err
		}

	case 0x9:
		if ins.N != 0x0 {
			return curated.Errorf(InvalidOpcode, ins.Value)
		}
		if mc.V[ins.X] != mc.V[ins.Y] {
			nextPC += 2
			r.Skipped = true
		}

	case 0xa:
		mc.I = ins.NNN

	case 0xb:
		nextPC = uint16(mc.V[0x0]) + ins.NNN

	case 0xc:
		mc.V[ins.X] = mc.rnd.Byte() & ins.NN

	case 0xd:
		// gather the sprite rows before touching the framebuffer, so that a
		// bad index register leaves the screen unchanged
		rows := make([]uint8, ins.N)
		for i := range rows {
			rows[i], err = mc.mem.Read(mc.I + uint16(i))
			if err != nil {
				return err
			}
		}

		collision := mc.vid.DrawSprite(mc.V[ins.X], mc.V[ins.Y], rows)
		if collision {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case 0xe:
		k := mc.V[ins.X]
		if k > 0xf {
			return curated.Errorf(InvalidKey, k)
		}
		switch ins.NN {
		case 0x9e:
			if mc.key.IsPressed(k) {
				nextPC += 2
				r.Skipped = true
			}
		case 0xa1:
			if !mc.key.IsPressed(k) {
				nextPC += 2
				r.Skipped = true
			}
		default:
			return curated.Errorf(InvalidOpcode, ins.Value)
		}

	case 0xf:
		advance, err := mc.executeMisc(ins, &r)
		if err != nil {
			return err
		}
		if !advance {
			// key-wait holds the program counter until the wait resolves
			nextPC = mc.PC
		}
	}

	mc.PC = nextPC
	mc.LastResult = r

	return nil
}

// executeArithmetic handles the 8XYN family. Operand values are read into
// temporaries before the destination register is written, so the in-place
// cases (VX := VX OP VX) are safe. The VF flag is always written after the
// result: when X is F the flag wins.
func (mc *CPU) executeArithmetic(ins instructions.Instruction) error {
	x := mc.V[ins.X]
	y := mc.V[ins.Y]

	switch ins.N {
	case 0x0:
		mc.V[ins.X] = y

	case 0x1:
		mc.V[ins.X] = x | y

	case 0x2:
		mc.V[ins.X] = x & y

	case 0x3:
		mc.V[ins.X] = x ^ y

	case 0x4:
		sum := uint16(x) + uint16(y)
		mc.V[ins.X] = uint8(sum)
		if sum > 0xff {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case 0x5:
		// VF is set when there is NO borrow
		mc.V[ins.X] = x - y
		if x >= y {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case 0x6:
		mc.V[ins.X] = x >> 1
		mc.V[0xf] = x & 0x1

	case 0x7:
		// VF is set when there is NO borrow
		mc.V[ins.X] = y - x
		if y >= x {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case 0xe:
		mc.V[ins.X] = x << 1
		mc.V[0xf] = x >> 7

	default:
		return curated.Errorf(InvalidOpcode, ins.Value)
	}

	return nil
}

// executeMisc handles the FXNN family. The advance return value is false
// when the program counter should be held (FX0A).
func (mc *CPU) executeMisc(ins instructions.Instruction, r *execution.Result) (bool, error) {
	switch ins.NN {
	case 0x07:
		mc.V[ins.X] = mc.tmr.Delay()

	case 0x0a:
		mc.key.WaitForKey(ins.X)
		r.WaitForKey = true
		return false, nil

	case 0x15:
		mc.tmr.SetDelay(mc.V[ins.X])

	case 0x18:
		mc.tmr.SetSound(mc.V[ins.X])

	case 0x1e:
		// not clamped to 12-bits, by convention. an out of range result is
		// caught by the bounds check of whatever instruction uses it
		mc.I += uint16(mc.V[ins.X])

	case 0x29:
		v := mc.V[ins.X]
		if v > 0xf {
			return false, curated.Errorf(InvalidFontIndex, v)
		}
		mc.I = memory.FontOrigin + uint16(v)*memory.GlyphSize

	case 0x33:
		// validate the whole range before the first write so that a bad
		// index register changes nothing
		if int(mc.I)+2 >= memory.Size {
			return false, curated.Errorf(memory.AccessOutOfRange, mc.I+2)
		}
		v := mc.V[ins.X]
		_ = mc.mem.Write(mc.I, v/100)
		_ = mc.mem.Write(mc.I+1, (v/10)%10)
		_ = mc.mem.Write(mc.I+2, v%10)

	case 0x55:
		if int(mc.I)+int(ins.X) >= memory.Size {
			return false, curated.Errorf(memory.AccessOutOfRange, mc.I+uint16(ins.X))
		}
		for i := uint16(0); i <= uint16(ins.X); i++ {
			_ = mc.mem.Write(mc.I+i, mc.V[i])
		}

	case 0x65:
		if int(mc.I)+int(ins.X) >= memory.Size {
			return false, curated.Errorf(memory.AccessOutOfRange, mc.I+uint16(ins.X))
		}
		for i := uint16(0); i <= uint16(ins.X); i++ {
			v, err := mc.mem.Read(mc.I + i)
			if err != nil {
				return false, err
			}
			mc.V[i] = v
		}

	default:
		return false, curated.Errorf(InvalidOpcode, ins.Value)
	}

	return true, nil
}
