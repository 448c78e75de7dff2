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

package cpu_test

import (
	"testing"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/hardware/cpu"
	"github.com/kevinadari/gopher8/hardware/keypad"
	"github.com/kevinadari/gopher8/hardware/memory"
	"github.com/kevinadari/gopher8/hardware/timer"
	"github.com/kevinadari/gopher8/hardware/video"
	"github.com/kevinadari/gopher8/random"
	"github.com/kevinadari/gopher8/test"
)

type testMachine struct {
	mc  *cpu.CPU
	mem *memory.Memory
	vid *video.Video
	key *keypad.Keypad
	tmr *timer.Timers
}

func newTestMachine() *testMachine {
	tm := &testMachine{
		mem: memory.NewMemory(),
		vid: video.NewVideo(),
		key: keypad.NewKeypad(),
		tmr: timer.NewTimers(),
	}

	rnd := random.NewRandom()
	rnd.ZeroSeed = true

	tm.mc = cpu.NewCPU(tm.mem, tm.vid, tm.key, tm.tmr, rnd)

	return tm
}

// step pokes an instruction word at the current program counter and executes
// it.
func (tm *testMachine) step(t *testing.T, word uint16) {
	t.Helper()
	_ = tm.mem.Write(tm.mc.PC, uint8(word>>8))
	_ = tm.mem.Write(tm.mc.PC+1, uint8(word))
	err := tm.mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)
}

// stepErr is like step but for instructions that are expected to fail.
func (tm *testMachine) stepErr(t *testing.T, word uint16) error {
	t.Helper()
	_ = tm.mem.Write(tm.mc.PC, uint8(word>>8))
	_ = tm.mem.Write(tm.mc.PC+1, uint8(word))
	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	return err
}

func TestInitialState(t *testing.T) {
	tm := newTestMachine()

	test.Equate(t, tm.mc.PC, memory.Origin)
	test.Equate(t, tm.mc.I, 0)
	test.Equate(t, len(tm.mc.Stack), 0)
	for i := 0; i < cpu.NumRegisters; i++ {
		test.Equate(t, tm.mc.V[i], 0)
	}
}

func TestLoadImmediate(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6a02) // LD VA, 0x02
	test.Equate(t, tm.mc.V[0xa], 0x02)
	test.Equate(t, tm.mc.PC, memory.Origin+2)

	tm.step(t, 0x7aff) // ADD VA, 0xff (wraps, no flag)
	test.Equate(t, tm.mc.V[0xa], 0x01)
	test.Equate(t, tm.mc.V[0xf], 0)
}

func TestJumpAndCall(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x1400) // JP 0x400
	test.Equate(t, tm.mc.PC, 0x400)

	tm.step(t, 0x2600) // CALL 0x600
	test.Equate(t, tm.mc.PC, 0x600)
	test.Equate(t, len(tm.mc.Stack), 1)
	test.Equate(t, tm.mc.Stack[0], 0x402)

	tm.step(t, 0x00ee) // RET
	test.Equate(t, tm.mc.PC, 0x402)
	test.Equate(t, len(tm.mc.Stack), 0)
}

func TestJumpOffset(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6005) // LD V0, 0x05
	tm.step(t, 0xb300) // JP V0, 0x300
	test.Equate(t, tm.mc.PC, 0x305)
}

func TestSkips(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6307) // LD V3, 0x07

	tm.step(t, 0x3307) // SE V3, 0x07 (taken)
	test.Equate(t, tm.mc.LastResult.Skipped, true)
	test.Equate(t, tm.mc.PC, memory.Origin+2+4)

	tm.step(t, 0x3308) // SE V3, 0x08 (not taken)
	test.Equate(t, tm.mc.LastResult.Skipped, false)

	tm.step(t, 0x4308) // SNE V3, 0x08 (taken)
	test.Equate(t, tm.mc.LastResult.Skipped, true)

	tm.step(t, 0x6407) // LD V4, 0x07
	tm.step(t, 0x5340) // SE V3, V4 (taken)
	test.Equate(t, tm.mc.LastResult.Skipped, true)

	tm.step(t, 0x9340) // SNE V3, V4 (not taken)
	test.Equate(t, tm.mc.LastResult.Skipped, false)
}

func TestAddWithCarry(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x60ff) // LD V0, 0xff
	tm.step(t, 0x61ff) // LD V1, 0xff
	tm.step(t, 0x8014) // ADD V0, V1
	test.Equate(t, tm.mc.V[0x0], 0xfe)
	test.Equate(t, tm.mc.V[0xf], 1)

	tm.step(t, 0x6001) // LD V0, 0x01
	tm.step(t, 0x6101) // LD V1, 0x01
	tm.step(t, 0x8014) // ADD V0, V1
	test.Equate(t, tm.mc.V[0x0], 0x02)
	test.Equate(t, tm.mc.V[0xf], 0)
}

func TestSubtractWithBorrow(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6078) // LD V0, 0x78
	tm.step(t, 0x6124) // LD V1, 0x24
	tm.step(t, 0x8015) // SUB V0, V1
	test.Equate(t, tm.mc.V[0x0], 0x54)
	test.Equate(t, tm.mc.V[0xf], 1) // no borrow

	tm.step(t, 0x6000) // LD V0, 0x00
	tm.step(t, 0x6101) // LD V1, 0x01
	tm.step(t, 0x8015) // SUB V0, V1
	test.Equate(t, tm.mc.V[0x0], 0xff)
	test.Equate(t, tm.mc.V[0xf], 0) // borrow

	tm.step(t, 0x6001) // LD V0, 0x01
	tm.step(t, 0x6105) // LD V1, 0x05
	tm.step(t, 0x8017) // SUBN V0, V1
	test.Equate(t, tm.mc.V[0x0], 0x04)
	test.Equate(t, tm.mc.V[0xf], 1) // no borrow
}

func TestShifts(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x60fd) // LD V0, 0xfd
	tm.step(t, 0x8006) // SHR V0
	test.Equate(t, tm.mc.V[0x0], 0x7e)
	test.Equate(t, tm.mc.V[0xf], 1)

	tm.step(t, 0x8006) // SHR V0
	test.Equate(t, tm.mc.V[0x0], 0x3f)
	test.Equate(t, tm.mc.V[0xf], 0)

	tm.step(t, 0x6081) // LD V0, 0x81
	tm.step(t, 0x800e) // SHL V0
	test.Equate(t, tm.mc.V[0x0], 0x02)
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestLogicalOps(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x60f0) // LD V0, 0xf0
	tm.step(t, 0x613c) // LD V1, 0x3c

	tm.step(t, 0x8011) // OR V0, V1
	test.Equate(t, tm.mc.V[0x0], 0xfc)

	tm.step(t, 0x60f0)
	tm.step(t, 0x8012) // AND V0, V1
	test.Equate(t, tm.mc.V[0x0], 0x30)

	tm.step(t, 0x60f0)
	tm.step(t, 0x8013) // XOR V0, V1
	test.Equate(t, tm.mc.V[0x0], 0xcc)

	tm.step(t, 0x8010) // LD V0, V1
	test.Equate(t, tm.mc.V[0x0], 0x3c)
}

func TestInPlaceArithmetic(t *testing.T) {
	tm := newTestMachine()

	// X and Y naming the same register must behave as though the operands
	// were read before the write
	tm.step(t, 0x6080) // LD V0, 0x80
	tm.step(t, 0x8004) // ADD V0, V0
	test.Equate(t, tm.mc.V[0x0], 0x00)
	test.Equate(t, tm.mc.V[0xf], 1)

	tm.step(t, 0x6042) // LD V0, 0x42
	tm.step(t, 0x8005) // SUB V0, V0
	test.Equate(t, tm.mc.V[0x0], 0x00)
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestFlagRegisterAsDestination(t *testing.T) {
	tm := newTestMachine()

	// when the destination is VF the flag overwrites the result
	tm.step(t, 0x6fff) // LD VF, 0xff
	tm.step(t, 0x6101) // LD V1, 0x01
	tm.step(t, 0x8f14) // ADD VF, V1
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestRandomMask(t *testing.T) {
	tm := newTestMachine()

	// a zero mask forces a zero result whatever the generator produced
	tm.step(t, 0x6aff) // LD VA, 0xff
	tm.step(t, 0xca00) // RND VA, 0x00
	test.Equate(t, tm.mc.V[0xa], 0)
}

func TestDrawCollision(t *testing.T) {
	tm := newTestMachine()

	// draw the glyph for zero at (0,0) twice. the second draw erases the
	// first exactly and so must report a collision
	tm.step(t, 0x6000) // LD V0, 0x00
	tm.step(t, 0xf029) // LD F, V0
	test.Equate(t, tm.mc.I, memory.FontOrigin)

	tm.step(t, 0xd005) // DRW V0, V0, 0x5
	test.Equate(t, tm.mc.V[0xf], 0)
	test.Equate(t, tm.vid.Pixel(0, 0), 1)

	tm.step(t, 0xd005) // DRW V0, V0, 0x5
	test.Equate(t, tm.mc.V[0xf], 1)
	test.Equate(t, tm.vid.Pixel(0, 0), 0)
}

func TestClearScreen(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6000)
	tm.step(t, 0xf029)
	tm.step(t, 0xd005)
	test.Equate(t, tm.vid.Pixel(0, 0), 1)

	tm.step(t, 0x00e0) // CLS
	test.Equate(t, tm.vid.Pixel(0, 0), 0)
}

func TestKeySkips(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6005) // LD V0, 0x05

	tm.step(t, 0xe09e) // SKP V0 (not pressed, not taken)
	test.Equate(t, tm.mc.LastResult.Skipped, false)

	tm.step(t, 0xe0a1) // SKNP V0 (not pressed, taken)
	test.Equate(t, tm.mc.LastResult.Skipped, true)

	_, _, err := tm.key.KeyDown(0x05)
	test.ExpectedSuccess(t, err)

	tm.step(t, 0xe09e) // SKP V0 (pressed, taken)
	test.Equate(t, tm.mc.LastResult.Skipped, true)
}

func TestKeyWaitHoldsPC(t *testing.T) {
	tm := newTestMachine()

	pc := tm.mc.PC
	tm.step(t, 0xf30a) // LD V3, K
	test.Equate(t, tm.mc.PC, pc)
	test.Equate(t, tm.mc.LastResult.WaitForKey, true)
	test.Equate(t, tm.key.IsWaiting(), true)
}

func TestTimers(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x603c) // LD V0, 0x3c
	tm.step(t, 0xf015) // LD DT, V0
	test.Equate(t, tm.tmr.Delay(), 0x3c)

	tm.step(t, 0xf107) // LD V1, DT
	test.Equate(t, tm.mc.V[0x1], 0x3c)

	tm.step(t, 0xf018) // LD ST, V0
	test.Equate(t, tm.tmr.IsSoundActive(), true)
}

func TestIndexRegister(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0xa123) // LD I, 0x123
	test.Equate(t, tm.mc.I, 0x123)

	tm.step(t, 0x6010) // LD V0, 0x10
	tm.step(t, 0xf01e) // ADD I, V0
	test.Equate(t, tm.mc.I, 0x133)
}

func TestBCD(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x60ed) // LD V0, 0xed (237)
	tm.step(t, 0xa300) // LD I, 0x300
	tm.step(t, 0xf033) // LD B, V0

	b, _ := tm.mem.Read(0x300)
	test.Equate(t, b, 2)
	b, _ = tm.mem.Read(0x301)
	test.Equate(t, b, 3)
	b, _ = tm.mem.Read(0x302)
	test.Equate(t, b, 7)
	test.Equate(t, tm.mc.I, 0x300)
}

func TestDumpLoadRoundTrip(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6011) // LD V0, 0x11
	tm.step(t, 0x6122) // LD V1, 0x22
	tm.step(t, 0x6233) // LD V2, 0x33
	tm.step(t, 0xa300) // LD I, 0x300
	tm.step(t, 0xf255) // LD [I], V2
	test.Equate(t, tm.mc.I, 0x300)

	tm.step(t, 0x6000)
	tm.step(t, 0x6100)
	tm.step(t, 0x6200)
	tm.step(t, 0x6300) // V3 stays zero: only V0 to V2 are restored

	tm.step(t, 0xf265) // LD V2, [I]
	test.Equate(t, tm.mc.V[0x0], 0x11)
	test.Equate(t, tm.mc.V[0x1], 0x22)
	test.Equate(t, tm.mc.V[0x2], 0x33)
	test.Equate(t, tm.mc.V[0x3], 0x00)
	test.Equate(t, tm.mc.I, 0x300)
}

func TestStackUnderflow(t *testing.T) {
	tm := newTestMachine()

	pc := tm.mc.PC
	err := tm.stepErr(t, 0x00ee) // RET with empty stack
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
	test.Equate(t, tm.mc.PC, pc)
}

func TestStackOverflow(t *testing.T) {
	tm := newTestMachine()

	// CALL the same address repeatedly until the stack is full
	for i := 0; i < cpu.StackDepth; i++ {
		tm.step(t, 0x2200) // CALL 0x200
	}
	test.Equate(t, len(tm.mc.Stack), cpu.StackDepth)

	err := tm.stepErr(t, 0x2200)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackOverflow))
	test.Equate(t, len(tm.mc.Stack), cpu.StackDepth)
}

func TestInvalidOpcode(t *testing.T) {
	for _, word := range []uint16{0x0123, 0x5001, 0x8008, 0x9001, 0xe000, 0xf066} {
		tm := newTestMachine()
		err := tm.stepErr(t, word)
		test.ExpectedSuccess(t, curated.Is(err, cpu.InvalidOpcode))
		test.Equate(t, tm.mc.PC, memory.Origin)
	}
}

func TestInvalidFontIndex(t *testing.T) {
	tm := newTestMachine()

	tm.step(t, 0x6010) // LD V0, 0x10
	tm.step(t, 0xa123) // LD I, 0x123

	pc := tm.mc.PC
	err := tm.stepErr(t, 0xf029) // LD F, V0
	test.ExpectedSuccess(t, curated.Is(err, cpu.InvalidFontIndex))

	// failing instruction changed nothing
	test.Equate(t, tm.mc.PC, pc)
	test.Equate(t, tm.mc.I, 0x123)
}

func TestFatalLeavesMemoryUnchanged(t *testing.T) {
	tm := newTestMachine()

	// a register dump that would run off the end of memory must not write
	// even the in-range part
	tm.step(t, 0x6011)             // LD V0, 0x11
	tm.step(t, 0xaffe)             // LD I, 0xffe
	err := tm.stepErr(t, 0xf255)   // LD [I], V2
	test.ExpectedSuccess(t, curated.Is(err, memory.AccessOutOfRange))

	b, _ := tm.mem.Read(0xffe)
	test.Equate(t, b, 0)

	// same guarantee for the BCD store
	err = tm.stepErr(t, 0xf033)
	test.ExpectedSuccess(t, curated.Is(err, memory.AccessOutOfRange))
	b, _ = tm.mem.Read(0xffe)
	test.Equate(t, b, 0)
}
