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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/debugger/terminal"
	"github.com/kevinadari/gopher8/disassembly"
	"github.com/kevinadari/gopher8/hardware/memory"
)

// Error messages.
const (
	UnknownCommand  = "unknown command (%s)"
	InvalidArgument = "invalid argument to %s (%s)"
)

const helpText = `STEP [n]        execute the next instruction (or the next n instructions)
RUN [ticks]     run the emulation for the given number of timer ticks (default 60)
TICK            advance the delay and sound timers by one step
REGS            show CPU registers
TIMERS          show the delay and sound timers
MEM addr [n]    show n bytes of memory from addr (default 16)
DISPLAY         show the framebuffer
DISASM          show the disassembly of the loaded ROM
KEY k [UP]      press (or release) keypad key k (0 to f)
LAST            show the result of the most recently executed instruction
RESET           reset the machine and reload the ROM
QUIT            end the session`

// number arguments are accepted in any base known to strconv, so 0x prefixed
// hexadecimal works as expected.
func parseNumber(cmd string, arg string, max int) (int, error) {
	n, err := strconv.ParseUint(arg, 0, 16)
	if err != nil || int(n) > max {
		return 0, curated.Errorf(InvalidArgument, cmd, arg)
	}
	return int(n), nil
}

func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "HELP":
		dbg.term.TermPrintLine(terminal.StyleFeedback, helpText)

	case "QUIT", "EXIT":
		dbg.running = false

	case "RESET":
		if err := dbg.ch8.AttachROM(dbg.cart); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case "STEP":
		num := 1
		if len(args) > 0 {
			var err error
			num, err = parseNumber(command, args[0], 10000)
			if err != nil {
				return err
			}
		}
		for i := 0; i < num; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
		}

	case "RUN":
		ticks := 60
		if len(args) > 0 {
			var err error
			ticks, err = parseNumber(command, args[0], 1000000)
			if err != nil {
				return err
			}
		}
		remaining := ticks
		err := dbg.ch8.Run(defaultInstructionsPerTick, func() (bool, error) {
			remaining--
			return remaining > 0, nil
		})
		if err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleInstruction, dbg.ch8.CPU.LastResult.String())

	case "TICK":
		dbg.ch8.TickTimers()
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, dbg.ch8.Timers.String())

	case "REGS":
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, dbg.ch8.CPU.String())

	case "TIMERS":
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, dbg.ch8.Timers.String())

	case "MEM":
		if len(args) == 0 {
			return curated.Errorf(InvalidArgument, command, "address required")
		}
		address, err := parseNumber(command, args[0], memory.Size-1)
		if err != nil {
			return err
		}
		num := 16
		if len(args) > 1 {
			num, err = parseNumber(command, args[1], memory.Size)
			if err != nil {
				return err
			}
		}
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, dbg.memDump(address, num))

	case "DISPLAY":
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, dbg.ch8.Video.String())

	case "DISASM":
		s := &strings.Builder{}
		if err := disassembly.Write(s, dbg.cart.Data); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, strings.TrimSuffix(s.String(), "\n"))

	case "KEY":
		if len(args) == 0 {
			return curated.Errorf(InvalidArgument, command, "key required")
		}
		key, err := parseNumber(command, "0x"+strings.TrimPrefix(strings.ToLower(args[0]), "0x"), 0xf)
		if err != nil {
			return err
		}
		if len(args) > 1 && strings.ToUpper(args[1]) == "UP" {
			return dbg.ch8.KeyUp(uint8(key))
		}
		return dbg.ch8.KeyDown(uint8(key))

	case "LAST":
		dbg.term.TermPrintLine(terminal.StyleInstruction, dbg.ch8.CPU.LastResult.String())

	default:
		return curated.Errorf(UnknownCommand, command)
	}

	return nil
}

// memDump presents memory in rows of eight bytes.
func (dbg *Debugger) memDump(address int, num int) string {
	s := &strings.Builder{}
	for i := 0; i < num; i++ {
		a := uint16(address + i)
		b, err := dbg.ch8.Mem.Read(a)
		if err != nil {
			break
		}
		if i%8 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%#04x  ", a))
		}
		s.WriteString(fmt.Sprintf("%02x ", b))
	}
	return s.String()
}
