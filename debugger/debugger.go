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

// Package debugger is a terminal driven debugger for the emulated machine.
// Instructions are stepped one at a time, machine state can be inspected
// between steps, and keypad input is injected with the KEY command.
package debugger

import (
	"fmt"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/debugger/terminal"
	"github.com/kevinadari/gopher8/hardware"
	"github.com/kevinadari/gopher8/logger"
	"github.com/kevinadari/gopher8/romloader"
)

const prompt = "[dbg] "

// instructions executed per timer tick by the RUN command. the same pacing
// as the playmode default.
const defaultInstructionsPerTick = 12

// Debugger is the basic debugging front-end for the emulation.
type Debugger struct {
	ch8  *hardware.Chip8
	term terminal.Terminal
	cart romloader.Loader

	// the session ends when running is false
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(term terminal.Terminal) *Debugger {
	return &Debugger{
		ch8:  hardware.NewChip8(),
		term: term,
	}
}

// Start the debugging session. Returns when the user quits or interrupts
// the session.
func (dbg *Debugger) Start(cart romloader.Loader) error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	// load here rather than leaving it to AttachROM(). the DISASM command
	// needs the ROM data
	dbg.cart = cart
	if dbg.cart.Data == nil {
		if err := dbg.cart.Load(); err != nil {
			return err
		}
	}

	if err := dbg.ch8.AttachROM(dbg.cart); err != nil {
		return err
	}
	logger.Logf("debugger", "%s attached", cart.ShortName())

	dbg.term.TermPrintLine(terminal.StyleFeedback,
		fmt.Sprintf("%s loaded. type HELP for the list of commands", cart.ShortName()))

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.term.TermPrintLine(terminal.StyleFeedback, "bye")
				return nil
			}
			return err
		}

		if err := dbg.parseCommand(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// step executes a single instruction, printing what happened.
func (dbg *Debugger) step() error {
	res, err := dbg.ch8.Step()
	if err != nil {
		return err
	}

	if res == hardware.StepBlocked {
		dbg.term.TermPrintLine(terminal.StyleFeedback, "waiting for key (use KEY to press one)")
		return nil
	}

	dbg.term.TermPrintLine(terminal.StyleInstruction, dbg.ch8.CPU.LastResult.String())
	return nil
}
