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

package main

import (
	"fmt"
	"os"

	"github.com/kevinadari/gopher8/debugger"
	"github.com/kevinadari/gopher8/debugger/terminal"
	"github.com/kevinadari/gopher8/debugger/terminal/colorterm"
	"github.com/kevinadari/gopher8/debugger/terminal/plainterm"
	"github.com/kevinadari/gopher8/disassembly"
	"github.com/kevinadari/gopher8/logger"
	"github.com/kevinadari/gopher8/modalflag"
	"github.com/kevinadari/gopher8/playmode"
	"github.com/kevinadari/gopher8/romloader"
	"github.com/kevinadari/gopher8/version"
)

const defaultInstPerTick = 12

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "VERSION":
		fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, version.Revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.Path(), err)
		os.Exit(10)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 10, "window scale factor")
	instPerTick := md.AddInt("ipf", defaultInstPerTick, "instructions executed per timer tick")
	wavFile := md.AddString("wav", "", "record beep audio to the named WAV file")
	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md.Path())
	case 1:
		cart := romloader.NewLoader(md.GetArg(0))
		return playmode.Play(cart, *scale, *instPerTick, *wavFile)
	default:
		return fmt.Errorf("too many arguments for %s mode", md.Path())
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	var term terminal.Terminal
	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md.Path())
	case 1:
		dbg := debugger.NewDebugger(term)
		return dbg.Start(romloader.NewLoader(md.GetArg(0)))
	default:
		return fmt.Errorf("too many arguments for %s mode", md.Path())
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md.Path())
	case 1:
		cart := romloader.NewLoader(md.GetArg(0))
		return disassembly.FromLoader(cart, md.Output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md.Path())
	}
}
