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

// Package colorterm implements the Terminal interface for an ANSI terminal.
// It supports colour output, command history and basic line editing. The
// terminal is switched to cbreak mode for the duration of the session.
package colorterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/debugger/terminal"
)

// ColorTerminal implements the Terminal interface for posix terminals.
type ColorTerminal struct {
	input  *os.File
	output *os.File

	// terminal attributes as they were before Initialise(). restored by
	// CleanUp()
	canAttr unix.Termios

	history []string
}

// Initialise implements the terminal.Terminal interface. The terminal is put
// into cbreak mode: input is available byte by byte and echoing is done by
// us.
func (ct *ColorTerminal) Initialise() error {
	ct.input = os.Stdin
	ct.output = os.Stdout
	ct.history = make([]string, 0)

	if err := termios.Tcgetattr(ct.input.Fd(), &ct.canAttr); err != nil {
		return err
	}

	cbreakAttr := ct.canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	return termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &cbreakAttr)
}

// CleanUp implements the terminal.Terminal interface. The terminal is
// returned to canonical mode.
func (ct *ColorTerminal) CleanUp() {
	fmt.Fprint(ct.output, "\r")
	_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.canAttr)
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleInstruction:
		fmt.Fprintf(ct.output, "%s%s%s\n", penYellow, s, normalPen)
	case terminal.StyleFeedback:
		fmt.Fprintf(ct.output, "%s%s%s\n", dimPen, s, normalPen)
	case terminal.StyleError:
		fmt.Fprintf(ct.output, "%s* %s%s\n", penRed, s, normalPen)
	default:
		fmt.Fprintln(ct.output, s)
	}
}

// TermRead implements the terminal.Input interface. Input is read a byte at
// a time, giving us enough control to support backspace editing and history
// recall with the up and down arrow keys.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	line := make([]byte, 0, 64)
	histIdx := len(ct.history)

	showPrompt := func() {
		fmt.Fprintf(ct.output, "\r%s%s%s%s%s", eraseLine, penCyan, prompt, normalPen, string(line))
	}
	showPrompt()

	b := make([]byte, 1)
	for {
		n, err := ct.input.Read(b)
		if err != nil {
			return "", curated.Errorf(terminal.UserInterrupt)
		}
		if n == 0 {
			continue
		}

		switch b[0] {
		case 0x03: // ctrl-c
			fmt.Fprintln(ct.output)
			return "", curated.Errorf(terminal.UserInterrupt)

		case 0x04: // ctrl-d
			if len(line) == 0 {
				fmt.Fprintln(ct.output)
				return "", curated.Errorf(terminal.UserInterrupt)
			}

		case '\n', '\r':
			fmt.Fprintln(ct.output)
			s := string(line)
			if s != "" {
				ct.history = append(ct.history, s)
			}
			return s, nil

		case 0x08, 0x7f: // backspace
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(ct.output, "\b \b")
			}

		case 0x1b: // escape sequence
			seq := make([]byte, 2)
			if _, err := ct.input.Read(seq); err != nil {
				return "", curated.Errorf(terminal.UserInterrupt)
			}
			if seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A': // cursor up
				if histIdx > 0 {
					histIdx--
					line = append(line[:0], ct.history[histIdx]...)
					showPrompt()
				}
			case 'B': // cursor down
				if histIdx < len(ct.history)-1 {
					histIdx++
					line = append(line[:0], ct.history[histIdx]...)
				} else {
					histIdx = len(ct.history)
					line = line[:0]
				}
				showPrompt()
			}

		default:
			if b[0] >= 0x20 && b[0] < 0x7f {
				line = append(line, b[0])
				fmt.Fprint(ct.output, string(b[0]))
			}
		}
	}
}
