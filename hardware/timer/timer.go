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

// Package timer implements the two countdown timers of the machine. The
// timers decrement on a cadence chosen by the host (canonically 60Hz) and
// the cadence is independent of how fast instructions are being executed.
// See the Run() function in the hardware package for the recommended
// coupling.
package timer

import (
	"fmt"
)

// Timers are the delay and sound countdown timers. Both count down to zero
// and stop. A positive sound timer is the sole trigger for the beep signal.
type Timers struct {
	delay uint8
	sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

// Reset stops both timers.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.delay, tmr.sound)
}

// Tick advances both timers by one step of the external cadence. Each timer
// decrements independently toward a floor of zero.
func (tmr *Timers) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// Delay returns the current value of the delay timer (FX07).
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// SetDelay loads the delay timer (FX15).
func (tmr *Timers) SetDelay(value uint8) {
	tmr.delay = value
}

// SetSound loads the sound timer (FX18).
func (tmr *Timers) SetSound(value uint8) {
	tmr.sound = value
}

// IsSoundActive returns true while the sound timer is above zero. The host
// should be beeping for as long as this returns true.
func (tmr *Timers) IsSoundActive() bool {
	return tmr.sound > 0
}
