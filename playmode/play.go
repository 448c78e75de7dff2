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

// Package playmode runs the emulation for playing. An SDL window shows the
// display, the keyboard is mapped onto the machine's keypad and the beep
// tone is played through the host's audio device.
package playmode

import (
	"time"

	"github.com/kevinadari/gopher8/gui"
	"github.com/kevinadari/gopher8/gui/sdlplay"
	"github.com/kevinadari/gopher8/hardware"
	"github.com/kevinadari/gopher8/logger"
	"github.com/kevinadari/gopher8/romloader"
	"github.com/kevinadari/gopher8/wavwriter"
)

// the timers of the machine tick at sixty hertz and so, conveniently, does
// the display refresh
const tickHz = 60

// Play is the entry point for playmode. It runs until the user quits the
// window, presses escape, or the machine hits a fatal error.
//
// instPerTick is the number of instructions executed per timer tick. there
// is no authoritative value, real hardware varied, so it is adjustable.
func Play(cart romloader.Loader, scale int, instPerTick int, wavFile string) (rerr error) {
	ch8 := hardware.NewChip8()

	if cart.Data == nil {
		if err := cart.Load(); err != nil {
			return err
		}
	}
	if err := ch8.AttachROM(cart); err != nil {
		return err
	}
	logger.Logf("playmode", "loaded %s (%s)", cart.ShortName(), cart.Hash)

	scr, err := sdlplay.NewSdlPlay(scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	events := make(chan gui.Event, 64)
	scr.SetEventChannel(events)

	var aw *wavwriter.WavWriter
	if wavFile != "" {
		aw = wavwriter.NewWavWriter(wavFile)
		defer func() {
			if err := aw.End(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	tick := time.NewTicker(time.Second / tickHz)
	defer tick.Stop()

	for {
		scr.Service()

		// consume whatever user input arrived since the last tick
		for more := true; more; {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case gui.EventQuit:
					return nil
				case gui.EventKeyboard:
					if ev.Key == "Escape" {
						return nil
					}
					if err := KeyboardEventHandler(ev, ch8); err != nil {
						return err
					}
				}
			default:
				more = false
			}
		}

		for i := 0; i < instPerTick; i++ {
			res, err := ch8.Step()
			if err != nil {
				return err
			}
			if res == hardware.StepBlocked {
				break
			}
		}

		ch8.TickTimers()

		beep := ch8.IsSoundActive()
		scr.SetSound(beep)
		if aw != nil {
			aw.AddBeepState(beep)
		}

		if ch8.Video.IsDirty() {
			if err := scr.SetPixels(ch8.Video.Snapshot()); err != nil {
				return err
			}
			ch8.Video.ClearDirty()
		}

		<-tick.C
	}
}
