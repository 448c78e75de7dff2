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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

// the machine has a single sound: a square wave beep, played while the
// sound timer is counting down.
const (
	sampleFreq      = 22050
	beepFreq        = 440
	samplesPerQueue = sampleFreq / 60
)

type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one tick's worth of square wave and of silence
	beep    []uint8
	silence []uint8

	// phase of the square wave, carried between queues so the tone is
	// continuous
	phase int
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(samplesPerQueue),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	snd.beep = make([]uint8, samplesPerQueue)
	snd.silence = make([]uint8, samplesPerQueue)
	for i := range snd.silence {
		snd.silence[i] = snd.spec.Silence
	}

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// queue one tick's worth of samples. called once per frame by the playmode
// loop, keeping the audio queue in step with the display.
func (snd *sound) queue(active bool) {
	if !active {
		snd.phase = 0
		_ = sdl.QueueAudio(snd.id, snd.silence)
		return
	}

	halfPeriod := sampleFreq / beepFreq / 2
	for i := range snd.beep {
		if (snd.phase/halfPeriod)%2 == 0 {
			snd.beep[i] = snd.spec.Silence + 32
		} else {
			snd.beep[i] = snd.spec.Silence
		}
		snd.phase++
	}
	_ = sdl.QueueAudio(snd.id, snd.beep)
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
