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

// Package wavwriter records the beep output of the machine to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety and
// written to disk on program end. It is therefore probably only suitable
// for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/logger"
)

// Error messages.
const (
	WavError = "wavwriter: %v"
)

const (
	sampleFreq     = 22050
	beepFreq       = 440
	samplesPerTick = sampleFreq / 60
)

// WavWriter records the state of the sound timer, one update per timer
// tick, and renders it as a square wave on End().
type WavWriter struct {
	filename string
	buffer   []int
	phase    int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}
}

// AddBeepState appends one timer tick's worth of samples. A square wave
// while the beep is sounding, silence otherwise.
func (aw *WavWriter) AddBeepState(active bool) {
	halfPeriod := sampleFreq / beepFreq / 2

	for i := 0; i < samplesPerTick; i++ {
		v := 128
		if active && (aw.phase/halfPeriod)%2 == 0 {
			v = 160
		}
		aw.buffer = append(aw.buffer, v)

		if active {
			aw.phase++
		} else {
			aw.phase = 0
		}
	}
}

// End writes the buffered audio to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavError, err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
