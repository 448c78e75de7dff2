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

// Package video implements the 64x32 monochrome framebuffer. The framebuffer
// is mutated only by the clear-screen and draw-sprite instructions; the
// renderer sees it through the Snapshot() function and the dirty flag.
//
// Sprite coordinates wrap around the edges of the screen. This is the
// behaviour of the majority of compatible interpreters. The alternative,
// clipping, is not supported.
package video

import (
	"strings"
)

// Dimensions of the screen in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the framebuffer of the machine. Pixels are stored row-major, one
// byte per pixel, each byte either 0 or 1.
type Video struct {
	pixels [Width * Height]uint8

	// whether the framebuffer has changed since the last ClearDirty()
	dirty bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Reset blanks the screen without setting the dirty flag.
func (vid *Video) Reset() {
	for i := range vid.pixels {
		vid.pixels[i] = 0
	}
	vid.dirty = false
}

// Clear the screen. This is the implementation of the 00E0 instruction.
func (vid *Video) Clear() {
	for i := range vid.pixels {
		vid.pixels[i] = 0
	}
	vid.dirty = true
}

// DrawSprite XORs the sprite into the framebuffer at coordinate (x, y). Each
// byte of rows is one row of eight pixels, most significant bit leftmost.
// Returns true if any pixel was flipped from set to unset.
//
// The collision flag is sticky across the whole sprite. It is never reset
// mid-operation.
func (vid *Video) DrawSprite(x uint8, y uint8, rows []uint8) bool {
	collision := false

	for r, b := range rows {
		py := (int(y) + r) % Height
		for c := 0; c < 8; c++ {
			if b&(0x80>>c) == 0 {
				continue
			}
			px := (int(x) + c) % Width

			i := py*Width + px
			if vid.pixels[i] == 1 {
				collision = true
			}
			vid.pixels[i] ^= 1
		}
	}

	vid.dirty = true
	return collision
}

// Pixel returns the value at coordinate (x, y). Out of range coordinates
// wrap, consistent with DrawSprite.
func (vid *Video) Pixel(x int, y int) uint8 {
	return vid.pixels[(y%Height)*Width+(x%Width)]
}

// Snapshot returns a copy of the framebuffer, row-major.
func (vid *Video) Snapshot() []uint8 {
	s := make([]uint8, len(vid.pixels))
	copy(s, vid.pixels[:])
	return s
}

// IsDirty returns true if the framebuffer has changed since the last call to
// ClearDirty().
func (vid *Video) IsDirty() bool {
	return vid.dirty
}

// ClearDirty acknowledges the current framebuffer content. Called by the
// renderer after it has consumed a frame.
func (vid *Video) ClearDirty() {
	vid.dirty = false
}

// String returns the framebuffer as rows of '*' and '.' characters. Useful
// for the terminal debugger.
func (vid *Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.pixels[y*Width+x] == 0 {
				s.WriteRune('.')
			} else {
				s.WriteRune('*')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
