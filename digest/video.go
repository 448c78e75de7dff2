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

// Package digest fingerprints emulator output. The fingerprint of a sequence
// of frames can be compared against a known good value, which is a lot
// cheaper than comparing the frames themselves.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/kevinadari/gopher8/hardware/video"
)

// Video is a rolling SHA1 fingerprint of every frame folded into it. The
// digest of frame N is hashed together with the pixels of frame N+1, so the
// final value depends on every frame and on their order.
type Video struct {
	digest [sha1.Size]byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Fold the current contents of the framebuffer into the digest.
func (dig *Video) Fold(vid *video.Video) {
	b := make([]byte, 0, sha1.Size+video.Width*video.Height)
	b = append(b, dig.digest[:]...)
	b = append(b, vid.Snapshot()...)
	dig.digest = sha1.Sum(b)
	dig.frames++
}

// Hash returns the fingerprint of all frames folded so far.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// NumFrames returns the number of frames folded so far.
func (dig *Video) NumFrames() int {
	return dig.frames
}

// ResetDigest resets the fingerprint to its initial value.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}
