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

package digest_test

import (
	"testing"

	"github.com/kevinadari/gopher8/digest"
	"github.com/kevinadari/gopher8/hardware/video"
	"github.com/kevinadari/gopher8/test"
)

func TestVideoDigest(t *testing.T) {
	vid := video.NewVideo()

	dig := digest.NewVideo()
	blank := dig.Hash()

	dig.Fold(vid)
	test.Equate(t, dig.NumFrames(), 1)
	oneFrame := dig.Hash()
	test.Equate(t, oneFrame == blank, false)

	// identical frame content still changes the rolling digest
	dig.Fold(vid)
	test.Equate(t, dig.Hash() == oneFrame, false)

	// two digests fed the same frames agree
	other := digest.NewVideo()
	other.Fold(vid)
	other.Fold(vid)
	test.Equate(t, other.Hash(), dig.Hash())

	// and differing content diverges
	vid.DrawSprite(0, 0, []uint8{0xff})
	other.Fold(vid)
	dig.Fold(vid)
	test.Equate(t, other.Hash(), dig.Hash())

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), blank)
	test.Equate(t, dig.NumFrames(), 0)
}
