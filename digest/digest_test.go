// This file is part of GameAudio.
//
// GameAudio is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameAudio is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameAudio.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gameaudio/digest"
	"github.com/jetsetilly/gameaudio/hardware/speaker"
	"github.com/jetsetilly/gameaudio/test"
)

func hashOf(t *testing.T, samples []int16) string {
	t.Helper()
	dig := digest.NewAudio()
	test.DemandSuccess(t, dig.SetAudio(samples))
	test.DemandSuccess(t, dig.EndMixing())
	return dig.Hash()
}

func TestAudioDigest(t *testing.T) {
	test.DemandImplements[speaker.Mixer](t, digest.NewAudio())
	test.DemandImplements[digest.Digest](t, digest.NewAudio())

	// long enough to span several buffers
	a := make([]int16, 3000)
	for i := range a {
		a[i] = int16(i * 7)
	}

	test.ExpectEquality(t, hashOf(t, a), hashOf(t, a))

	b := make([]int16, len(a))
	copy(b, a)
	b[2999]++
	test.ExpectInequality(t, hashOf(t, a), hashOf(t, b))

	// the order in which samples are delivered is not important
	dig := digest.NewAudio()
	test.DemandSuccess(t, dig.SetAudio(a[:10]))
	test.DemandSuccess(t, dig.SetAudio(a[10:]))
	test.DemandSuccess(t, dig.EndMixing())
	test.ExpectEquality(t, dig.Hash(), hashOf(t, a))
}

func TestAudioDigestReset(t *testing.T) {
	dig := digest.NewAudio()
	empty := dig.Hash()

	test.DemandSuccess(t, dig.SetAudio([]int16{1, 2, 3}))
	test.DemandSuccess(t, dig.EndMixing())
	test.ExpectInequality(t, dig.Hash(), empty)

	dig.Reset()
	test.ExpectEquality(t, dig.Hash(), empty)
}
