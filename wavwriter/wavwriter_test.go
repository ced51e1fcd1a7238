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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gameaudio/hardware/speaker"
	"github.com/jetsetilly/gameaudio/logger"
	"github.com/jetsetilly/gameaudio/test"
	"github.com/jetsetilly/gameaudio/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	_, err := wavwriter.New(logger.Allow, "", 44100)
	test.ExpectFailure(t, err)
	_, err = wavwriter.New(logger.Allow, fn, 0)
	test.ExpectFailure(t, err)

	ww, err := wavwriter.New(logger.Allow, fn, 8000)
	test.DemandSuccess(t, err)
	test.DemandImplements[speaker.Mixer](t, ww)

	test.ExpectSuccess(t, ww.SetAudio([]int16{0, 1000, -1000, 0}))
	test.ExpectSuccess(t, ww.SetAudio([]int16{32767, -32768}))
	test.ExpectEquality(t, ww.Len(), 6)

	ww.Reset()
	test.ExpectEquality(t, ww.Len(), 0)
	test.ExpectSuccess(t, ww.SetAudio([]int16{0, 1000, -1000, 0}))
	test.ExpectSuccess(t, ww.EndMixing())

	// 44 byte header followed by four 16 bit samples
	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(44+4*2))
}
