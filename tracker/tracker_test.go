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

package tracker_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gameaudio/hardware"
	"github.com/jetsetilly/gameaudio/hardware/pwm"
	"github.com/jetsetilly/gameaudio/test"
	"github.com/jetsetilly/gameaudio/tracker"
)

var silent = hardware.State{Pin: true}

var a4 = hardware.State{
	PWM: pwm.Registers{
		Frequency: 440,
		High:      66,
		Total:     132,
		Enabled:   true,
		Attached:  true,
	},
}

func TestLookupNote(t *testing.T) {
	test.ExpectEquality(t, tracker.LookupNote(silent), "-")
	test.ExpectEquality(t, tracker.LookupNote(a4), "A4")

	// attached but disabled is not a note
	st := a4
	st.PWM.Enabled = false
	test.ExpectEquality(t, tracker.LookupNote(st), "-")
}

func TestTracker(t *testing.T) {
	tr := tracker.NewTracker(10)
	tr.Track(0, silent)
	tr.Track(500*time.Millisecond, a4)

	e := tr.Copy()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Note, "-")
	test.ExpectEquality(t, e[1].Note, "A4")
	test.ExpectEquality(t, e[1].At, 500*time.Millisecond)

	test.ExpectEquality(t, tr.String(),
		"0s         -    pin high\n"+
			"500ms      A4   440Hz 66/132\n")

	// the copy is not affected by further entries
	tr.Track(time.Second, silent)
	test.ExpectEquality(t, len(e), 2)

	tr.Clear()
	test.ExpectEquality(t, len(tr.Copy()), 0)
}

func TestMaximumEntries(t *testing.T) {
	tr := tracker.NewTracker(3)
	for i := range 5 {
		tr.Track(time.Duration(i)*time.Millisecond, silent)
	}

	e := tr.Copy()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0].At, 2*time.Millisecond)
	test.ExpectEquality(t, e[2].At, 4*time.Millisecond)
}
