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

package tuning_test

import (
	"testing"

	"github.com/jetsetilly/gameaudio/test"
	"github.com/jetsetilly/gameaudio/tuning"
)

func TestReference(t *testing.T) {
	test.ExpectEquality(t, tuning.Frequency(tuning.ReferenceKey), uint32(440))
	test.ExpectEquality(t, tuning.Frequency(57), uint32(220))
	test.ExpectEquality(t, tuning.Frequency(81), uint32(880))

	// middle C
	test.ExpectEquality(t, tuning.Frequency(60), uint32(262))
}

func TestMonotonic(t *testing.T) {
	prev := tuning.Frequency(0)
	for k := 1; k < tuning.NumKeys; k++ {
		f := tuning.Frequency(uint8(k))
		if f < prev {
			t.Errorf("frequency of key %d (%d) is lower than key %d (%d)", k, f, k-1, prev)
		}
		prev = f
	}
}

func TestScenarioFrequencies(t *testing.T) {
	test.ExpectEquality(t, tuning.Frequency(68), uint32(415))
	test.ExpectEquality(t, tuning.Frequency(66), uint32(370))
}

func TestOutOfRange(t *testing.T) {
	test.ExpectEquality(t, tuning.Frequency(200), tuning.Frequency(127))
}

func TestName(t *testing.T) {
	test.ExpectEquality(t, tuning.Name(69), "A4")
	test.ExpectEquality(t, tuning.Name(60), "C4")
	test.ExpectEquality(t, tuning.Name(68), "G#4")
	test.ExpectEquality(t, tuning.Name(0), "C-1")
}

func TestNearest(t *testing.T) {
	test.ExpectEquality(t, tuning.Nearest(440), uint8(69))
	test.ExpectEquality(t, tuning.Nearest(415), uint8(68))
	test.ExpectEquality(t, tuning.Nearest(441), uint8(69))
	test.ExpectEquality(t, tuning.Nearest(0), uint8(0))

	// every key that has a unique frequency is found again
	for k := 60; k < tuning.NumKeys; k++ {
		test.ExpectEquality(t, tuning.Nearest(tuning.Frequency(uint8(k))), uint8(k))
	}
}
