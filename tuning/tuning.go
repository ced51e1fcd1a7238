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

// Package tuning converts pitch indices to frequencies using equal
// temperament anchored at A4. Pitch indices are MIDI key numbers, A4 being
// key 69.
//
// The frequencies are calculated once, when the package is initialised, so
// that the Frequency() function does no floating point arithmetic. It is safe
// to call from an interrupt handler.
package tuning

import (
	"fmt"
	"math"
)

// The reference pitch.
const (
	ReferenceKey       = 69
	ReferenceFrequency = 440
)

// NumKeys is the number of valid pitch indices.
const NumKeys = 128

// frequency for every pitch index, rounded to the nearest Hz
var frequencies [NumKeys]uint32

func init() {
	for k := range frequencies {
		f := ReferenceFrequency * math.Pow(2, float64(k-ReferenceKey)/12.0)
		frequencies[k] = uint32(math.Round(f))
	}
}

// Frequency returns the frequency in Hz of the pitch index. Indices beyond
// the last valid key return the frequency of the last valid key.
func Frequency(key uint8) uint32 {
	if int(key) >= NumKeys {
		key = NumKeys - 1
	}
	return frequencies[key]
}

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name returns the note name and octave of the pitch index. Key 60 is "C4"
// and key 69 is "A4".
func Name(key uint8) string {
	return fmt.Sprintf("%s%d", names[key%12], int(key)/12-1)
}

// Nearest returns the pitch index with the frequency closest to hz. Where
// more than one index has the same frequency the lowest index is returned.
func Nearest(hz uint32) uint8 {
	var key uint8
	best := uint32(math.MaxUint32)
	for k, f := range frequencies {
		d := max(f, hz) - min(f, hz)
		if d < best {
			best = d
			key = uint8(k)
		}
	}
	return key
}
