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

package song

// Tempo converts musical beats into note durations.
type Tempo struct {
	// beats per minute
	BPM int
}

// Note value constants in beats, where a quarter note is one beat.
const (
	Whole      = 4.0
	Half       = 2.0
	Quarter    = 1.0
	Eighth     = 0.5
	Sixteenth  = 0.25
	DotHalf    = 3.0
	DotQuarter = 1.5
)

// Beats returns the duration in milliseconds of the number of beats. The
// result is never less than one millisecond and is capped at the longest
// duration a note can have.
func (t Tempo) Beats(beats float64) uint16 {
	ms := beats * 60000 / float64(t.BPM)
	switch {
	case ms < 1:
		return 1
	case ms > 65535:
		return 65535
	}
	return uint16(ms + 0.5)
}
