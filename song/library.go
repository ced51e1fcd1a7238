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

// DemoNotes returns the background melody used by the micro:bit
// demonstration program. The beat is the duration of one beat in
// milliseconds and volume is the level for all but the first tone.
//
// Panics if volume is out of range or beat is zero.
func DemoNotes(beat uint16, volume uint8) []Note {
	return []Note{
		Rest(beat),
		NewNote(68, beat, 1),
		NewNote(69, beat, volume),
		NewNote(68, beat, volume),
		NewNote(66, 2*beat, volume),
	}
}

// ScaleNotes returns an ascending major scale starting at the key, with
// every volume level in turn. Useful for hearing the volume curve.
func ScaleNotes(key uint8, duration uint16) []Note {
	steps := []uint8{0, 2, 4, 5, 7, 9, 11, 12}
	notes := make([]Note, 0, len(steps)+1)
	for i, s := range steps {
		notes = append(notes, NewNote(key+s, duration, uint8(i%MaxVolume)+1))
	}
	return append(notes, Rest(duration))
}

// Library is the list of named melodies available to the command line.
var Library = map[string]func() []Note{
	"demo": func() []Note {
		return DemoNotes(1000, 3)
	},
	"scenario": func() []Note {
		return []Note{
			Rest(500),
			NewNote(68, 250, 1),
			NewNote(69, 250, 2),
			NewNote(68, 250, 3),
			NewNote(66, 500, 1),
		}
	},
	"scale": func() []Note {
		return ScaleNotes(60, 300)
	},
}
