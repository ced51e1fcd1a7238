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

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gameaudio/tuning"
)

// The largest pitch index. Pitch indices are MIDI key numbers.
const MaxKey = 127

// The loudest discrete volume level. Volume zero is silence.
const MaxVolume = 6

// Note is a single musical event. It is either a tone, with a pitch index and
// volume, or a rest. Every note has a duration in milliseconds.
//
// The zero value is not a valid note. Use NewNote() or Rest().
type Note struct {
	key      uint8
	volume   uint8
	duration uint16
}

// NewNote creates a toned note. The key is a MIDI key number (A4 is key 69)
// and the volume is a discrete level from 1 to MaxVolume. A volume of zero
// creates a rest.
//
// Panics if the key or volume is out of range or if the duration is zero.
func NewNote(key uint8, duration uint16, volume uint8) Note {
	if key > MaxKey {
		panic(fmt.Sprintf("song: pitch index %d out of range", key))
	}
	if volume > MaxVolume {
		panic(fmt.Sprintf("song: volume %d out of range", volume))
	}
	if duration == 0 {
		panic("song: note has no duration")
	}
	return Note{key: key, volume: volume, duration: duration}
}

// Rest creates a note of silence. Panics if the duration is zero.
func Rest(duration uint16) Note {
	if duration == 0 {
		panic("song: rest has no duration")
	}
	return Note{duration: duration}
}

// Key returns the pitch index of the note. Meaningless for a rest.
func (n Note) Key() uint8 {
	return n.key
}

// Volume returns the discrete volume level of the note. Zero for a rest.
func (n Note) Volume() uint8 {
	return n.volume
}

// Duration returns the duration of the note in milliseconds.
func (n Note) Duration() uint16 {
	return n.duration
}

// Length returns the duration of the note as a time.Duration.
func (n Note) Length() time.Duration {
	return time.Duration(n.duration) * time.Millisecond
}

// IsRest returns true if the note is silence.
func (n Note) IsRest() bool {
	return n.volume == 0
}

func (n Note) String() string {
	if n.IsRest() {
		return fmt.Sprintf("rest %dms", n.duration)
	}
	return fmt.Sprintf("%s vol=%d %dms", tuning.Name(n.key), n.volume, n.duration)
}
