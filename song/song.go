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
)

// Song is a sequence of notes with a current position. Playback moves forward
// through the notes and loops back to the first note after the last.
type Song struct {
	// the note sequence is referenced and never copied or changed
	notes []Note

	// the index of the next note to be played. always less than len(notes)
	position int
}

// NewSong makes a new song from a note sequence. The sequence is not copied
// and must not be changed by the caller once the song has been created.
//
// Panics if the sequence is empty.
func NewSong(notes []Note) *Song {
	if len(notes) == 0 {
		panic("song: no notes in song")
	}
	return &Song{notes: notes}
}

// Restart resets playback to the beginning of the song.
func (s *Song) Restart() {
	s.position = 0
}

// Advance returns the note at the current position and moves the position
// forward by one, wrapping to the start of the song after the last note.
//
// Should only be called by the audio engine.
func (s *Song) Advance() Note {
	n := s.notes[s.position]
	s.position++
	if s.position >= len(s.notes) {
		s.position = 0
	}
	return n
}

// Position returns the index of the note that will be played next.
func (s *Song) Position() int {
	return s.position
}

// Len returns the number of notes in the song.
func (s *Song) Len() int {
	return len(s.notes)
}

// Note returns the note at index i.
func (s *Song) Note(i int) Note {
	return s.notes[i]
}

// Duration returns the length of one complete pass through the song.
func (s *Song) Duration() time.Duration {
	var d time.Duration
	for _, n := range s.notes {
		d += n.Length()
	}
	return d
}

func (s *Song) String() string {
	return fmt.Sprintf("%d notes (%s) at %d", len(s.notes), s.Duration(), s.position)
}
