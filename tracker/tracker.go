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

package tracker

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/gameaudio/hardware"
	"github.com/jetsetilly/gameaudio/tuning"
)

// the number of entries kept if NewTracker() is given an unusable value.
const defaultMax = 1024

// Entry is a single change in the state of the hardware.
type Entry struct {
	At    time.Duration
	State hardware.State

	// the name of the note being played or "-" if no note is playing
	Note string
}

func (e Entry) String() string {
	return fmt.Sprintf("%-10s %-4s %s", e.At, e.Note, e.State)
}

// Tracker implements the hardware.Tracker interface and keeps a history of
// the speaker state over time.
type Tracker struct {
	crit sync.Mutex

	entries []Entry
	max     int
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The oldest entries are forgotten once the number of entries reaches max.
func NewTracker(max int) *Tracker {
	if max < 1 {
		max = defaultMax
	}
	return &Tracker{
		entries: make([]Entry, 0, max),
		max:     max,
	}
}

// LookupNote returns the name of the note produced by the hardware state.
func LookupNote(state hardware.State) string {
	if !state.PWM.Attached || !state.PWM.Enabled || state.PWM.High == 0 {
		return "-"
	}
	return tuning.Name(tuning.Nearest(state.PWM.Frequency))
}

// Track implements the hardware.Tracker interface.
func (tr *Tracker) Track(at time.Duration, state hardware.State) {
	tr.crit.Lock()
	defer tr.crit.Unlock()

	tr.entries = append(tr.entries, Entry{
		At:    at,
		State: state,
		Note:  LookupNote(state),
	})
	if len(tr.entries) > tr.max {
		tr.entries = tr.entries[1:]
	}
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	c := make([]Entry, len(tr.entries))
	copy(c, tr.entries)
	return c
}

// Clear all entries.
func (tr *Tracker) Clear() {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.entries = tr.entries[:0]
}

// Write entries to io.Writer, one per line.
func (tr *Tracker) Write(output io.Writer) {
	for _, e := range tr.Copy() {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

func (tr *Tracker) String() string {
	s := &strings.Builder{}
	tr.Write(s)
	return s.String()
}
