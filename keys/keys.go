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

package keys

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gameaudio/curated"
	"github.com/pkg/term"
)

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt = 3 // end-of-text character
	KeyEsc       = 27
	KeySpace     = 32
)

// Action is the meaning of a key press.
type Action int

// List of valid Action values.
const (
	None Action = iota
	Toggle
	Restart
	Next
	Quit
)

func (a Action) String() string {
	switch a {
	case Toggle:
		return "toggle"
	case Restart:
		return "restart"
	case Next:
		return "next"
	case Quit:
		return "quit"
	}
	return "none"
}

// Lookup returns the Action for the key.
func Lookup(key byte) Action {
	switch key {
	case KeySpace, 'p', 'P':
		return Toggle
	case 'r', 'R':
		return Restart
	case 'n', 'N':
		return Next
	case 'q', 'Q', KeyEsc, KeyInterrupt:
		return Quit
	}
	return None
}

// the interval at which the reader checks whether it should stop.
const pollInterval = 100 * time.Millisecond

// Keyboard reads from the controlling terminal.
type Keyboard struct {
	t *term.Term
}

// Open the controlling terminal in cbreak mode.
func Open() (*Keyboard, error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("keys: %v", err)
	}
	if err := t.SetReadTimeout(pollInterval); err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, curated.Errorf("keys: %v", err)
	}
	return &Keyboard{t: t}, nil
}

// Listen sends an Action for every recognised key press on the returned
// channel. The channel is closed when the context is done or when the
// terminal can no longer be read.
func (kb *Keyboard) Listen(ctx context.Context) <-chan Action {
	actions := make(chan Action)

	go func() {
		defer close(actions)

		b := make([]byte, 1)
		for ctx.Err() == nil {
			n, err := kb.t.Read(b)
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, os.ErrDeadlineExceeded) {
					continue // for loop
				}
				return
			}
			if n == 0 {
				continue // for loop
			}
			if a := Lookup(b[0]); a != None {
				select {
				case actions <- a:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return actions
}

// Close restores the terminal to its original mode.
func (kb *Keyboard) Close() error {
	if err := kb.t.Restore(); err != nil {
		return curated.Errorf("keys: %v", err)
	}
	if err := kb.t.Close(); err != nil {
		return curated.Errorf("keys: %v", err)
	}
	return nil
}
