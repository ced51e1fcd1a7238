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

package performance

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/gameaudio/environment"
	"github.com/jetsetilly/gameaudio/gameaudio"
	"github.com/jetsetilly/gameaudio/hardware"
	"github.com/jetsetilly/gameaudio/song"
)

// the amount of emulated time run between checks of the real time clock.
const checkPeriod = 100 * time.Millisecond

// CalcSpeed returns the speed of emulation as a multiple of real time.
func CalcSpeed(emulated time.Duration, wall time.Duration) float64 {
	if wall <= 0 {
		return 0
	}
	return emulated.Seconds() / wall.Seconds()
}

// Check the performance of the emulated board playing the song. The board
// runs as fast as possible for the duration of real time.
func Check(output io.Writer, env *environment.Environment, profile Profile, notes []song.Note, duration time.Duration) error {
	board, err := hardware.NewBoard(env)
	if err != nil {
		return err
	}

	audio := gameaudio.NewLockMut(&sync.Mutex{})
	e := gameaudio.New(board.Timer, board.PWM, board.SpeakerPin)
	e.SetLogPermission(env)
	audio.Init(e)
	board.AttachInterrupt(audio.Interrupt)

	audio.WithLock(func(e *gameaudio.Engine) {
		e.Play(song.NewSong(notes))
	})

	var wall time.Duration

	runner := func() error {
		start := time.Now()
		for time.Since(start) < duration {
			if err := board.RunFor(checkPeriod); err != nil {
				return err
			}
		}
		wall = time.Since(start)
		return nil
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return err
	}

	if err := board.End(); err != nil {
		return err
	}

	fmt.Fprintf(output, "%.2fx real time (%s emulated in %s, %d interrupts)\n",
		CalcSpeed(board.Elapsed(), wall), board.Elapsed().Round(time.Millisecond),
		wall.Round(time.Millisecond), board.Interrupts())

	return nil
}
