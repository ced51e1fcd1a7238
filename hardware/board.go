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

package hardware

import (
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/gameaudio/curated"
	"github.com/jetsetilly/gameaudio/environment"
	"github.com/jetsetilly/gameaudio/hardware/clocks"
	"github.com/jetsetilly/gameaudio/hardware/gpio"
	"github.com/jetsetilly/gameaudio/hardware/pwm"
	"github.com/jetsetilly/gameaudio/hardware/speaker"
	"github.com/jetsetilly/gameaudio/hardware/timer"
	"github.com/jetsetilly/gameaudio/logger"
)

// State is the state of the speaker facing hardware at an instant.
type State struct {
	PWM pwm.Registers
	Pin bool
}

func (s State) String() string {
	if s.PWM.Attached {
		return s.PWM.String()
	}
	if s.Pin {
		return "pin high"
	}
	return "pin low"
}

// Tracker implementations are notified of every change to the State of the
// board.
type Tracker interface {
	Track(at time.Duration, state State)
}

// Board is the emulated micro:bit.
type Board struct {
	env *environment.Environment

	bus sync.Mutex

	Timer      *timer.Timer
	PWM        *pwm.PWM
	SpeakerPin *gpio.Pin
	Speaker    *speaker.Speaker

	// the interrupt vector for the timer
	interrupt func()

	tracker   Tracker
	lastState State
	tracked   bool

	// number of ticks since the board was created
	ticks uint64

	// number of interrupts delivered
	interrupts uint64
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard(env *environment.Environment) (*Board, error) {
	if env == nil || env.Prefs == nil {
		return nil, curated.Errorf("board: no environment")
	}

	b := &Board{
		env: env,
	}

	b.Timer = timer.NewTimer(&b.bus)
	b.SpeakerPin = gpio.NewPin(&b.bus, "P0.00")
	b.PWM = pwm.NewPWM(&b.bus, b.SpeakerPin)

	var err error

	b.Speaker, err = speaker.NewSpeaker(
		env.Prefs.SampleRate.Get().(int),
		env.Prefs.Buffer.Get().(int),
		env.Prefs.DCBlock.Get().(bool),
		env.Prefs.Volume.Get().(float64),
	)
	if err != nil {
		return nil, curated.Errorf("board: %v", err)
	}

	logger.Logf(env, "board", "sample rate %dHz", b.Speaker.SampleRate())

	return b, nil
}

func (b *Board) String() string {
	return fmt.Sprintf("%s %s [%s]", b.Elapsed(), b.State(), b.Timer)
}

// AttachInterrupt sets the function to be called when the timer raises its
// interrupt line. A nil value detaches the interrupt handler.
func (b *Board) AttachInterrupt(f func()) {
	b.interrupt = f
}

// AddAudioMixer adds a mixer to the list of mixers that receive the output of
// the speaker.
func (b *Board) AddAudioMixer(m speaker.Mixer) {
	b.Speaker.AddMixer(m)
}

// SetTracker sets the tracker that is notified of changes to the State of the
// board. The current state is tracked immediately.
func (b *Board) SetTracker(t Tracker) {
	b.tracker = t
	b.tracked = false
	b.track(b.State())
}

// State returns the current state of the speaker facing hardware.
func (b *Board) State() State {
	b.bus.Lock()
	defer b.bus.Unlock()
	return b.peekState()
}

// peekState must only be called while the bus is locked.
func (b *Board) peekState() State {
	return State{
		PWM: b.PWM.PeekRegisters(),
		Pin: b.SpeakerPin.Peek(),
	}
}

// Elapsed returns the amount of emulated time since the board was created.
func (b *Board) Elapsed() time.Duration {
	return b.elapsed(b.ticks)
}

func (b *Board) elapsed(ticks uint64) time.Duration {
	return time.Duration(ticks * uint64(time.Second) / clocks.TickRate)
}

// Interrupts returns the number of interrupts that have been delivered.
func (b *Board) Interrupts() uint64 {
	return b.interrupts
}

// track the state if it has changed since the last call.
func (b *Board) track(state State) {
	if b.tracker == nil {
		return
	}
	if b.tracked && state == b.lastState {
		return
	}
	b.tracked = true
	b.lastState = state
	b.tracker.Track(b.Elapsed(), state)
}

// Run the board for the number of samples. Any changes made to the board by
// the main program while the board is running are noticed at the next sample
// boundary.
func (b *Board) Run(samples int) error {
	b.track(b.State())

	for samples > 0 {
		var raised bool
		var sampled bool

		b.bus.Lock()
		for !raised && !sampled {
			raised = b.Timer.Step()
			b.PWM.Step()
			sampled = b.Speaker.Tick(b.PWM.Output())
			b.ticks++
		}
		state := b.peekState()
		b.bus.Unlock()

		if sampled {
			samples--
		}

		b.track(state)

		if b.Speaker.Full() {
			if err := b.Speaker.Flush(); err != nil {
				return curated.Errorf("board: %v", err)
			}
		}

		if raised && b.interrupt != nil {
			b.interrupts++
			b.interrupt()
			b.track(b.State())
		}
	}

	return nil
}

// RunFor runs the board for the duration of emulated time, rounded down to
// the nearest sample.
func (b *Board) RunFor(d time.Duration) error {
	return b.Run(int(int64(d) * int64(b.Speaker.SampleRate()) / int64(time.Second)))
}

// End flushes any samples still waiting to be sent to the mixers and tells the
// mixers that no more samples will be produced.
func (b *Board) End() error {
	if err := b.Speaker.End(); err != nil {
		return curated.Errorf("board: %v", err)
	}
	return nil
}
