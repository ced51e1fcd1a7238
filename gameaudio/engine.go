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

package gameaudio

import (
	"github.com/jetsetilly/gameaudio/logger"
	"github.com/jetsetilly/gameaudio/song"
	"github.com/jetsetilly/gameaudio/tuning"
)

const logTag = "gameaudio"

// Engine is the hardware used for game audio together with the song being
// played, if any.
type Engine struct {
	timer   Timer
	pwm     PWM
	speaker Pin

	// nil when the engine is Idle
	current *song.Song

	// whether the PWM channel is bound to the speaker pin. the binding is
	// released during silence and must always be reclaimed for the next tone
	attached bool

	// log permission. log entries are only ever made by Play() and Stop(). the
	// arguments are not formatted when logging is not allowed
	perm logger.Permission
}

// New takes ownership of the timer, PWM channel and speaker pin and performs
// the one-time hardware setup. The engine starts Idle with the speaker
// silent.
//
// The PWM channel is assumed to be attached to the speaker pin on entry.
func New(timer Timer, pwm PWM, speaker Pin) *Engine {
	e := &Engine{
		timer:    timer,
		pwm:      pwm,
		speaker:  speaker,
		attached: true,
		perm:     logger.Allow,
	}

	e.timer.Disable()
	e.timer.ClearEvent()
	e.timer.EnableInterrupt()
	e.silence()

	return e
}

// SetLogPermission changes the permission used when logging. Useful for
// silencing the engine in tests.
func (e *Engine) SetLogPermission(perm logger.Permission) {
	e.perm = perm
}

// State returns Idle or Playing.
func (e *Engine) State() State {
	if e.current == nil {
		return Idle
	}
	return Playing
}

// Current returns the installed song or nil if the engine is Idle. The song
// must not be advanced by the caller.
func (e *Engine) Current() *song.Song {
	return e.current
}

// Play starts a song playing and returns the previously installed song, or
// nil. The first note of the new song starts immediately.
//
// The song plays from its current position. Call Restart() on the song
// before Play() to start from the beginning.
func (e *Engine) Play(s *song.Song) *song.Song {
	prev := e.current
	e.current = s
	e.advance()
	if s != nil && e.perm.AllowLogging() {
		logger.Logf(e.perm, logTag, "play: %s", s)
	}
	return prev
}

// Stop song playback and return the song in its current state, or nil if
// there was no song. The speaker is silent when Stop() returns.
func (e *Engine) Stop() *song.Song {
	prev := e.current
	e.current = nil
	e.advance()
	if prev != nil && e.perm.AllowLogging() {
		logger.Logf(e.perm, logTag, "stop: %s", prev)
	}
	return prev
}

// HandleInterrupt is the timer interrupt service function. It must be called
// every time the armed timer expires.
func (e *Engine) HandleInterrupt() {
	e.advance()
}

// advance is the only state transition of the engine. it never blocks and
// never allocates
func (e *Engine) advance() {
	if e.current == nil {
		e.silence()
		e.timer.Disable()
		e.timer.ClearEvent()
		return
	}

	// read the note and then move the position. the note is emitted exactly
	// once for each position
	n := e.current.Advance()

	// audio must be programmed before the timer is re-armed so that the note
	// begins as close as possible to the end of the previous note
	if n.IsRest() {
		e.silence()
	} else {
		e.tone(n)
	}

	e.timer.Arm(n.Length())
	e.timer.ClearEvent()
}

func (e *Engine) tone(n song.Note) {
	if !e.attached {
		e.pwm.Attach()
		e.attached = true
	}
	e.pwm.SetFrequency(tuning.Frequency(n.Key()))
	e.pwm.SetDuty(Duty(n.Volume()))
	e.pwm.Enable()
}

// silence the speaker. driving the PWM at zero duty isn't enough because the
// coupling capacitor charges and the next tone is uncontrollably loud. the
// PWM is stopped and released and the pin is held high instead
func (e *Engine) silence() {
	e.pwm.Disable()
	if e.attached {
		e.pwm.Detach()
		e.attached = false
	}
	e.speaker.High()
}
