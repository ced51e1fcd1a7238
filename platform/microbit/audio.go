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

//go:build tinygo && nrf52833

package microbit

import (
	"device/nrf"
	"machine"
	"runtime/interrupt"

	"github.com/jetsetilly/gameaudio/gameaudio"
	"github.com/jetsetilly/gameaudio/logger"
)

// SpeakerPin is the pin the on-board speaker is connected to.
const SpeakerPin = machine.P0_00

// the engine shared with the TIMER0 interrupt
var audio *gameaudio.LockMut

// NewAudio prepares TIMER0, PWM0 and the speaker pin and returns the engine
// that uses them. The TIMER0 interrupt is enabled before returning.
//
// Panics if called more than once or if PWM0 cannot be configured.
func NewAudio() *gameaudio.LockMut {
	if audio != nil {
		panic("microbit: audio already created")
	}

	SpeakerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	SpeakerPin.Low()

	p, err := newPWM(machine.PWM0, SpeakerPin)
	if err != nil {
		panic(err)
	}

	e := gameaudio.New(newTimer(nrf.TIMER0), p, SpeakerPin)

	// Play() and Stop() run with interrupts masked
	e.SetLogPermission(logger.Deny)

	audio = gameaudio.NewLockMut(&critical{})
	audio.Init(e)

	intr := interrupt.New(nrf.IRQ_TIMER0, func(interrupt.Interrupt) {
		audio.Interrupt()
	})
	intr.SetPriority(0xc0)
	intr.Enable()

	return audio
}
