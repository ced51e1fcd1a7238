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

import "time"

// Timer is the hardware timer used to measure the duration of each note. It
// is a one-shot timer: once armed it fires once unless disabled.
type Timer interface {
	// Arm starts the timer so that it expires after the duration. Any
	// previous arming is forgotten.
	Arm(d time.Duration)

	// EnableInterrupt allows the expiry event to raise an interrupt.
	EnableInterrupt()

	// ClearEvent clears the pending expiry event.
	ClearEvent()

	// Disable stops the timer. It will not fire until armed again.
	Disable()
}

// PWM is the channel that drives the speaker with a square wave. The PWM
// channel knows which pin the speaker is connected to; Attach() and Detach()
// connect and disconnect the channel from that pin.
type PWM interface {
	// Attach binds the PWM output to the speaker pin.
	Attach()

	// Detach releases the speaker pin so that it can be driven directly.
	Detach()

	// SetFrequency sets the period of the square wave.
	SetFrequency(hz uint32)

	// SetDuty sets the fraction of each period that the output is high. The
	// fraction is high/total.
	SetDuty(high uint32, total uint32)

	// Enable starts the output toggling.
	Enable()

	// Disable stops the output toggling.
	Disable()
}

// Pin is the speaker pin when driven directly as a digital output. It is only
// used while the PWM channel is detached.
type Pin interface {
	High()
	Low()
}
