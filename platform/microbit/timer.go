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
	"time"
)

// TIMER0 runs at 1MHz. the nrf52833 HFCLK is 16MHz
const timerPrescaler = 4

// timer is a one-shot timer on a TIMER peripheral. compare register zero
// stops and clears the timer when it matches.
type timer struct {
	dev *nrf.TIMER_Type
}

func newTimer(dev *nrf.TIMER_Type) *timer {
	tmr := &timer{dev: dev}
	dev.TASKS_STOP.Set(1)
	dev.MODE.Set(nrf.TIMER_MODE_MODE_Timer)
	dev.BITMODE.Set(nrf.TIMER_BITMODE_BITMODE_32Bit)
	dev.PRESCALER.Set(timerPrescaler)
	dev.SHORTS.Set(nrf.TIMER_SHORTS_COMPARE0_CLEAR_Msk | nrf.TIMER_SHORTS_COMPARE0_STOP_Msk)
	dev.TASKS_CLEAR.Set(1)
	return tmr
}

func (tmr *timer) Arm(d time.Duration) {
	tmr.dev.TASKS_STOP.Set(1)
	tmr.dev.TASKS_CLEAR.Set(1)
	tmr.dev.CC[0].Set(uint32(max(d.Microseconds(), 1)))
	tmr.dev.TASKS_START.Set(1)
}

func (tmr *timer) EnableInterrupt() {
	tmr.dev.INTENSET.Set(nrf.TIMER_INTENSET_COMPARE0_Msk)
}

func (tmr *timer) ClearEvent() {
	tmr.dev.EVENTS_COMPARE[0].Set(0)
}

func (tmr *timer) Disable() {
	tmr.dev.TASKS_STOP.Set(1)
	tmr.dev.TASKS_CLEAR.Set(1)
}
