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

// Package timer implements the compare timer of the nRF52833, configured in
// the way it is used for note timing: a one-shot counter that raises the
// COMPARE[0] event when it reaches the compare value, stopping and clearing
// itself via the COMPARE0_STOP and COMPARE0_CLEAR shortcuts.
//
// The counter advances once per call to Step(). The interrupt line is raised
// when the event is generated and the interrupt is enabled; the line stays
// raised until the event is cleared.
package timer

import (
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/gameaudio/hardware/clocks"
)

// Timer implements a one-shot compare timer.
type Timer struct {
	bus sync.Locker

	// the counter is running
	Running bool

	// the current value of the counter and the value that it is compared to
	Counter uint32
	Compare uint32

	// the COMPARE[0] event register
	Event bool

	// INTENSET for COMPARE[0]
	InterruptEnabled bool
}

// NewTimer is the preferred method of initialisation of the Timer type. Access
// to the timer registers is serialised by the bus argument.
func NewTimer(bus sync.Locker) *Timer {
	return &Timer{
		bus: bus,
	}
}

func (tmr *Timer) String() string {
	tmr.bus.Lock()
	defer tmr.bus.Unlock()
	return fmt.Sprintf("run=%v cnt=%d cmp=%d evt=%v int=%v",
		tmr.Running,
		tmr.Counter,
		tmr.Compare,
		tmr.Event,
		tmr.InterruptEnabled,
	)
}

// Ticks converts a duration to the number of timer ticks. The result is
// never less than one tick.
func Ticks(d time.Duration) uint32 {
	t := uint64(d) * clocks.TimerClock / uint64(time.Second)
	if t < 1 {
		return 1
	}
	if t > 0xffffffff {
		return 0xffffffff
	}
	return uint32(t)
}

// Arm starts the timer from zero. The event will be generated after the
// duration has passed.
func (tmr *Timer) Arm(d time.Duration) {
	tmr.bus.Lock()
	defer tmr.bus.Unlock()
	tmr.Compare = Ticks(d)
	tmr.Counter = 0
	tmr.Running = true
}

// EnableInterrupt connects the COMPARE[0] event to the interrupt line.
func (tmr *Timer) EnableInterrupt() {
	tmr.bus.Lock()
	defer tmr.bus.Unlock()
	tmr.InterruptEnabled = true
}

// DisableInterrupt disconnects the COMPARE[0] event from the interrupt line.
func (tmr *Timer) DisableInterrupt() {
	tmr.bus.Lock()
	defer tmr.bus.Unlock()
	tmr.InterruptEnabled = false
}

// ClearEvent clears the COMPARE[0] event, which lowers the interrupt line.
func (tmr *Timer) ClearEvent() {
	tmr.bus.Lock()
	defer tmr.bus.Unlock()
	tmr.Event = false
}

// Disable stops and clears the counter. The event register is unaffected.
func (tmr *Timer) Disable() {
	tmr.bus.Lock()
	defer tmr.bus.Unlock()
	tmr.Running = false
	tmr.Counter = 0
}

// Step advances the timer by one tick. Returns true if the interrupt line was
// raised during the tick.
//
// Must only be called by the owner of the bus while the bus is locked.
func (tmr *Timer) Step() bool {
	if !tmr.Running {
		return false
	}

	tmr.Counter++
	if tmr.Counter < tmr.Compare {
		return false
	}

	// shortcuts stop and clear the counter
	tmr.Running = false
	tmr.Counter = 0

	raised := !tmr.Event && tmr.InterruptEnabled
	tmr.Event = true

	return raised
}

// Pending returns true if the interrupt line is raised.
//
// Must only be called by the owner of the bus while the bus is locked.
func (tmr *Timer) Pending() bool {
	return tmr.Event && tmr.InterruptEnabled
}
