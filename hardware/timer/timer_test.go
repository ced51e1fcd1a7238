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

package timer_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gameaudio/hardware/timer"
	"github.com/jetsetilly/gameaudio/test"
)

// step the timer the number of times, under the bus lock. returns the number
// of the step that raised the interrupt line, or -1 if it was never raised
func step(bus sync.Locker, tmr *timer.Timer, n int) int {
	bus.Lock()
	defer bus.Unlock()

	raised := -1
	for i := 1; i <= n; i++ {
		if tmr.Step() && raised == -1 {
			raised = i
		}
	}
	return raised
}

func TestTicks(t *testing.T) {
	test.ExpectEquality(t, timer.Ticks(time.Millisecond), 1000)
	test.ExpectEquality(t, timer.Ticks(250*time.Millisecond), 250000)
	test.ExpectEquality(t, timer.Ticks(0), 1)
	test.ExpectEquality(t, timer.Ticks(100*time.Nanosecond), 1)
}

func TestOneShot(t *testing.T) {
	var bus sync.Mutex
	tmr := timer.NewTimer(&bus)
	tmr.EnableInterrupt()

	tmr.Arm(time.Millisecond)
	test.ExpectEquality(t, step(&bus, tmr, 2000), 1000)

	// the timer stopped itself
	test.ExpectFailure(t, tmr.Running)
	test.ExpectSuccess(t, tmr.Event)
	test.ExpectEquality(t, step(&bus, tmr, 2000), -1)

	// interrupt line stays raised until event is cleared
	test.ExpectSuccess(t, tmr.Pending())
	tmr.ClearEvent()
	test.ExpectFailure(t, tmr.Pending())
}

func TestRearm(t *testing.T) {
	var bus sync.Mutex
	tmr := timer.NewTimer(&bus)
	tmr.EnableInterrupt()

	tmr.Arm(time.Millisecond)
	test.ExpectEquality(t, step(&bus, tmr, 500), -1)

	// arming again restarts the count
	tmr.Arm(time.Millisecond)
	test.ExpectEquality(t, step(&bus, tmr, 1000), 1000)
}

func TestUnclearedEvent(t *testing.T) {
	var bus sync.Mutex
	tmr := timer.NewTimer(&bus)
	tmr.EnableInterrupt()

	tmr.Arm(time.Millisecond)
	test.ExpectEquality(t, step(&bus, tmr, 1000), 1000)

	// the line is already raised so the second compare is not a new interrupt
	tmr.Arm(time.Millisecond)
	test.ExpectEquality(t, step(&bus, tmr, 1000), -1)

	tmr.ClearEvent()
	tmr.Arm(time.Millisecond)
	test.ExpectEquality(t, step(&bus, tmr, 1000), 1000)
}

func TestDisable(t *testing.T) {
	var bus sync.Mutex
	tmr := timer.NewTimer(&bus)
	tmr.EnableInterrupt()

	tmr.Arm(time.Millisecond)
	tmr.Disable()
	test.ExpectEquality(t, step(&bus, tmr, 2000), -1)
	test.ExpectFailure(t, tmr.Event)
}

func TestInterruptDisabled(t *testing.T) {
	var bus sync.Mutex
	tmr := timer.NewTimer(&bus)

	tmr.Arm(time.Millisecond)
	test.ExpectEquality(t, step(&bus, tmr, 2000), -1)

	// event is generated even though the interrupt is not enabled
	test.ExpectSuccess(t, tmr.Event)
	test.ExpectFailure(t, tmr.Pending())
}
