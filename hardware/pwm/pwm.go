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

// Package pwm implements a single channel of the nRF52833 PWM peripheral, in
// up-counting mode with one compare value.
//
// The counter runs from zero to COUNTERTOP-1 at HFCLK / 2^PRESCALER. The
// prescaler is the smallest that lets the requested frequency fit in the 15
// bit COUNTERTOP register. The output is high while the counter is less than
// the compare value. When the peripheral is disabled the
// output idles low. When the channel is detached from its pin the pin is
// driven by the GPIO output register.
package pwm

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gameaudio/hardware/clocks"
	"github.com/jetsetilly/gameaudio/hardware/gpio"
)

// the COUNTERTOP register is 15 bits wide.
const (
	minCounterTop = 3
	maxCounterTop = 0x7fff
)

// Registers is a snapshot of the PWM state that is of interest to the
// listener. It is comparable so that changes can be detected easily.
type Registers struct {
	Frequency uint32
	High      uint32
	Total     uint32
	Enabled   bool
	Attached  bool
}

func (r Registers) String() string {
	if !r.Attached {
		return "detached"
	}
	if !r.Enabled {
		return "disabled"
	}
	return fmt.Sprintf("%dHz %d/%d", r.Frequency, r.High, r.Total)
}

// PWM implements one channel of the PWM peripheral.
type PWM struct {
	bus sync.Locker
	pin *gpio.Pin

	// the values as requested by the program
	frequency uint32
	high      uint32
	total     uint32

	// the PSEL register connects the channel to pin
	attached bool

	// the ENABLE register
	enabled bool

	// PRESCALER, COUNTERTOP and the compare value derived from the requested
	// values
	Prescaler  uint32
	CounterTop uint32
	Compare    uint32

	// position in the period measured in HFCLK cycles
	phase uint32
}

// NewPWM is the preferred method of initialisation for the PWM type. The
// channel is created detached from the pin.
func NewPWM(bus sync.Locker, pin *gpio.Pin) *PWM {
	pwm := &PWM{
		bus:        bus,
		pin:        pin,
		total:      1,
		Prescaler:  clocks.MaxPWMPrescaler,
		CounterTop: maxCounterTop,
	}
	return pwm
}

func (pwm *PWM) String() string {
	return pwm.Registers().String()
}

// Registers returns a snapshot of the PWM state.
func (pwm *PWM) Registers() Registers {
	pwm.bus.Lock()
	defer pwm.bus.Unlock()
	return pwm.PeekRegisters()
}

// PeekRegisters is the same as Registers() but without locking the bus. Only
// to be used by the owner of the bus while the bus is locked.
func (pwm *PWM) PeekRegisters() Registers {
	return Registers{
		Frequency: pwm.frequency,
		High:      pwm.high,
		Total:     pwm.total,
		Enabled:   pwm.enabled,
		Attached:  pwm.attached,
	}
}

// Attach connects the channel to the pin.
func (pwm *PWM) Attach() {
	pwm.bus.Lock()
	defer pwm.bus.Unlock()
	pwm.attached = true
}

// Detach disconnects the channel from the pin. The pin returns to the level
// of the GPIO output register.
func (pwm *PWM) Detach() {
	pwm.bus.Lock()
	defer pwm.bus.Unlock()
	pwm.attached = false
}

// SetFrequency sets the frequency of the output in Hz.
func (pwm *PWM) SetFrequency(hz uint32) {
	pwm.bus.Lock()
	defer pwm.bus.Unlock()
	pwm.frequency = hz
	pwm.update()
}

// SetDuty sets the fraction of the period that the output is high.
func (pwm *PWM) SetDuty(high uint32, total uint32) {
	pwm.bus.Lock()
	defer pwm.bus.Unlock()
	if total == 0 {
		total = 1
	}
	pwm.high = min(high, total)
	pwm.total = total
	pwm.update()
}

// update PRESCALER, COUNTERTOP and the compare value from the requested
// values.
func (pwm *PWM) update() {
	pwm.Prescaler = clocks.MaxPWMPrescaler
	top := uint32(maxCounterTop)
	if pwm.frequency > 0 {
		for p := uint32(0); p <= clocks.MaxPWMPrescaler; p++ {
			pwm.Prescaler = p
			top = (clocks.HFCLK >> p) / pwm.frequency
			if top <= maxCounterTop {
				break
			}
		}
	}
	pwm.CounterTop = min(max(top, minCounterTop), maxCounterTop)
	pwm.Compare = uint32(uint64(pwm.CounterTop) * uint64(pwm.high) / uint64(pwm.total))
	pwm.phase %= pwm.period()
}

// the length of one period in HFCLK cycles.
func (pwm *PWM) period() uint32 {
	return pwm.CounterTop << pwm.Prescaler
}

// Enable starts the counter from zero.
func (pwm *PWM) Enable() {
	pwm.bus.Lock()
	defer pwm.bus.Unlock()
	pwm.enabled = true
	pwm.phase = 0
}

// Disable stops the counter. The output idles low.
func (pwm *PWM) Disable() {
	pwm.bus.Lock()
	defer pwm.bus.Unlock()
	pwm.enabled = false
}

// Step advances the counter by one tick. The remainder of a period that does
// not divide evenly into ticks is carried into the next period.
//
// Must only be called by the owner of the bus while the bus is locked.
func (pwm *PWM) Step() {
	if !pwm.enabled {
		return
	}
	pwm.phase = (pwm.phase + clocks.HFCLKPerTick) % pwm.period()
}

// Output returns the level seen on the pin.
//
// Must only be called by the owner of the bus while the bus is locked.
func (pwm *PWM) Output() bool {
	if !pwm.attached {
		return pwm.pin.Peek()
	}
	if !pwm.enabled {
		return false
	}
	return pwm.phase < pwm.Compare<<pwm.Prescaler
}
