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
)

// pwm drives a single channel of a PWM peripheral. the channel is connected
// to the pin only while attached.
type pwm struct {
	dev *machine.PWM
	pin machine.Pin
	ch  uint8
}

func newPWM(dev *machine.PWM, pin machine.Pin) (*pwm, error) {
	if err := dev.Configure(machine.PWMConfig{}); err != nil {
		return nil, err
	}
	ch, err := dev.Channel(pin)
	if err != nil {
		return nil, err
	}
	p := &pwm{dev: dev, pin: pin, ch: ch}
	p.Disable()
	p.Detach()
	return p, nil
}

func (p *pwm) Attach() {
	p.dev.PWM.PSEL.OUT[p.ch].Set(uint32(p.pin))
}

func (p *pwm) Detach() {
	p.dev.PWM.PSEL.OUT[p.ch].Set(nrf.PWM_PSEL_OUT_CONNECT_Disconnected << nrf.PWM_PSEL_OUT_CONNECT_Pos)
}

func (p *pwm) SetFrequency(hz uint32) {
	if hz == 0 {
		return
	}
	// an out of range period leaves the previous period in place
	_ = p.dev.SetPeriod(uint64(1e9 / hz))
}

func (p *pwm) SetDuty(high uint32, total uint32) {
	if total == 0 {
		return
	}
	p.dev.Set(p.ch, p.dev.Top()*high/total)
}

// Enable the peripheral and restart the sequence. The SEQSTART task fired by
// Set() is ignored while the peripheral is disabled.
func (p *pwm) Enable() {
	p.dev.PWM.ENABLE.Set(nrf.PWM_ENABLE_ENABLE_Enabled)
	p.dev.PWM.TASKS_SEQSTART[0].Set(1)
}

func (p *pwm) Disable() {
	p.dev.PWM.TASKS_STOP.Set(1)
	p.dev.PWM.ENABLE.Set(nrf.PWM_ENABLE_ENABLE_Disabled)
}
