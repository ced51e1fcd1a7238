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

// Package clocks defines the constant values that define the speed of the
// clocks in the nRF52833 microcontroller of the micro:bit v2.
//
// The emulated board advances one tick for every cycle of TimerClock. The PWM
// peripheral counts in units of HFCLK so a tick advances it by HFCLKPerTick
// cycles of the undivided clock.
//
// Values taken from the nRF52833 Product Specification, sections TIMER and
// PWM.
package clocks

// HFCLK is the frequency in Hz of the high frequency clock.
const HFCLK = 16000000

// TimerPrescaler is the value written to the PRESCALER register of the timer.
// the timer runs at HFCLK / 2^TimerPrescaler.
const TimerPrescaler = 4

// TimerClock is the frequency in Hz of the timer.
const TimerClock = HFCLK >> TimerPrescaler

// MaxPWMPrescaler is the largest value of the PWM PRESCALER register
// (DIV_128). The PWM counter runs at HFCLK / 2^PRESCALER.
const MaxPWMPrescaler = 7

// TickRate is the number of emulated ticks per second.
const TickRate = TimerClock

// HFCLKPerTick is the number of HFCLK cycles in one emulated tick.
const HFCLKPerTick = HFCLK / TickRate
