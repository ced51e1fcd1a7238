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

// Package gpio implements a single general purpose output pin.
package gpio

import (
	"fmt"
	"sync"
)

// Pin is an output pin. The level of the pin can be driven by the program
// with the High() and Low() functions, or by a peripheral that has been
// attached to it.
type Pin struct {
	bus   sync.Locker
	name  string
	level bool
}

// NewPin is the preferred method of initialisation for the Pin type. Access
// to the pin is serialised by the bus argument.
func NewPin(bus sync.Locker, name string) *Pin {
	return &Pin{
		bus:  bus,
		name: name,
	}
}

func (pin *Pin) String() string {
	if pin.Level() {
		return fmt.Sprintf("%s=high", pin.name)
	}
	return fmt.Sprintf("%s=low", pin.name)
}

// High drives the pin high.
func (pin *Pin) High() {
	pin.bus.Lock()
	defer pin.bus.Unlock()
	pin.level = true
}

// Low drives the pin low.
func (pin *Pin) Low() {
	pin.bus.Lock()
	defer pin.bus.Unlock()
	pin.level = false
}

// Level returns the current level of the pin. True for high.
func (pin *Pin) Level() bool {
	pin.bus.Lock()
	defer pin.bus.Unlock()
	return pin.level
}

// Peek returns the level of the pin without locking the bus. Only to be used
// by peripherals that already hold the bus.
func (pin *Pin) Peek() bool {
	return pin.level
}
