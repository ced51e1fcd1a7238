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

import "runtime/interrupt"

// critical is a sync.Locker that masks interrupts while locked. Lock() and
// Unlock() calls must not be nested.
type critical struct {
	state interrupt.State
}

func (c *critical) Lock() {
	c.state = interrupt.Disable()
}

func (c *critical) Unlock() {
	interrupt.Restore(c.state)
}
