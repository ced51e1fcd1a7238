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

import "sync"

// LockMut shares an Engine between the foreground program and the timer
// interrupt. All access to the engine goes through WithLock() so that the
// advance step never interleaves with a Play() or Stop().
//
// The locker is chosen by the platform. On the host it is a sync.Mutex. On a
// microcontroller it masks interrupts for the duration of the critical
// section.
type LockMut struct {
	crit   sync.Locker
	engine *Engine
}

// NewLockMut is the preferred method of initialisation for the LockMut type.
// The LockMut is empty until Init() is called.
func NewLockMut(crit sync.Locker) *LockMut {
	return &LockMut{crit: crit}
}

// Init places the engine in the LockMut. Calling Init() more than once
// replaces the engine.
func (l *LockMut) Init(e *Engine) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.engine = e
}

// WithLock calls the function with exclusive access to the engine. Returns
// false without calling the function if the LockMut has not been
// initialised.
func (l *LockMut) WithLock(f func(*Engine)) bool {
	l.crit.Lock()
	defer l.crit.Unlock()
	if l.engine == nil {
		return false
	}
	f(l.engine)
	return true
}

// Interrupt is the timer interrupt service routine. It should be attached to
// the timer's interrupt vector. An interrupt arriving before Init() is
// ignored.
func (l *LockMut) Interrupt() {
	l.crit.Lock()
	defer l.crit.Unlock()
	if l.engine != nil {
		l.engine.HandleInterrupt()
	}
}
