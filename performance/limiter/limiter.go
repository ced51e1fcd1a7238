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

// Package limiter paces a loop to real time.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(100)
//	defer lim.Stop()
//
// The loop is then paced with the Wait() function. For example, to run an
// emulated board in step with real time:
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		board.RunFor(lim.Period())
//	}
//
// Missed ticks are not queued so a loop that falls behind does not try to
// catch up.
package limiter

import (
	"context"
	"time"
)

// Limiter triggers a fixed number of times per second.
type Limiter struct {
	period time.Duration
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is the number of triggers per second and must be greater than zero.
func NewLimiter(rate int) *Limiter {
	rate = max(rate, 1)
	period := time.Second / time.Duration(rate)
	return &Limiter{
		period: period,
		ticker: time.NewTicker(period),
	}
}

// Period returns the time between triggers.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// Wait blocks until the next trigger or until the context is done.
func (lim *Limiter) Wait(ctx context.Context) error {
	select {
	case <-lim.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasWaited returns true if the trigger has already happened. It does not
// block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. The limiter cannot be used afterwards.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
