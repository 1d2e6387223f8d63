// This file is part of Simonvid.
//
// Simonvid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Simonvid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Simonvid.  If not, see <https://www.gnu.org/licenses/>.

package timer

import (
	"context"
	"sync"
	"time"
)

// Delayer pauses the calling goroutine. Delay() returns early with the
// context's error if the context is cancelled.
type Delayer interface {
	Delay(ctx context.Context, d time.Duration) error
}

// Sleeper is a Delayer that uses wall clock time.
type Sleeper struct{}

// Delay implements the Delayer interface.
func (Sleeper) Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	tmr := time.NewTimer(d)
	defer tmr.Stop()

	select {
	case <-tmr.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Instant is a Delayer that returns immediately. It keeps a record of every
// requested delay.
type Instant struct {
	crit   sync.Mutex
	delays []time.Duration
}

// Delay implements the Delayer interface.
func (ins *Instant) Delay(ctx context.Context, d time.Duration) error {
	ins.crit.Lock()
	defer ins.crit.Unlock()
	ins.delays = append(ins.delays, d)
	return ctx.Err()
}

// Delays returns a copy of all requested delays in order.
func (ins *Instant) Delays() []time.Duration {
	ins.crit.Lock()
	defer ins.crit.Unlock()
	d := make([]time.Duration, len(ins.delays))
	copy(d, ins.delays)
	return d
}

// Total returns the sum of all requested delays.
func (ins *Instant) Total() time.Duration {
	ins.crit.Lock()
	defer ins.crit.Unlock()
	var t time.Duration
	for _, d := range ins.delays {
		t += d
	}
	return t
}
