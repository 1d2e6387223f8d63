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

package refresh

import (
	"sync/atomic"
)

// Signal is a single flag with a notification channel.
type Signal struct {
	flag atomic.Bool

	// buffered with a capacity of one. a pending notification is never
	// duplicated
	wake chan struct{}

	// number of times the signal has been raised
	count atomic.Int64
}

// NewSignal is the preferred method of initialisation for the Signal type.
func NewSignal() *Signal {
	return &Signal{
		wake: make(chan struct{}, 1),
	}
}

// Set raises the signal.
func (sig *Signal) Set() {
	sig.flag.Store(true)
	sig.count.Add(1)
	select {
	case sig.wake <- struct{}{}:
	default:
	}
}

// Clear lowers the signal and discards any pending notification.
func (sig *Signal) Clear() {
	sig.flag.Store(false)
	select {
	case <-sig.wake:
	default:
	}
}

// IsSet returns true if the signal has been raised since the last call to
// Clear().
func (sig *Signal) IsSet() bool {
	return sig.flag.Load()
}

// Wake returns the notification channel. The channel is never closed.
func (sig *Signal) Wake() <-chan struct{} {
	return sig.wake
}

// Count returns the number of times Set() has been called.
func (sig *Signal) Count() int64 {
	return sig.count.Load()
}
