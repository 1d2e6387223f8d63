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

package random

import (
	"math/rand"
	"sync"
	"time"
)

// the base seed for the process-wide source
var baseSeed int64

// Default is the process-wide random source.
var Default *Random

func init() {
	baseSeed = time.Now().UnixNano()
	Default = NewSeeded(baseSeed)
}

// Random is a pseudo-random number generator safe for use from more than one
// goroutine.
type Random struct {
	crit sync.Mutex
	rnd  *rand.Rand
	seed int64
}

// NewSeeded returns a Random instance with a specific seed.
func NewSeeded(seed int64) *Random {
	return &Random{
		rnd:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used to create the instance.
func (r *Random) Seed() int64 {
	return r.seed
}

// Intn returns a uniformly distributed number in the range [0, n). The
// function panics if n <= 0.
func (r *Random) Intn(n int) int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.rnd.Intn(n)
}
