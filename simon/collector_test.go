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

package simon

import (
	"testing"
	"time"

	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/test"
)

func TestCollectorDrainsStaleInput(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := r.context()
	defer cancel()

	// input that arrives before the collector waits is stale
	test.DemandSuccess(t, r.pipe.Send("YYYY"))
	deadline := time.Now().Add(time.Second)
	for r.line.Buffered() < 4 {
		if time.Now().After(deadline) {
			t.Fatalf("stale input never arrived")
		}
		time.Sleep(time.Millisecond)
	}

	done := r.script(step{wait: 1, input: "B"})

	c := NewCollector(mode.TwoByTwo, r.line, r.sig)
	sym, v, err := c.Next(ctx)
	test.DemandSuccess(t, err)
	r.finish(done)

	test.ExpectEquality(t, sym, byte('B'))
	test.ExpectEquality(t, v, 1)
	test.ExpectEquality(t, r.out.String(), "B")
	test.ExpectEquality(t, r.line.Buffered(), 0)
}

func TestCollectorMap(t *testing.T) {
	r := newRig(t, 2)

	c := NewCollector(mode.ThreeByThree, r.line, r.sig)
	test.ExpectEquality(t, c.Map('5'), 5)
	test.ExpectEquality(t, c.Map('0'), 0)
	test.ExpectEquality(t, c.Map('R'), 0)

	c = NewCollector(mode.TwoByTwo, r.line, r.sig)
	test.ExpectEquality(t, c.Map('Y'), 3)
	test.ExpectEquality(t, c.Map('5'), 4)
}

func TestCollectorRefreshIgnored(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := r.context()
	defer cancel()

	done := r.script(
		step{wait: 1, refresh: true},
		step{wait: 2, refresh: true},
		step{wait: 3, input: "7"},
	)

	c := NewCollector(mode.ThreeByThree, r.line, r.sig)
	sym, v, err := c.Next(ctx)
	test.DemandSuccess(t, err)
	r.finish(done)

	test.ExpectEquality(t, sym, byte('7'))
	test.ExpectEquality(t, v, 7)
	test.ExpectEquality(t, r.line.Waits(), int64(3))
}
