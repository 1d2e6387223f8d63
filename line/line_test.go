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

package line_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/refresh"
	"github.com/simonvid/simonvid/test"
)

// waitAvailable spins until the pump has delivered n bytes
func waitAvailable(t *testing.T, l *line.Line) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !l.Available() {
		if time.Now().After(deadline) {
			t.Fatalf("input never became available")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestWaitByte(t *testing.T) {
	out := &test.CompareWriter{}
	p := line.NewPipe(out)
	l := line.NewLine(p)

	go p.Send("ab")

	b, refreshed, err := l.Wait(context.Background(), nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, refreshed)
	test.ExpectEquality(t, b, byte('a'))

	b, err = l.ReadByte()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, byte('b'))
}

func TestWaitRefresh(t *testing.T) {
	p := line.NewPipe(&test.CompareWriter{})
	l := line.NewLine(p)
	sig := refresh.NewSignal()

	// a signal raised before the wait is discarded when the wait begins
	sig.Set()

	go func() {
		time.Sleep(10 * time.Millisecond)
		sig.Set()
	}()

	b, refreshed, err := l.Wait(context.Background(), sig)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, refreshed)
	test.ExpectEquality(t, b, byte(0))

	// no byte was consumed by the refresh
	go p.Send("x")
	b, refreshed, err = l.Wait(context.Background(), sig)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, refreshed)
	test.ExpectEquality(t, b, byte('x'))
}

func TestWaitContext(t *testing.T) {
	l := line.NewLine(line.NewPipe(&test.CompareWriter{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := l.Wait(ctx, refresh.NewSignal())
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHangup(t *testing.T) {
	p := line.NewPipe(&test.CompareWriter{})
	l := line.NewLine(p)

	go func() {
		p.Send("z")
		p.Hangup()
	}()

	// bytes sent before the hangup are delivered
	b, _, err := l.Wait(context.Background(), nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, byte('z'))

	_, _, err = l.Wait(context.Background(), nil)
	test.ExpectSuccess(t, curated.Is(err, line.Closed))

	select {
	case <-l.Done():
	default:
		t.Errorf("done channel should be closed")
	}
}

func TestDrain(t *testing.T) {
	p := line.NewPipe(&test.CompareWriter{})
	l := line.NewLine(p)

	test.ExpectFailure(t, l.Available())
	test.ExpectEquality(t, l.Drain(), 0)

	test.DemandSuccess(t, p.Send("abc"))
	waitAvailable(t, l)

	// the pump may still be delivering so drain until all three have gone
	n := 0
	deadline := time.Now().Add(time.Second)
	for n < 3 && time.Now().Before(deadline) {
		n += l.Drain()
	}
	test.ExpectEquality(t, n, 3)
	test.ExpectFailure(t, l.Available())
}

func TestOutput(t *testing.T) {
	out := &test.CompareWriter{}
	l := line.NewLine(line.NewPipe(out))

	test.DemandSuccess(t, l.Redraw())
	test.DemandSuccess(t, l.Print("hello"+line.EOL))
	test.DemandSuccess(t, l.Printf("%d", 42))
	test.DemandSuccess(t, l.Echo('Q'))

	test.ExpectSuccess(t, out.Compare("\033[H\033[2Jhello\n\r42Q"))
	test.ExpectSuccess(t, l.Close())
}
