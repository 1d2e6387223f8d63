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
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/simonvid/simonvid/display/headless"
	"github.com/simonvid/simonvid/hardware"
	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/prefs"
	"github.com/simonvid/simonvid/refresh"
	"github.com/simonvid/simonvid/test"
	"github.com/simonvid/simonvid/timer"
)

// step in a script. the step is performed once the line has begun the
// numbered wait
type step struct {
	wait    int64
	input   string
	refresh bool
	hangup  bool
}

// highlights records every board render
type highlights struct {
	active []int
}

func (h *highlights) Highlight(_ mode.Mode, active int) {
	h.active = append(h.active, active)
}

// rig is a board with in-memory devices
type rig struct {
	t     *testing.T
	out   *test.CompareWriter
	pipe  *line.Pipe
	line  *line.Line
	disp  *headless.Headless
	sig   *refresh.Signal
	tmr   *timer.Instant
	brd   *hardware.Board
	prefs *Preferences
	lit   *highlights
}

func newRig(t *testing.T, capacity int) *rig {
	t.Helper()

	r := &rig{
		t:   t,
		out: &test.CompareWriter{},
		sig: refresh.NewSignal(),
		tmr: &timer.Instant{},
		lit: &highlights{},
	}

	var err error

	r.prefs, err = newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.prefs.Capacity.Set(capacity))
	test.DemandSuccess(t, r.prefs.Playback.Set(100*time.Millisecond))
	test.DemandSuccess(t, r.prefs.Feedback.Set(200*time.Millisecond))
	test.DemandSuccess(t, r.prefs.Closing.Set(300*time.Millisecond))

	r.disp, err = headless.NewHeadless(30, 30)
	test.DemandSuccess(t, err)

	r.pipe = line.NewPipe(r.out)
	r.line = line.NewLine(r.pipe)

	r.brd, err = hardware.NewBoard(nil, r.disp, r.line, r.sig, r.tmr)
	test.DemandSuccess(t, err)
	r.brd.Renderer.AddListener(r.lit)

	return r
}

// script performs the steps in order in a new goroutine. the returned
// channel receives the first error or is closed when the script completes.
func (r *rig) script(steps ...step) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)
		for _, s := range steps {
			deadline := time.Now().Add(5 * time.Second)
			for r.line.Waits() < s.wait {
				if time.Now().After(deadline) {
					done <- context.DeadlineExceeded
					return
				}
				time.Sleep(time.Millisecond)
			}

			var err error
			switch {
			case s.refresh:
				r.sig.Set()
			case s.hangup:
				err = r.pipe.Hangup()
			default:
				err = r.pipe.Send(s.input)
			}
			if err != nil {
				done <- err
				return
			}
		}
	}()

	return done
}

// finish checks that the script ran to completion
func (r *rig) finish(done <-chan error) {
	r.t.Helper()
	select {
	case err := <-done:
		test.ExpectSuccess(r.t, err)
	case <-time.After(5 * time.Second):
		r.t.Fatalf("script did not finish")
	}
}

func (r *rig) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
