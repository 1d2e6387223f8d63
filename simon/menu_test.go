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
	"testing"
	"time"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/test"
)

const expectedMenu = "**************************************************\n\r" +
	"*                SIMON SAYS GAME                 *\n\r" +
	"**************************************************\n\r" +
	"\n\r" +
	"1 - Play Simon Says 2X2\n\r" +
	"2 - Play Simon Says 3X3\n\r" +
	"q - Quit\n\r" +
	"\n\r" +
	"\n\r" +
	"Enter a selection:"

// session results collected by the OnSession hook
type sessions struct {
	modes   []mode.Mode
	engines []*Engine
}

func (s *sessions) hook(m mode.Mode, e *Engine) {
	s.modes = append(s.modes, m)
	s.engines = append(s.engines, e)
}

func TestMenuText(t *testing.T) {
	r := newRig(t, 2)
	mn := NewMenu(r.brd, r.prefs, &fixed{values: []int{0}})
	test.ExpectEquality(t, mn.String(), expectedMenu)
}

func TestMenuQuit(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := r.context()
	defer cancel()

	done := r.script(step{wait: 1, input: "q"})

	mn := NewMenu(r.brd, r.prefs, &fixed{values: []int{0}})
	test.DemandSuccess(t, mn.Run(ctx))
	r.finish(done)

	test.ExpectEquality(t, r.out.String(), line.CursorHome+line.ClearScreen+expectedMenu+"q")
	test.ExpectEquality(t, r.disp.Flushes(), 0)
}

func TestMenuInvalidSelection(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := r.context()
	defer cancel()

	done := r.script(
		step{wait: 1, input: "x"},
		step{wait: 2, input: "q"},
	)

	var s sessions
	mn := NewMenu(r.brd, r.prefs, &fixed{values: []int{0}})
	mn.OnSession = s.hook
	test.DemandSuccess(t, mn.Run(ctx))
	r.finish(done)

	test.ExpectSuccess(t, r.out.Contains("x\n\rInvalid Selection"))
	test.ExpectEquality(t, r.out.Count("Enter a selection:"), 2)

	// no session was started
	test.ExpectEquality(t, len(s.engines), 0)
	test.ExpectEquality(t, r.disp.Flushes(), 0)

	d := r.tmr.Delays()
	test.DemandEquality(t, len(d), 1)
	test.ExpectEquality(t, d[0], 500*time.Millisecond)
}

func TestMenuRefresh(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := r.context()
	defer cancel()

	done := r.script(
		step{wait: 1, refresh: true},
		step{wait: 2, input: "q"},
	)

	mn := NewMenu(r.brd, r.prefs, &fixed{values: []int{0}})
	test.DemandSuccess(t, mn.Run(ctx))
	r.finish(done)

	// menu was drawn again and nothing else happened
	test.ExpectEquality(t, r.out.Count("Enter a selection:"), 2)
	test.ExpectEquality(t, r.out.Count("Invalid Selection"), 0)
	test.ExpectEquality(t, len(r.tmr.Delays()), 0)
}

func TestMenuThreeByThreeWon(t *testing.T) {
	r := newRig(t, 4)
	ctx, cancel := r.context()
	defer cancel()

	done := r.script(
		step{wait: 1, input: "2"},
		step{wait: 2, input: "\r"},
		step{wait: 3, input: "5"},
		step{wait: 4, input: "5"},
		step{wait: 5, input: "7"},
		step{wait: 6, input: "q"},
	)

	var s sessions
	mn := NewMenu(r.brd, r.prefs, &fixed{values: []int{4, 6}})
	mn.OnSession = s.hook
	test.DemandSuccess(t, mn.Run(ctx))
	r.finish(done)

	test.DemandEquality(t, len(s.engines), 1)
	test.ExpectEquality(t, s.modes[0], mode.ThreeByThree)
	test.ExpectEquality(t, s.engines[0].Outcome, Won)
	test.ExpectEquality(t, s.engines[0].Target.String(), "5 rest 7 rest")
	test.ExpectEquality(t, r.out.Count("Enter a selection:"), 2)
}

func TestMenuTwoByTwoLost(t *testing.T) {
	r := newRig(t, 6)
	ctx, cancel := r.context()
	defer cancel()

	done := r.script(
		step{wait: 1, input: "1"},
		step{wait: 2, input: "\r"},
		step{wait: 3, input: "G"},
		step{wait: 4, input: "q"},
	)

	var s sessions
	mn := NewMenu(r.brd, r.prefs, &fixed{values: []int{1, 0, 3}})
	mn.OnSession = s.hook
	test.DemandSuccess(t, mn.Run(ctx))
	r.finish(done)

	test.DemandEquality(t, len(s.engines), 1)
	test.ExpectEquality(t, s.modes[0], mode.TwoByTwo)
	test.ExpectEquality(t, s.engines[0].Outcome, Lost)
	test.ExpectSuccess(t, r.out.Contains("\n\rYou Lose!!"))
}

func TestMenuLineClosed(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := r.context()
	defer cancel()

	done := r.script(step{wait: 1, hangup: true})

	mn := NewMenu(r.brd, r.prefs, &fixed{values: []int{0}})
	err := mn.Run(ctx)
	test.ExpectSuccess(t, curated.Is(err, line.Closed))
	r.finish(done)
}

func TestMenuCancel(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() {
		done <- NewMenu(r.brd, r.prefs, &fixed{values: []int{0}}).Run(ctx)
	}()

	for r.line.Waits() < 1 {
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("menu did not stop")
	}
}

func TestMenuSelectionLineEnding(t *testing.T) {
	r := newRig(t, 2)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() {
		done <- NewMenu(r.brd, r.prefs, &fixed{values: []int{0}}).Run(ctx)
	}()

	for r.line.Waits() < 1 {
		time.Sleep(time.Millisecond)
	}

	// the line ending after the selection must not acknowledge the rules
	test.DemandSuccess(t, r.pipe.Send("1\n"))

	for r.line.Waits() < 2 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	test.ExpectEquality(t, r.line.Waits(), int64(2))
	test.ExpectSuccess(t, r.out.Contains(pressKey))
	test.ExpectSuccess(t, !r.out.Contains(playing))

	cancel()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("menu did not stop")
	}
}
