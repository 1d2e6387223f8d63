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
	"strings"
	"time"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/hardware"
	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/prefs"
	"github.com/simonvid/simonvid/sequence"
)

// Session plays one game in one mode.
type Session struct {
	Mode mode.Mode

	brd   *hardware.Board
	prefs *Preferences
	src   sequence.Source

	collector *Collector
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(m mode.Mode, brd *hardware.Board, prefs *Preferences, src sequence.Source) *Session {
	return &Session{
		Mode:      m,
		brd:       brd,
		prefs:     prefs,
		src:       src,
		collector: NewCollector(m, brd.Line, brd.Refresh),
	}
}

// Run the session until the game is won or lost. The engine is returned in
// its final state, even if an error occurred.
func (s *Session) Run(ctx context.Context) (*Engine, error) {
	ln := s.brd.Line

	if err := ln.Redraw(); err != nil {
		return nil, err
	}

	capacity := s.prefs.Capacity.Get().(int)
	target, err := sequence.Generate(s.Mode, capacity, s.src)
	if err != nil {
		return nil, curated.Errorf("session: %v", err)
	}
	logger.Logf(logger.Allow, "session", "%s: %s", s.Mode, target)

	e, err := NewEngine(target)
	if err != nil {
		return nil, err
	}

	if err := s.brd.Renderer.Clear(s.Mode); err != nil {
		return e, err
	}

	// input typed before the prompt does not acknowledge it
	ln.Drain()

	if err := ln.Print(rules + pressKey); err != nil {
		return e, err
	}

	// any activity on the line acknowledges the rules, including a refresh
	if _, _, err := ln.Wait(ctx, s.brd.Refresh); err != nil {
		return e, err
	}

	for {
		o, err := s.round(ctx, e)
		if err != nil {
			return e, err
		}

		if err := s.delay(ctx, &s.prefs.Feedback); err != nil {
			return e, err
		}

		if o != Continue {
			logger.Logf(logger.Allow, "session", "%s game %s in round %d", s.Mode, o, e.Round)
			break
		}
	}

	return e, s.delay(ctx, &s.prefs.Closing)
}

// round plays one round of the game.
func (s *Session) round(ctx context.Context, e *Engine) (Outcome, error) {
	ln := s.brd.Line
	r := s.brd.Renderer

	if err := ln.Redraw(); err != nil {
		return Lost, err
	}
	if err := r.Clear(s.Mode); err != nil {
		return Lost, err
	}

	if err := ln.Print(playing); err != nil {
		return Lost, err
	}
	for _, v := range e.Playback() {
		if err := r.Render(s.Mode, v); err != nil {
			return Lost, err
		}
		if err := s.delay(ctx, &s.prefs.Playback); err != nil {
			return Lost, err
		}
	}

	if err := ln.Print(played + legend(s.Mode)); err != nil {
		return Lost, err
	}

	for _, a := range e.Slots() {
		_, v, err := s.collector.Next(ctx)
		if err != nil {
			return Lost, err
		}

		// the guess is shown on the board as soon as it is made
		if err := r.Render(s.Mode, v); err != nil {
			return Lost, err
		}

		if err := e.Record(a, v); err != nil {
			return Lost, err
		}
	}

	if err := ln.Print(checking); err != nil {
		return Lost, err
	}

	o := e.Verify()

	var msg string
	switch o {
	case Lost:
		msg = lose
	case Won:
		msg = correct + win
	default:
		msg = correct
	}

	return o, ln.Print(msg)
}

func (s *Session) delay(ctx context.Context, d *prefs.Duration) error {
	return s.brd.Timer.Delay(ctx, d.Get().(time.Duration))
}

// legend returns the description of the symbols for the mode.
func legend(m mode.Mode) string {
	return line.EOL + strings.Join(m.Layout().Legend, line.EOL) + line.EOL
}
