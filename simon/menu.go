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
	"fmt"
	"strings"
	"time"

	"github.com/simonvid/simonvid/hardware"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/sequence"
)

// Menu is the top level driver of the game.
type Menu struct {
	brd   *hardware.Board
	prefs *Preferences
	src   sequence.Source

	// modes in menu order. the first mode is selected with '1'
	modes []mode.Mode

	// called at the end of every session with the engine in its final state
	OnSession func(m mode.Mode, e *Engine)
}

// NewMenu is the preferred method of initialisation for the Menu type.
func NewMenu(brd *hardware.Board, prefs *Preferences, src sequence.Source) *Menu {
	return &Menu{
		brd:   brd,
		prefs: prefs,
		src:   src,
		modes: mode.Modes,
	}
}

func (mn *Menu) String() string {
	s := strings.Builder{}
	s.WriteString(menuBanner)
	for i, m := range mn.modes {
		s.WriteString(fmt.Sprintf(menuEntry, '1'+i, strings.ToUpper(m.String())))
	}
	s.WriteString(menuQuit)
	s.WriteString(menuPrompt)
	return s.String()
}

// selection returns the mode for the menu key. Returns false if the key does
// not select a mode.
func (mn *Menu) selection(key byte) (mode.Mode, bool) {
	i := int(key) - '1'
	if i < 0 || i >= len(mn.modes) {
		return mode.TwoByTwo, false
	}
	return mn.modes[i], true
}

// Run the menu until the quit key is pressed or the context is cancelled, in
// which case the error is nil. Any other error ends the menu and is
// returned.
func (mn *Menu) Run(ctx context.Context) error {
	ln := mn.brd.Line

	for {
		ln.Drain()

		if err := ln.Redraw(); err != nil {
			return err
		}
		if err := ln.Print(mn.String()); err != nil {
			return err
		}

		key, refreshed, err := ln.Wait(ctx, mn.brd.Refresh)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if refreshed {
			logger.Log(logger.Allow, "menu", "refresh")
			continue
		}

		if err := ln.Echo(key); err != nil {
			return err
		}

		if key == quitKey {
			logger.Log(logger.Allow, "menu", "quit")
			return nil
		}

		m, ok := mn.selection(key)
		if !ok {
			logger.Logf(logger.Allow, "menu", "invalid selection (%q)", key)
			if err := ln.Print(menuBad); err != nil {
				return err
			}
			if err := mn.brd.Timer.Delay(ctx, mn.prefs.Invalid.Get().(time.Duration)); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			continue
		}

		logger.Logf(logger.Allow, "menu", "starting %s session", m)

		e, err := NewSession(m, mn.brd, mn.prefs, mn.src).Run(ctx)
		if mn.OnSession != nil && e != nil {
			mn.OnSession(m, e)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}
