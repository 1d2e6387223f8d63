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

package hardware

import (
	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/display"
	"github.com/simonvid/simonvid/grid"
	"github.com/simonvid/simonvid/hardware/preferences"
	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/refresh"
	"github.com/simonvid/simonvid/timer"
)

// InitError is returned when a device cannot be initialised. Initialisation
// errors are fatal.
const InitError = "hardware: %s: %v"

// Board is the main container for the devices used by the game.
type Board struct {
	Prefs *preferences.Preferences

	Display  display.Display
	Renderer *grid.Renderer
	Line     *line.Line
	Refresh  *refresh.Signal
	Timer    timer.Delayer
}

// NewBoard creates a new Board from its devices. The preferences argument can
// be nil, in which case the default values are used.
func NewBoard(prefs *preferences.Preferences, disp display.Display, ln *line.Line, sig *refresh.Signal, tmr timer.Delayer) (*Board, error) {
	if disp == nil {
		return nil, curated.Errorf(InitError, "display", "no display device")
	}
	if err := disp.Frame().Check(); err != nil {
		return nil, curated.Errorf(InitError, "display", err)
	}
	if ln == nil {
		return nil, curated.Errorf(InitError, "line", "no line device")
	}
	if sig == nil {
		return nil, curated.Errorf(InitError, "refresh", "no refresh signal")
	}
	if tmr == nil {
		tmr = timer.Sleeper{}
	}
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}

	brd := &Board{
		Prefs:    prefs,
		Display:  disp,
		Renderer: grid.NewRenderer(disp),
		Line:     ln,
		Refresh:  sig,
		Timer:    tmr,
	}

	return brd, nil
}

// Initialise the board. The test pattern is drawn and stale input on the line
// is discarded.
func (brd *Board) Initialise() error {
	if err := brd.Renderer.Render(mode.ThreeByThree, preferences.TestPatternCell); err != nil {
		return curated.Errorf(InitError, "display", err)
	}

	if n := brd.Line.Drain(); n > 0 {
		logger.Logf(logger.Allow, "board", "discarded %d stale bytes", n)
	}

	f := brd.Display.Frame()
	logger.Logf(logger.Allow, "board", "display %dx%d (stride %d)", f.Width, f.Height, f.Stride)

	return nil
}
