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

	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/refresh"
)

// Collector reads guesses from the line.
type Collector struct {
	mode mode.Mode
	line *line.Line
	sig  *refresh.Signal
}

// NewCollector is the preferred method of initialisation for the Collector
// type.
func NewCollector(m mode.Mode, ln *line.Line, sig *refresh.Signal) *Collector {
	return &Collector{
		mode: m,
		line: ln,
		sig:  sig,
	}
}

// Next discards stale input, waits for one symbol and echoes it to the line.
// Returns the symbol and the colour index it maps to. A symbol that does not
// map to a colour returns the rest marker, which is not an error.
//
// A refresh during the wait is ignored and the wait starts again.
func (c *Collector) Next(ctx context.Context) (byte, int, error) {
	c.line.Drain()

	for {
		b, refreshed, err := c.line.Wait(ctx, c.sig)
		if err != nil {
			return 0, c.mode.Rest(), err
		}
		if refreshed {
			logger.Log(logger.Allow, "session", "refresh ignored during game")
			continue
		}

		if err := c.line.Echo(b); err != nil {
			return 0, c.mode.Rest(), err
		}

		return b, c.Map(b), nil
	}
}

// Map a symbol to a colour index.
func (c *Collector) Map(symbol byte) int {
	return c.mode.Lookup(symbol)
}
