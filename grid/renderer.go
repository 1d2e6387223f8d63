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

package grid

import (
	"sync"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/display"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/mode"
)

// Listener is notified every time the board is rendered.
type Listener interface {
	Highlight(m mode.Mode, active int)
}

// Renderer paints the board into the current frame of a display and flushes
// the frame.
type Renderer struct {
	disp display.Display

	crit      sync.Mutex
	listeners []Listener
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(disp display.Display) *Renderer {
	return &Renderer{
		disp: disp,
	}
}

// AddListener adds a Listener to the renderer. Listeners are notified in the
// order they were added.
func (r *Renderer) AddListener(l Listener) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.listeners = append(r.listeners, l)
}

// Render the board for the mode with the active cell highlighted. The frame
// is flushed before the function returns.
func (r *Renderer) Render(m mode.Mode, active int) error {
	f := r.disp.Frame()

	if err := Paint(f, m, active); err != nil {
		return err
	}

	if err := r.disp.Flush(f); err != nil {
		return curated.Errorf("grid: flush: %v", err)
	}

	logger.Logf(logger.Allow, "grid", "%s board: %s", m, m.Describe(active))

	r.crit.Lock()
	defer r.crit.Unlock()
	for _, l := range r.listeners {
		l.Highlight(m, active)
	}

	return nil
}

// Clear renders the board for the mode with no cell highlighted.
func (r *Renderer) Clear(m mode.Mode) error {
	return r.Render(m, m.Rest())
}
