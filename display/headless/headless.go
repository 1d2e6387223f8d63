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

package headless

import (
	"sync"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/display"
)

// NumFrames is the number of frame buffers held by the display.
const NumFrames = 3

// Sentinal errors.
const (
	NoFrame      = "headless: no frame %d"
	ForeignFrame = "headless: flushed frame is not the current frame"
)

// Headless is an implementation of display.Display with no output device.
type Headless struct {
	crit sync.Mutex

	frames  [NumFrames]display.Frame
	current int

	visible []byte
	flushes int

	// called after every flush with a copy of the visible image. used by
	// decorating packages that need to see every frame
	onFlush func(display.Frame)
}

// NewHeadless is the preferred method of initialisation for the Headless type.
func NewHeadless(width, height int) (*Headless, error) {
	hd := &Headless{}
	for i := range hd.frames {
		f, err := display.NewFrame(width, height)
		if err != nil {
			return nil, curated.Errorf("headless: %v", err)
		}
		hd.frames[i] = f
	}
	hd.visible = make([]byte, len(hd.frames[0].Pixels))
	return hd, nil
}

// Frame implements the display.Display interface.
func (hd *Headless) Frame() display.Frame {
	hd.crit.Lock()
	defer hd.crit.Unlock()
	return hd.frames[hd.current]
}

// Flush implements the display.Display interface.
func (hd *Headless) Flush(f display.Frame) error {
	hd.crit.Lock()
	defer hd.crit.Unlock()

	cur := hd.frames[hd.current]
	if !sameBuffer(f, cur) {
		return curated.Errorf(ForeignFrame)
	}

	copy(hd.visible, cur.Pixels)
	hd.flushes++

	if hd.onFlush != nil {
		v := cur
		v.Pixels = make([]byte, len(hd.visible))
		copy(v.Pixels, hd.visible)
		hd.onFlush(v)
	}

	return nil
}

// SetFrame changes the current writable frame.
func (hd *Headless) SetFrame(n int) error {
	hd.crit.Lock()
	defer hd.crit.Unlock()
	if n < 0 || n >= NumFrames {
		return curated.Errorf(NoFrame, n)
	}
	hd.current = n
	return nil
}

// SetFlushHook sets the function to be called after every Flush(). The
// function receives a copy of the visible image.
func (hd *Headless) SetFlushHook(f func(display.Frame)) {
	hd.crit.Lock()
	defer hd.crit.Unlock()
	hd.onFlush = f
}

// Visible returns a copy of the image as it was at the most recent Flush().
func (hd *Headless) Visible() []byte {
	hd.crit.Lock()
	defer hd.crit.Unlock()
	v := make([]byte, len(hd.visible))
	copy(v, hd.visible)
	return v
}

// Flushes returns the number of calls to Flush().
func (hd *Headless) Flushes() int {
	hd.crit.Lock()
	defer hd.crit.Unlock()
	return hd.flushes
}

func sameBuffer(a, b display.Frame) bool {
	if len(a.Pixels) == 0 || len(b.Pixels) == 0 {
		return len(a.Pixels) == len(b.Pixels)
	}
	return &a.Pixels[0] == &b.Pixels[0]
}
