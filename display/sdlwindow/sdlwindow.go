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

package sdlwindow

import (
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/simonvid/simonvid/assert"
	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/display"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/refresh"
)

// Sentinal errors.
const (
	SDLError = "sdl: %v"
)

// the amount of time to wait in Service() between presentations
const servicePeriod = 16 * time.Millisecond

// Window is an SDL implementation of the display.Display interface.
//
// MUST ONLY be created, serviced and destroyed from the #mainthread
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	sig  *refresh.Signal
	quit func()

	// the goroutine the window was created on
	main assert.Thread

	// the frame written to by the game
	frame display.Frame

	// copy of the frame taken at the most recent Flush(). dirty is true if
	// the copy has not yet been presented
	crit    sync.Mutex
	pending []byte
	dirty   bool

	lastPresent time.Time
}

// NewWindow is the preferred method of initialisation for the Window type.
//
// MUST ONLY be called from the #mainthread
func NewWindow(title string, width int, height int, sig *refresh.Signal, quit func()) (*Window, error) {
	frame, err := display.NewFrame(width, height)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	win := &Window{
		sig:     sig,
		quit:    quit,
		main:    assert.NewThread(),
		frame:   frame,
		pending: make([]byte, len(frame.Pixels)),
		dirty:   true,
	}

	// the SDL package calls LockOSThread() but we call it here too
	runtime.LockOSThread()

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	win.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// the frame is three bytes per pixel in blue, green, red order. the
	// texture is scaled by the renderer to fit the window
	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_BGR24),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(width), int32(height))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	logger.Logf(logger.Allow, "sdl", "window %dx%d", width, height)

	return win, nil
}

// Frame implements the display.Display interface.
func (win *Window) Frame() display.Frame {
	return win.frame
}

// Flush implements the display.Display interface.
func (win *Window) Flush(f display.Frame) error {
	win.crit.Lock()
	defer win.crit.Unlock()
	copy(win.pending, f.Pixels)
	win.dirty = true
	return nil
}

// Service handles window events and presents the most recently flushed frame.
//
// MUST ONLY be called from the #mainthread
func (win *Window) Service() {
	win.main.Check("sdlwindow: Service")

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			if win.quit != nil {
				win.quit()
			}

		case *sdl.WindowEvent:
			win.windowEvent(ev.Event)
		}
	}

	time.Sleep(servicePeriod - time.Since(win.lastPresent))

	win.crit.Lock()
	defer win.crit.Unlock()

	if !win.dirty {
		return
	}

	if err := win.present(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
	win.dirty = false
	win.lastPresent = time.Now()
}

// windowEvent marks the window for presentation if the event requires it.
// Only a change of size raises the refresh signal.
func (win *Window) windowEvent(event uint8) {
	switch event {
	case sdl.WINDOWEVENT_EXPOSED, sdl.WINDOWEVENT_RESTORED:
		win.crit.Lock()
		win.dirty = true
		win.crit.Unlock()

	case sdl.WINDOWEVENT_SIZE_CHANGED:
		win.crit.Lock()
		win.dirty = true
		win.crit.Unlock()
		if win.sig != nil {
			win.sig.Set()
		}
	}
}

// present the pending frame. must be called with the critical section held
func (win *Window) present() error {
	err := win.texture.Update(nil, win.pending, win.frame.Stride)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = win.renderer.Clear()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = win.renderer.Copy(win.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	win.renderer.Present()

	return nil
}

// Destroy the window and release SDL resources.
//
// MUST ONLY be called from the #mainthread
func (win *Window) Destroy(output io.Writer) {
	win.main.Check("sdlwindow: Destroy")

	if err := win.texture.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := win.renderer.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := win.window.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	sdl.Quit()
}
