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

package line

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/refresh"
)

// Sentinal errors.
const (
	Closed     = "line: closed: %v"
	WriteError = "line: write: %v"
)

// size of the input buffer. bytes arriving when the buffer is full will wait
// in the underlying device
const inputBuffer = 256

// Line is the text channel to the player.
type Line struct {
	rw io.ReadWriter

	in   chan byte
	done chan struct{}

	// the error that stopped the pump. only read once done is closed
	err error

	// output is serialised
	crit sync.Mutex

	// number of calls to Wait()
	waits atomic.Int64
}

// NewLine is the preferred method of initialisation for the Line type. The
// pump goroutine starts immediately and runs until the reader returns an
// error.
func NewLine(rw io.ReadWriter) *Line {
	l := &Line{
		rw:   rw,
		in:   make(chan byte, inputBuffer),
		done: make(chan struct{}),
	}
	go l.pump()
	return l
}

func (l *Line) pump() {
	defer close(l.done)

	buf := make([]byte, 64)
	for {
		n, err := l.rw.Read(buf)
		for _, b := range buf[:n] {
			l.in <- b
		}
		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "line", err)
			}
			l.err = err
			return
		}
	}
}

// Available returns true if at least one byte can be read without waiting.
func (l *Line) Available() bool {
	return len(l.in) > 0
}

// Buffered returns the number of bytes that can be read without waiting.
func (l *Line) Buffered() int {
	return len(l.in)
}

// Drain discards all buffered input and returns the number of bytes
// discarded.
func (l *Line) Drain() int {
	n := 0
	for {
		select {
		case <-l.in:
			n++
		default:
			return n
		}
	}
}

// Wait blocks until a byte arrives on the line, the refresh signal is raised
// or the context is cancelled. The signal is cleared at the start of the
// wait. The signal can be nil.
//
// If the signal caused the wait to end, and no byte is available, then the
// refreshed return value is true and the byte value is zero. No byte is read
// from the line in that case.
func (l *Line) Wait(ctx context.Context, sig *refresh.Signal) (b byte, refreshed bool, err error) {
	var wake <-chan struct{}
	if sig != nil {
		sig.Clear()
		wake = sig.Wake()
	}

	l.waits.Add(1)

	select {
	case b := <-l.in:
		return b, false, nil
	case <-wake:
		// a byte that arrived alongside the signal takes precedence
		select {
		case b := <-l.in:
			return b, false, nil
		default:
		}
		return 0, true, nil
	case <-l.done:
		// bytes received before the line closed are still delivered
		select {
		case b := <-l.in:
			return b, false, nil
		default:
		}
		return 0, false, curated.Errorf(Closed, l.err)
	case <-ctx.Done():
		return 0, false, ctx.Err()
	}
}

// Waits returns the number of waits that have begun. A script driving the
// line can use this to send input only once the game is waiting for it.
func (l *Line) Waits() int64 {
	return l.waits.Load()
}

// ReadByte waits for the next byte on the line. The refresh signal plays no
// part in the wait. Implements the io.ByteReader interface.
func (l *Line) ReadByte() (byte, error) {
	b, _, err := l.Wait(context.Background(), nil)
	return b, err
}

// Echo writes a received byte back to the line.
func (l *Line) Echo(b byte) error {
	_, err := l.Write([]byte{b})
	return err
}

// Write implements the io.Writer interface.
func (l *Line) Write(p []byte) (int, error) {
	l.crit.Lock()
	defer l.crit.Unlock()
	n, err := l.rw.Write(p)
	if err != nil {
		return n, curated.Errorf(WriteError, err)
	}
	return n, nil
}

// Print writes the string to the line.
func (l *Line) Print(s string) error {
	_, err := io.WriteString(l, s)
	return err
}

// Printf writes the formatted string to the line.
func (l *Line) Printf(format string, args ...any) error {
	return l.Print(fmt.Sprintf(format, args...))
}

// Redraw moves the cursor to the top left of the screen and clears it.
func (l *Line) Redraw() error {
	return l.Print(CursorHome + ClearScreen)
}

// Done returns a channel that is closed when the line can no longer be read.
func (l *Line) Done() <-chan struct{} {
	return l.done
}

// Close the underlying device, if it can be closed.
func (l *Line) Close() error {
	if c, ok := l.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
