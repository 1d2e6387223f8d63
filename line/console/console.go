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

package console

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/term"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/line"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/refresh"
)

// DefaultDevice is the controlling terminal.
const DefaultDevice = "/dev/tty"

// Sentinal errors.
const (
	OpenError = "console: %v"
)

// Console is a raw mode terminal.
type Console struct {
	tty       *term.Term
	interrupt func()

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool
}

// Open the terminal device in raw mode. The refresh signal is raised when the
// terminal is resized. The interrupt function is called when the interrupt
// key is pressed. Both sig and interrupt can be nil.
func Open(device string, sig *refresh.Signal, interrupt func()) (*Console, error) {
	if device == "" {
		device = DefaultDevice
	}

	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}

	con := &Console{
		tty:                 tty,
		interrupt:           interrupt,
		terminateHandlerSig: make(chan bool),
		terminateHandlerAck: make(chan bool),
	}

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			con.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				logger.Log(logger.Allow, "console", "geometry changed")
				if sig != nil {
					sig.Set()
				}
			case <-con.terminateHandlerSig:
				return
			}
		}
	}()

	return con, nil
}

// Read implements the io.Reader interface.
func (con *Console) Read(p []byte) (int, error) {
	for {
		n, err := con.tty.Read(p)
		if n > 0 {
			var interrupted bool
			n, interrupted = filter(p[:n])
			if interrupted && con.interrupt != nil {
				con.interrupt()
			}
		}

		// a read that was entirely interrupt keys is not passed on because an
		// io.Reader should not return zero bytes without an error
		if n > 0 || err != nil {
			return n, err
		}
	}
}

// Write implements the io.Writer interface.
func (con *Console) Write(p []byte) (int, error) {
	return con.tty.Write(p)
}

// Pending returns the number of bytes waiting in the terminal driver.
func (con *Console) Pending() int {
	n, err := con.tty.Available()
	if err != nil {
		return 0
	}
	return n
}

// Close restores the terminal to the mode it was in before Open() and
// closes the device.
func (con *Console) Close() error {
	con.terminateHandlerSig <- true
	<-con.terminateHandlerAck

	if err := con.tty.Restore(); err != nil {
		logger.Log(logger.Allow, "console", err)
	}
	return con.tty.Close()
}

// filter removes interrupt keys from the buffer. Returns the new length of
// the buffer and whether any interrupt keys were found.
func filter(p []byte) (int, bool) {
	var interrupted bool
	n := 0
	for _, b := range p {
		if b == line.KeyInterrupt {
			interrupted = true
			continue
		}
		p[n] = b
		n++
	}
	return n, interrupted
}
