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
	"io"
)

// Pipe is an in-memory device for a Line. Input is supplied by the Send()
// and Hangup() functions. Output is written to the io.Writer given to
// NewPipe().
//
// Pipe is used for tests and for driving the game from a script.
type Pipe struct {
	pr *io.PipeReader
	pw *io.PipeWriter
	w  io.Writer
}

// NewPipe is the preferred method of initialisation for the Pipe type.
func NewPipe(output io.Writer) *Pipe {
	pr, pw := io.Pipe()
	return &Pipe{
		pr: pr,
		pw: pw,
		w:  output,
	}
}

// Read implements the io.Reader interface.
func (p *Pipe) Read(b []byte) (int, error) {
	return p.pr.Read(b)
}

// Write implements the io.Writer interface.
func (p *Pipe) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

// Send input to the line. Send blocks until the line has read every byte.
func (p *Pipe) Send(s string) error {
	_, err := io.WriteString(p.pw, s)
	return err
}

// Hangup ends the input. The line sees io.EOF once all sent bytes have been
// read.
func (p *Pipe) Hangup() error {
	return p.pw.Close()
}

// Close implements the io.Closer interface.
func (p *Pipe) Close() error {
	return p.pr.Close()
}
