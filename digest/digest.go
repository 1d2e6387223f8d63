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

package digest

import (
	"crypto/sha1"
	"fmt"
	"sync"

	"github.com/simonvid/simonvid/display"
)

// Frame returns the digest of the visible rectangle of the frame. Row padding
// does not contribute to the digest.
func Frame(f display.Frame) [sha1.Size]byte {
	h := sha1.New()
	for y := 0; y < f.Height; y++ {
		h.Write(f.Row(y))
	}

	var d [sha1.Size]byte
	copy(d[:], h.Sum(nil))
	return d
}

// Display decorates a display.Display with a chained digest of every flushed
// frame.
type Display struct {
	display.Display

	crit    sync.Mutex
	digest  [sha1.Size]byte
	flushes int
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(disp display.Display) *Display {
	return &Display{Display: disp}
}

func (dig *Display) String() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// Flush implements the display.Display interface.
func (dig *Display) Flush(f display.Frame) error {
	if err := dig.Display.Flush(f); err != nil {
		return err
	}

	dig.crit.Lock()
	defer dig.crit.Unlock()

	// chain fingerprints by hashing the previous digest ahead of the frame
	h := sha1.New()
	h.Write(dig.digest[:])
	for y := 0; y < f.Height; y++ {
		h.Write(f.Row(y))
	}
	copy(dig.digest[:], h.Sum(nil))
	dig.flushes++

	return nil
}

// Digest returns the current chained digest value.
func (dig *Display) Digest() [sha1.Size]byte {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.digest
}

// Flushes returns the number of frames that have contributed to the digest.
func (dig *Display) Flushes() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.flushes
}

// ResetDigest resets the current digest value to 0.
func (dig *Display) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.flushes = 0
}
