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

package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/display"
	"github.com/simonvid/simonvid/logger"
	"github.com/simonvid/simonvid/paths"
)

// Sentinal errors.
const (
	SaveError = "snapshot: %v"
)

// Image converts the visible area of the frame to an RGBA image. Padding at
// the end of each row is ignored.
func Image(f display.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for x := 0; x < f.Width; x++ {
			s := row[x*display.BytesPerPixel:]
			d := img.Pix[img.PixOffset(x, y):]

			// frame is in blue, green, red order
			d[0] = s[2]
			d[1] = s[1]
			d[2] = s[0]
			d[3] = 0xff
		}
	}
	return img
}

// Save the frame as a PNG file.
func Save(filename string, f display.Frame) error {
	if err := f.Check(); err != nil {
		return curated.Errorf(SaveError, err)
	}
	dc := gg.NewContextForRGBA(Image(f))
	if err := dc.SavePNG(filename); err != nil {
		return curated.Errorf(SaveError, err)
	}
	return nil
}

// Snapshot implements the display.Display interface.
type Snapshot struct {
	display.Display

	dir    string
	prefix string
	count  int
	last   string
}

// NewSnapshot is the preferred method of initialisation for the Snapshot
// type. The directory is created if it does not already exist.
func NewSnapshot(disp display.Display, dir string) (*Snapshot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, curated.Errorf(SaveError, err)
	}
	return &Snapshot{
		Display: disp,
		dir:     dir,
		prefix:  paths.UniqueFilename("simonvid", "", ""),
	}, nil
}

// Flush implements the display.Display interface. The frame is passed to the
// decorated display before it is saved.
func (snp *Snapshot) Flush(f display.Frame) error {
	if err := snp.Display.Flush(f); err != nil {
		return err
	}

	fn := filepath.Join(snp.dir, fmt.Sprintf("%s_%04d.png", snp.prefix, snp.count))
	if err := Save(fn, f); err != nil {
		return err
	}
	snp.count++
	snp.last = fn

	logger.Logf(logger.Allow, "snapshot", "saved %s", fn)

	return nil
}

// Count returns the number of snapshots saved.
func (snp *Snapshot) Count() int {
	return snp.count
}

// Last returns the filename of the most recent snapshot. Empty if there have
// been no snapshots.
func (snp *Snapshot) Last() string {
	return snp.last
}
