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

package display

import (
	"github.com/simonvid/simonvid/curated"
)

// BytesPerPixel is the number of bytes for each pixel in a Frame. The order
// of the bytes is blue, green, red.
const BytesPerPixel = 3

// Sentinal errors.
const (
	BadGeometry = "display: bad geometry: %s"
)

// Frame is a reference to a pixel buffer. The pixel at (x, y) starts at
// offset y*Stride + x*BytesPerPixel.
type Frame struct {
	Pixels []byte
	Width  int
	Height int

	// number of bytes between the start of one row and the next. this can be
	// larger than Width*BytesPerPixel
	Stride int
}

// NewFrame allocates a new frame with no padding at the end of each row.
func NewFrame(width, height int) (Frame, error) {
	f := Frame{
		Width:  width,
		Height: height,
		Stride: width * BytesPerPixel,
	}
	if width < 0 || height < 0 {
		return f, curated.Errorf(BadGeometry, "negative dimensions")
	}
	f.Pixels = make([]byte, f.Stride*height)
	return f, nil
}

// Offset returns the index in Pixels of the first byte of the pixel at (x, y).
func (f Frame) Offset(x, y int) int {
	return y*f.Stride + x*BytesPerPixel
}

// Size returns the number of bytes covered by the visible rectangle. This
// does not include any padding at the end of the last row.
func (f Frame) Size() int {
	if f.Width <= 0 || f.Height <= 0 {
		return 0
	}
	return (f.Height-1)*f.Stride + f.Width*BytesPerPixel
}

// Check returns an error if the geometry of the frame is inconsistent with
// the size of the pixel buffer.
func (f Frame) Check() error {
	if f.Width < 0 || f.Height < 0 {
		return curated.Errorf(BadGeometry, "negative dimensions")
	}
	if f.Stride < f.Width*BytesPerPixel {
		return curated.Errorf(BadGeometry, "stride shorter than row")
	}
	if len(f.Pixels) < f.Size() {
		return curated.Errorf(BadGeometry, "buffer too small")
	}
	return nil
}

// Row returns the bytes of row y that are inside the visible rectangle.
func (f Frame) Row(y int) []byte {
	o := y * f.Stride
	return f.Pixels[o : o+f.Width*BytesPerPixel]
}

// Display is implemented by anything that can show a Frame.
type Display interface {
	// Frame returns the currently writable frame.
	Frame() Frame

	// Flush makes writes to the frame visible to the consumer of the frame
	// buffer. It must be called after writing and before the next render.
	Flush(Frame) error
}
