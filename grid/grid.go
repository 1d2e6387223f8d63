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
	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/display"
	"github.com/simonvid/simonvid/mode"
)

// Bounds returns the start and end of band k when an extent is divided into
// dim bands. The end value is exclusive.
func Bounds(extent int, dim int, k int) (int, int) {
	size := extent / dim
	start := k * size
	if k == dim-1 {
		return start, extent
	}
	return start, start + size
}

// Colour returns the colour of the cell at the row and column for the active
// index.
func Colour(m mode.Mode, row int, col int, active int) mode.Pixel {
	c := m.Cell(row, col)
	if c.Index == active {
		return c.Base
	}
	return c.Base.Dim()
}

// Paint the board for the mode into the frame. The cell with the active index
// is highlighted. Bytes outside the visible rectangle of the frame, such as
// row padding, are not touched.
//
// Painting is a pure function of its arguments. Painting the same frame twice
// with the same arguments produces the same buffer.
func Paint(f display.Frame, m mode.Mode, active int) error {
	if err := f.Check(); err != nil {
		return curated.Errorf("grid: %v", err)
	}
	if f.Width == 0 || f.Height == 0 {
		return nil
	}

	dim := m.Dimension()
	line := make([]byte, f.Width*display.BytesPerPixel)

	for row := 0; row < dim; row++ {
		// prepare one scanline for this band of rows
		for col := 0; col < dim; col++ {
			c := Colour(m, row, col, active)
			x0, x1 := Bounds(f.Width, dim, col)
			for x := x0; x < x1; x++ {
				o := x * display.BytesPerPixel
				line[o] = c[0]
				line[o+1] = c[1]
				line[o+2] = c[2]
			}
		}

		y0, y1 := Bounds(f.Height, dim, row)
		for y := y0; y < y1; y++ {
			copy(f.Row(y), line)
		}
	}

	return nil
}
