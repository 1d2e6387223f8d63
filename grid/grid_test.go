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

package grid_test

import (
	"bytes"
	"testing"

	"github.com/simonvid/simonvid/display"
	"github.com/simonvid/simonvid/display/headless"
	"github.com/simonvid/simonvid/grid"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/test"
)

// value not used by any base or dimmed colour
const sentinel = 0xaa

func newFrame(width, height, stride int) display.Frame {
	f := display.Frame{
		Pixels: make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}
	for i := range f.Pixels {
		f.Pixels[i] = sentinel
	}
	return f
}

func pixel(f display.Frame, x, y int) mode.Pixel {
	o := f.Offset(x, y)
	return mode.Pixel{f.Pixels[o], f.Pixels[o+1], f.Pixels[o+2]}
}

func TestBounds(t *testing.T) {
	s, e := grid.Bounds(10, 3, 0)
	test.ExpectEquality(t, s, 0)
	test.ExpectEquality(t, e, 3)
	s, e = grid.Bounds(10, 3, 1)
	test.ExpectEquality(t, s, 3)
	test.ExpectEquality(t, e, 6)

	// last band absorbs the remainder
	s, e = grid.Bounds(10, 3, 2)
	test.ExpectEquality(t, s, 6)
	test.ExpectEquality(t, e, 10)

	s, e = grid.Bounds(720, 2, 1)
	test.ExpectEquality(t, s, 360)
	test.ExpectEquality(t, e, 720)
}

func TestPaintTwoByTwo(t *testing.T) {
	f := newFrame(8, 6, 8*3)
	test.DemandSuccess(t, grid.Paint(f, mode.TwoByTwo, 0))

	// active red cell in the top left
	test.ExpectEquality(t, pixel(f, 0, 0), mode.Pixel{0, 0, 255})
	test.ExpectEquality(t, pixel(f, 3, 2), mode.Pixel{0, 0, 255})

	// top right is green, dimmed
	test.ExpectEquality(t, pixel(f, 4, 0), mode.Pixel{0, 127, 0})

	// bottom left is blue, dimmed
	test.ExpectEquality(t, pixel(f, 0, 3), mode.Pixel{127, 0, 0})

	// bottom right is yellow, dimmed
	test.ExpectEquality(t, pixel(f, 7, 5), mode.Pixel{0, 127, 127})

	test.DemandSuccess(t, grid.Paint(f, mode.TwoByTwo, 3))
	test.ExpectEquality(t, pixel(f, 7, 5), mode.Pixel{0, 255, 255})
	test.ExpectEquality(t, pixel(f, 0, 0), mode.Pixel{0, 0, 127})
}

func TestPaintThreeByThree(t *testing.T) {
	f := newFrame(10, 10, 10*3)
	test.DemandSuccess(t, grid.Paint(f, mode.ThreeByThree, 5))

	// centre cell is active
	test.ExpectEquality(t, pixel(f, 4, 4), mode.Pixel{192, 254, 254})

	// numpad layout. 7 is top left and 3 is bottom right
	test.ExpectEquality(t, pixel(f, 0, 0), mode.Pixel{38, 48, 214}.Dim())
	test.ExpectEquality(t, pixel(f, 9, 9), mode.Pixel{80, 152, 26}.Dim())
	test.ExpectEquality(t, pixel(f, 0, 9), mode.Pixel{106, 218, 166}.Dim())
	test.ExpectEquality(t, pixel(f, 9, 0), mode.Pixel{98, 174, 254}.Dim())

	// pixel 9 is in the last band, which is wider than the others
	test.ExpectEquality(t, pixel(f, 6, 6), pixel(f, 9, 9))
	test.ExpectInequality(t, pixel(f, 5, 5), pixel(f, 6, 6))
}

func TestEveryCellDimmedExceptActive(t *testing.T) {
	for _, m := range mode.Modes {
		l := m.Layout()
		f := newFrame(90, 60, 90*3)

		actives := []int{l.Rest, -1, 100}
		for _, c := range l.Cells {
			actives = append(actives, c.Index)
		}

		for _, active := range actives {
			test.DemandSuccess(t, grid.Paint(f, m, active))

			lit := 0
			for row := 0; row < l.Dimension; row++ {
				for col := 0; col < l.Dimension; col++ {
					x, _ := grid.Bounds(f.Width, l.Dimension, col)
					y, _ := grid.Bounds(f.Height, l.Dimension, row)
					c := m.Cell(row, col)
					p := pixel(f, x, y)
					if p == c.Base {
						lit++
						test.ExpectEquality(t, c.Index, active, m)
					} else {
						test.ExpectEquality(t, p, c.Base.Dim(), m, active)
					}
				}
			}

			if m.Valid(active) {
				test.ExpectEquality(t, lit, 1, m, active)
			} else {
				test.ExpectEquality(t, lit, 0, m, active)
			}
		}
	}
}

func TestEveryByteVisited(t *testing.T) {
	// stride has four bytes of padding per row
	f := newFrame(13, 7, 13*3+4)
	test.DemandSuccess(t, grid.Paint(f, mode.ThreeByThree, 1))

	for y := 0; y < f.Height; y++ {
		row := f.Pixels[y*f.Stride : (y+1)*f.Stride]
		for i, b := range row {
			if i < f.Width*display.BytesPerPixel {
				if b == sentinel {
					t.Fatalf("byte not written at row %d offset %d", y, i)
				}
			} else {
				test.ExpectEquality(t, b, byte(sentinel), "padding", y, i)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	a := newFrame(31, 17, 31*3)
	b := newFrame(31, 17, 31*3)
	test.DemandSuccess(t, grid.Paint(a, mode.ThreeByThree, 8))
	test.DemandSuccess(t, grid.Paint(b, mode.ThreeByThree, 8))
	test.DemandSuccess(t, grid.Paint(b, mode.ThreeByThree, 8))
	test.ExpectSuccess(t, bytes.Equal(a.Pixels, b.Pixels))
}

func TestPaintBadFrame(t *testing.T) {
	f := display.Frame{Pixels: make([]byte, 10), Width: 4, Height: 4, Stride: 12}
	test.ExpectFailure(t, grid.Paint(f, mode.TwoByTwo, 0))

	// an empty frame is not an error
	test.ExpectSuccess(t, grid.Paint(display.Frame{}, mode.TwoByTwo, 0))
}

type listener struct {
	modes  []mode.Mode
	active []int
}

func (l *listener) Highlight(m mode.Mode, active int) {
	l.modes = append(l.modes, m)
	l.active = append(l.active, active)
}

func TestRenderFlushes(t *testing.T) {
	hd, err := headless.NewHeadless(64, 48)
	test.DemandSuccess(t, err)

	r := grid.NewRenderer(hd)
	lst := &listener{}
	r.AddListener(lst)

	test.DemandSuccess(t, r.Render(mode.TwoByTwo, 2))
	test.ExpectEquality(t, hd.Flushes(), 1)
	test.ExpectSuccess(t, bytes.Equal(hd.Visible(), hd.Frame().Pixels))

	test.DemandSuccess(t, r.Clear(mode.ThreeByThree))
	test.ExpectEquality(t, hd.Flushes(), 2)

	test.DemandEquality(t, len(lst.active), 2)
	test.ExpectEquality(t, lst.modes[0], mode.TwoByTwo)
	test.ExpectEquality(t, lst.active[0], 2)
	test.ExpectEquality(t, lst.modes[1], mode.ThreeByThree)
	test.ExpectEquality(t, lst.active[1], 0)

	// nothing is lit after Clear()
	f := hd.Frame()
	test.ExpectEquality(t, pixel(f, 0, 47), mode.Pixel{106, 218, 166}.Dim())
}
