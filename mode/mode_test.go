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

package mode_test

import (
	"testing"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/mode"
	"github.com/simonvid/simonvid/test"
)

func TestLookupTwoByTwo(t *testing.T) {
	m := mode.TwoByTwo
	test.ExpectEquality(t, m.Lookup('R'), 0)
	test.ExpectEquality(t, m.Lookup('G'), 2)
	test.ExpectEquality(t, m.Lookup('B'), 1)
	test.ExpectEquality(t, m.Lookup('Y'), 3)

	// unrecognised symbols map to the rest marker. including lower case
	test.ExpectEquality(t, m.Lookup('r'), 4)
	test.ExpectEquality(t, m.Lookup('x'), 4)
	test.ExpectEquality(t, m.Lookup('\r'), m.Rest())
}

func TestLookupThreeByThree(t *testing.T) {
	m := mode.ThreeByThree
	for s := byte('1'); s <= '9'; s++ {
		test.ExpectEquality(t, m.Lookup(s), int(s-'0'))
	}
	test.ExpectEquality(t, m.Lookup('5'), 5)
	test.ExpectEquality(t, m.Lookup('0'), 0)
	test.ExpectEquality(t, m.Lookup('R'), 0)
	test.ExpectEquality(t, m.Rest(), 0)
}

func TestPalette(t *testing.T) {
	for _, m := range mode.Modes {
		l := m.Layout()
		test.ExpectEquality(t, len(l.Cells), l.Dimension*l.Dimension, m)
		test.ExpectEquality(t, l.PaletteSize, len(l.Cells), m)
		test.ExpectFailure(t, m.Valid(m.Rest()), m)

		// every cell index is valid and appears exactly once
		seen := make(map[int]bool)
		for _, c := range l.Cells {
			test.ExpectSuccess(t, m.Valid(c.Index), m, c.Index)
			test.ExpectFailure(t, seen[c.Index], m, c.Index)
			seen[c.Index] = true
			test.ExpectEquality(t, m.Lookup(c.Symbol), c.Index, m)
		}

		for n := 0; n < m.PaletteSize(); n++ {
			test.ExpectSuccess(t, m.Valid(m.Colour(n)), m, n)
		}
	}
}

func TestNumpadLayout(t *testing.T) {
	m := mode.ThreeByThree
	test.ExpectEquality(t, m.Cell(0, 0).Index, 7)
	test.ExpectEquality(t, m.Cell(1, 1).Index, 5)
	test.ExpectEquality(t, m.Cell(2, 2).Index, 3)

	m = mode.TwoByTwo
	test.ExpectEquality(t, m.Cell(0, 0).Name, "red")
	test.ExpectEquality(t, m.Cell(0, 1).Name, "green")
	test.ExpectEquality(t, m.Cell(1, 0).Name, "blue")
	test.ExpectEquality(t, m.Cell(1, 1).Name, "yellow")
}

func TestDim(t *testing.T) {
	c := mode.Pixel{255, 55, 0}
	test.ExpectEquality(t, c.Dim(), mode.Pixel{127, 27, 0})
	for _, m := range mode.Modes {
		for _, cell := range m.Layout().Cells {
			test.ExpectInequality(t, cell.Base.Dim(), cell.Base, m, cell.Index)
		}
	}
}

func TestParse(t *testing.T) {
	m, err := mode.Parse("2x2")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, mode.TwoByTwo)

	m, err = mode.Parse("3X3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, mode.ThreeByThree)

	_, err = mode.Parse("4x4")
	test.ExpectSuccess(t, curated.Is(err, mode.UnknownMode))
}

func TestDescribe(t *testing.T) {
	test.ExpectEquality(t, mode.TwoByTwo.Describe(2), "green")
	test.ExpectEquality(t, mode.TwoByTwo.Describe(4), "rest")
	test.ExpectEquality(t, mode.ThreeByThree.Describe(5), "5")
	test.ExpectEquality(t, mode.ThreeByThree.Describe(0), "rest")
}

func TestPixelByteOrder(t *testing.T) {
	red := mode.TwoByTwo.Cell(0, 0)
	test.DemandEquality(t, red.Name, "red")
	test.ExpectEquality(t, red.Base, mode.Pixel{0x00, 0x00, 0xff})

	blue := mode.TwoByTwo.Cell(1, 0)
	test.DemandEquality(t, blue.Name, "blue")
	test.ExpectEquality(t, blue.Base, mode.Pixel{0xff, 0x00, 0x00})
}
