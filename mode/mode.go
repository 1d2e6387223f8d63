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

package mode

import (
	"fmt"
	"strings"

	"github.com/simonvid/simonvid/curated"
)

// Mode is the game mode. It fixes the grid dimension, the palette and the
// symbol table.
type Mode int

// List of valid Mode values.
const (
	TwoByTwo Mode = iota
	ThreeByThree
)

// Modes lists all valid modes in menu order.
var Modes = []Mode{TwoByTwo, ThreeByThree}

// UnknownMode is returned by Parse() for an unrecognised mode name.
const UnknownMode = "mode: unknown mode (%s)"

// Pixel is a colour value. The bytes are in the order they are written to
// the frame buffer: blue, green, red.
type Pixel [3]byte

// Dim returns the dimmed variant of the colour. Every channel is halved.
func (c Pixel) Dim() Pixel {
	return Pixel{c[0] / 2, c[1] / 2, c[2] / 2}
}

// Cell is one square of the game board.
type Cell struct {
	// the colour index shown by the sequence and entered by the player
	Index int

	// the symbol that selects this cell
	Symbol byte

	// colour name used in log entries. may be empty
	Name string

	// the colour when the cell is active. inactive cells use Base.Dim()
	Base Pixel
}

// Layout is the data table for a Mode.
type Layout struct {
	Name      string
	Dimension int

	// palette range is [First, First+PaletteSize)
	First       int
	PaletteSize int

	// sequence slot value meaning "no cell"
	Rest int

	// cells in row-major order, the first row being the top of the screen
	Cells []Cell

	// console lines describing the symbols
	Legend []string
}

var layouts = map[Mode]*Layout{
	TwoByTwo: {
		Name:        "2x2",
		Dimension:   2,
		First:       0,
		PaletteSize: 4,
		Rest:        4,
		Cells: []Cell{
			{Index: 0, Symbol: 'R', Name: "red", Base: Pixel{0, 0, 255}},
			{Index: 2, Symbol: 'G', Name: "green", Base: Pixel{0, 255, 0}},
			{Index: 1, Symbol: 'B', Name: "blue", Base: Pixel{255, 0, 0}},
			{Index: 3, Symbol: 'Y', Name: "yellow", Base: Pixel{0, 255, 255}},
		},
		Legend: []string{
			"R = Red, G= Green, B=Blue, Y=Yellow",
		},
	},
	ThreeByThree: {
		Name:        "3x3",
		Dimension:   3,
		First:       1,
		PaletteSize: 9,
		Rest:        0,
		Cells: []Cell{
			{Index: 7, Symbol: '7', Base: Pixel{38, 48, 214}},
			{Index: 8, Symbol: '8', Base: Pixel{66, 108, 244}},
			{Index: 9, Symbol: '9', Base: Pixel{98, 174, 254}},
			{Index: 4, Symbol: '4', Base: Pixel{138, 224, 254}},
			{Index: 5, Symbol: '5', Base: Pixel{192, 254, 254}},
			{Index: 6, Symbol: '6', Base: Pixel{138, 238, 218}},
			{Index: 1, Symbol: '1', Base: Pixel{106, 218, 166}},
			{Index: 2, Symbol: '2', Base: Pixel{98, 188, 102}},
			{Index: 3, Symbol: '3', Base: Pixel{80, 152, 26}},
		},
		Legend: []string{
			"Use Your Num Pad!",
			"",
			" 7 8 9 ",
			"",
			" 4 5 6 ",
			"",
			" 1 2 3 ",
		},
	},
}

// Parse returns the Mode for the name. Names are those returned by String()
// and are not case sensitive.
func Parse(name string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(layouts[m].Name, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return TwoByTwo, curated.Errorf(UnknownMode, name)
}

func (m Mode) String() string {
	if l, ok := layouts[m]; ok {
		return l.Name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Layout returns the data table for the mode. The mode must be valid.
func (m Mode) Layout() *Layout {
	l, ok := layouts[m]
	if !ok {
		panic(fmt.Sprintf("mode: no layout for %s", m))
	}
	return l
}

// Dimension is the number of cells along each side of the grid.
func (m Mode) Dimension() int {
	return m.Layout().Dimension
}

// PaletteSize is the number of distinct colour indices.
func (m Mode) PaletteSize() int {
	return m.Layout().PaletteSize
}

// Rest is the rest marker for the mode.
func (m Mode) Rest() int {
	return m.Layout().Rest
}

// Colour returns the palette index at position n of the palette. n must be in
// the range [0, PaletteSize).
func (m Mode) Colour(n int) int {
	return m.Layout().First + n
}

// Valid returns true if the index is in the palette of the mode. The rest
// marker is never valid.
func (m Mode) Valid(index int) bool {
	l := m.Layout()
	return index >= l.First && index < l.First+l.PaletteSize
}

// Lookup maps a symbol to a colour index. Symbols outside the table map to
// the rest marker. This is not an error.
func (m Mode) Lookup(symbol byte) int {
	l := m.Layout()
	for _, c := range l.Cells {
		if c.Symbol == symbol {
			return c.Index
		}
	}
	return l.Rest
}

// Cell returns the cell at the row and column.
func (m Mode) Cell(row, col int) Cell {
	l := m.Layout()
	return l.Cells[row*l.Dimension+col]
}

// Describe returns a short description of the colour index for log entries.
func (m Mode) Describe(index int) string {
	l := m.Layout()
	if index == l.Rest {
		return "rest"
	}
	for _, c := range l.Cells {
		if c.Index == index {
			if c.Name != "" {
				return c.Name
			}
			return string(c.Symbol)
		}
	}
	return fmt.Sprintf("invalid(%d)", index)
}
