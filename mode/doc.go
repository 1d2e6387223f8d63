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

// Package mode defines the two game modes and the tables that drive them.
//
// Every mode has a square grid of cells. Each cell has a colour index, the
// symbol the player types to guess that cell, and a base colour. The tables
// replace what would otherwise be a switch statement per grid size in both
// the renderer and the input collector.
//
// The two modes index their cells differently. The 2x2 mode uses indices 0
// to 3 with 4 as the rest marker. The 3x3 mode uses the numeric keypad
// labels 1 to 9 with 0 as the rest marker. The palette of a mode is therefore
// the range [First, First+PaletteSize).
package mode
