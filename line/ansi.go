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

// ANSI control sequences used to redraw the screen.
const (
	CursorHome  = "\033[H"
	ClearScreen = "\033[2J"
)

// EOL is the line ending expected by the serial terminal.
const EOL = "\n\r"

// ASCII codes for non-alphanumeric bytes that may arrive on the line.
const (
	KeyInterrupt      = 3
	KeyCarriageReturn = 13
	KeyLineFeed       = 10
	KeyEsc            = 27
)
