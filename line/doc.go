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

// Package line implements the text channel between the game and the player.
//
// A Line wraps any io.ReadWriter. Bytes read from the underlying reader are
// pumped into a buffered channel by a background goroutine, which gives the
// game a non-blocking "byte available" probe and lets waits select on the
// line alongside the refresh signal and a context.
//
// Output is plain text. The game uses "\n\r" line endings and the literal
// ANSI sequences CursorHome and ClearScreen to redraw the screen, which is
// what a serial terminal expects.
//
// The serialport and console sub-packages provide the underlying devices.
package line
