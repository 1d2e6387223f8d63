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

// Package simon implements the memory game.
//
// The Menu type is the top level driver. It shows the menu on the line,
// waits for a selection and runs a Session for the selected mode. A Session
// plays one game from the rules prompt to a win or a loss. The rules of the
// game are in the Engine type, which has no knowledge of the line or the
// display and can be tested in isolation.
//
// A round consists of a playback phase, where the first Length entries of
// the target sequence are shown on the board, a collecting phase, where one
// symbol is read from the line for every colour entry, and a verification
// phase. Each round adds one colour to the sequence. The game is won when
// the sequence reaches its capacity and is lost at the first incorrect
// colour.
//
// The refresh signal only affects the menu. While a session is running a
// refresh does not interrupt the wait for a guess.
package simon
