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

// Package hardware collects the devices of the board into a single context
// object. The Board type holds the display, the line, the refresh signal and
// the timer, and is passed by reference to the game.
//
// Nothing in the hardware package knows about the rules of the game. Board
// initialisation draws a test pattern on the display, in the manner of the
// original video demonstration, so that a working display can be confirmed
// before the menu is shown.
package hardware
