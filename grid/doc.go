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

// Package grid paints the game board into a frame buffer.
//
// The frame is divided into a square grid of equal bands along both axes,
// the number of bands being the dimension of the game mode. The final band
// on each axis absorbs any remainder from the integer division. Each cell is
// painted with its base colour if it is the active cell and with the dimmed
// variant of the base colour otherwise. An active index that matches no cell
// dims the entire board.
//
// Paint() only writes to the frame. Renderer.Render() paints the current
// frame of a display.Display and then flushes it, which is the only correct
// way of updating the screen during a game.
package grid
