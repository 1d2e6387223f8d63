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

// Package sdlwindow implements the display.Display interface with an SDL
// window. It is the host equivalent of the board's HDMI output.
//
// SDL requires that window creation, event handling and rendering happen on
// the main thread. The game writes to the frame and calls Flush() from its
// own goroutine. Flush() only takes a copy of the frame, and the copy is
// presented the next time Service() is called from the main thread.
//
// Exposing or restoring the window presents the frame again. Resizing the
// window also raises the refresh signal. Closing the window calls the quit
// function.
package sdlwindow
