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

// Package headless implements the display.Display interface without any
// output device.
//
// The display holds three frame buffers, of which one is the current
// writable frame. Every call to Flush() copies the written frame to the
// visible image, which can be inspected with Visible(). The number of calls
// to Flush() is counted.
//
// Headless is used by the PATTERN mode, by PLAY mode when no window is
// wanted, and by tests.
package headless
