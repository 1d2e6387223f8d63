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

// Package snapshot decorates a display.Display so that every flushed frame is
// also saved to disk as a PNG file. It is useful for reviewing a game after
// the fact, or for checking the board layout on a machine without a monitor.
//
// Files are named with a common prefix and the number of the flush:
//
//	simonvid_YYYYMMDD_HHMMSS_0000.png
package snapshot
