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

// Package display defines the frame buffer contract between the game and
// the device that shows it.
//
// The game never allocates or swaps frame buffers. It asks the Display for
// the currently writable Frame, writes pixels into it and then calls Flush()
// to make the writes visible to whatever consumes the buffer. A write that is
// not followed by a Flush() may never be seen.
//
// Implementations of the Display interface are found in the sub-packages.
package display
