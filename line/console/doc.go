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

// Package console uses the controlling terminal of the process as the game
// line. The terminal is put into raw mode so that every key press is
// delivered immediately and "\n\r" line endings behave as they do on a
// serial terminal.
//
// In raw mode the terminal no longer turns Ctrl-C into a signal. The console
// removes the interrupt key from the input and calls the interrupt function
// instead. A change of terminal geometry raises the refresh signal.
package console
