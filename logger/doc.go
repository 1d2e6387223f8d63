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

// Package logger is the central log for the application. Entries are made of
// a tag, naming the part of the program making the entry, and a detail.
// Repeated entries are collapsed into a single entry with a repeat count.
//
// The central log is bounded. Once the maximum number of entries has been
// reached the oldest entries are discarded.
//
// Log entries are never written to the game line. Echoing is to a writer
// chosen by the caller, normally stderr, with the SetEcho() function.
package logger
