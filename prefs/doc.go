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

// Package prefs facilitates the storage and loading of preference values.
//
// Preference values are typed (Bool, Int, String, Duration) and safe to read
// from a goroutine other than the one that sets them. Each type accepts a
// value of its own type or a string, which is how values arrive from the
// preferences file and from the command line.
//
// Values are associated with a key and a Disk instance with the Add()
// function. The Load() and Save() functions of Disk read and write the
// preferences file. Entries in the file that are not associated with any
// value are preserved when saving.
//
// The command line stack allows preferences to be set for the duration of a
// single run of the program. The stack is pushed with a string of key::value
// pairs separated by semicolons:
//
//	simon.capacity::6; simon.playback::200ms
//
// Values on the top of the stack are consumed by Disk.Load() and override
// the values found in the preferences file.
package prefs
