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

// Package random provides the pseudo-random source used to generate game
// sequences. The process-wide source is seeded once, when the package is
// initialised, from the current time. Sequences are therefore different on
// every run of the program.
//
// Instances with a fixed seed can be created with NewSeeded(). This is only
// really useful for testing, where the numbers must be predictable.
package random
