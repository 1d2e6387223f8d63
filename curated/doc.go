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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with
// Errorf(), which takes a pattern and a list of values in the same way as
// fmt.Errorf().
//
// The pattern is the identity of the error. The Is() function compares an
// error against a pattern and Has() searches the chain of wrapped curated
// errors for the pattern:
//
//	err := curated.Errorf(hardware.InitError, "display", e)
//	if curated.Is(err, hardware.InitError) {
//		...
//	}
//
// Patterns should be exported constants declared next to the code that
// produces them.
//
// The Error() function normalises the message by removing adjacent
// duplicate parts. The message "line: line: closed" becomes "line: closed".
package curated
