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

// Package test bundles the helper functions used by the package tests in this
// project. The Expect functions report a failure and let the test continue,
// the Demand functions stop the test immediately.
//
// A success value is true for booleans and nil for errors. A nil value of no
// particular type is also considered a success, because that is how a nil
// error arrives when passed as an any argument.
//
// CompareWriter implements io.Writer and is used to capture console output
// for later comparison. It is safe to write to it from one goroutine while
// another reads it.
package test
