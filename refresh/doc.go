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

// Package refresh implements the asynchronous refresh signal.
//
// The signal is raised by an event outside the game loop, such as the
// display window being exposed or the console being resized. It is consumed
// by whoever is waiting for line input at the time.
//
// Set() is the single entry point for the event source. It never blocks and
// is safe to call from any goroutine. The waiting party calls Clear() at the
// start of each wait and then selects on Wake() alongside its other channels.
//
//	sig.Clear()
//	select {
//	case b := <-bytes:
//		...
//	case <-sig.Wake():
//		if sig.IsSet() {
//			...
//		}
//	}
package refresh
