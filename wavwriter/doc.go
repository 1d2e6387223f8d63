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

// Package wavwriter records the tones of a game to disk as a WAV file.
//
// The WavWriter type is both a grid.Listener and a timer.Delayer. Every
// highlight selects the tone for the active cell and every delay appends that
// many samples of the tone to the recording. The rest cell is silent.
//
// Audio data is buffered in memory in its entirity and written to disk when
// Close() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter
