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

// Package sequence implements the fixed capacity colour sequence used for
// both the target pattern and the player's guess.
//
// A Sequence is created with every slot holding the rest marker of its mode.
// Generate() creates a target sequence where even slots hold random palette
// colours and odd slots hold the rest marker. The rest slots make the
// playback show a blank board between colours.
package sequence
