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

// Package digest computes SHA-1 digests of frame buffers. Digests are used
// to check the output of the renderer without storing reference images.
//
// Frame() returns the digest of a single frame. The Display type decorates a
// display.Display and maintains a chained digest of every flushed frame. The
// chained digest is a fingerprint of the entire sequence of images shown
// during a game.
package digest
