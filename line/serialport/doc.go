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

// Package serialport opens a serial device for use as the game line. The
// board's UART is normally presented to the host as a USB serial device.
//
// If no port name is given, the USB ports of the host are searched for a
// device with a known vendor ID. The port is opened at the requested baud
// rate or, if that fails, at the next lower common rate.
package serialport
