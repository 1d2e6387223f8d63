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

package serialport

import (
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/logger"
)

// Sentinal errors.
const (
	NoDevice  = "serialport: no device found among serial ports"
	OpenError = "serialport: failed to open %s at any baud rate: %v"
	EnumError = "serialport: %v"
)

// DefaultBaud is the baud rate of the board's UART.
const DefaultBaud = 115200

// BaudRates are tried in descending order, starting with the first rate that
// is not higher than the requested rate.
var BaudRates = []int{
	921600,
	460800,
	230400,
	115200,
	57600,
	38400,
	19200,
	9600,
}

// USB vendor IDs of the serial bridges found on development boards.
var vendors = []string{
	"0403", // FTDI
	"10C4", // Silicon Labs
	"067B", // Prolific
}

// Port is an open serial device.
type Port struct {
	serial.Port
	Name string
	Baud int
}

// Detect returns the name of the first USB serial device with a known vendor
// ID.
func Detect() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", curated.Errorf(EnumError, err)
	}

	name := choose(ports)
	if name == "" {
		return "", curated.Errorf(NoDevice)
	}
	return name, nil
}

func choose(ports []*enumerator.PortDetails) string {
	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		for _, v := range vendors {
			if strings.EqualFold(port.VID, v) {
				logger.Logf(logger.Allow, "serial", "found %s (%s:%s)", port.Name, port.VID, port.PID)
				return port.Name
			}
		}
	}
	return ""
}

// candidates returns the baud rates to try for the requested rate. The
// requested rate is always tried first.
func candidates(requested int) []int {
	if requested <= 0 {
		requested = DefaultBaud
	}
	c := []int{requested}
	for _, b := range BaudRates {
		if b < requested {
			c = append(c, b)
		}
	}
	return c
}

// Open the named serial device. An empty name causes the device to be
// detected with Detect().
func Open(name string, baud int) (*Port, error) {
	var err error

	if name == "" {
		name, err = Detect()
		if err != nil {
			return nil, err
		}
	}

	var p serial.Port
	for _, b := range candidates(baud) {
		p, err = serial.Open(name, &serial.Mode{
			BaudRate: b,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		})
		if err == nil {
			baud = b
			break
		}
		logger.Logf(logger.Allow, "serial", "%s at %d: %v", name, b, err)
	}
	if err != nil {
		return nil, curated.Errorf(OpenError, name, err)
	}

	// the board waits for DTR before sending anything. a failure to set it is
	// not fatal
	if err := p.SetDTR(true); err != nil {
		logger.Logf(logger.Allow, "serial", "DTR: %v", err)
	}

	logger.Logf(logger.Allow, "serial", "opened %s at %d baud", name, baud)

	return &Port{
		Port: p,
		Name: name,
		Baud: baud,
	}, nil
}

// Close the serial device.
func (p *Port) Close() error {
	_ = p.SetDTR(false)
	if err := p.Port.Close(); err != nil {
		return curated.Errorf("serialport: could not close %s: %v", p.Name, err)
	}
	return nil
}
