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

package preferences

import (
	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/paths"
	"github.com/simonvid/simonvid/prefs"
)

// TestPatternCell is the cell lit by the test pattern drawn when the board
// is initialised.
const TestPatternCell = 1

// Sentinal errors.
const (
	BadDimension = "hardware: bad display dimension (%d)"
)

// Preferences defines and collates all the preference values used by the
// board devices.
type Preferences struct {
	dsk *prefs.Disk

	// size of host display windows and headless frame buffers
	Width  prefs.Int
	Height prefs.Int

	// serial line
	Port prefs.String
	Baud prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but with a specific
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := NewDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.port", &p.Port)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.baud", &p.Baud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaults returns preferences with default values that are not
// associated with a file on disk. Load() and Save() do nothing.
func NewDefaults() *Preferences {
	p := &Preferences{}

	dimension := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(BadDimension, v)
		}
		return nil
	}
	p.Width.SetHookPre(dimension)
	p.Height.SetHookPre(dimension)

	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Width.Set(1280)
	_ = p.Height.Set(720)
	_ = p.Port.Set("")
	_ = p.Baud.Set(115200)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
