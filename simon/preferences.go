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

package simon

import (
	"time"

	"github.com/simonvid/simonvid/curated"
	"github.com/simonvid/simonvid/paths"
	"github.com/simonvid/simonvid/prefs"
)

// Sentinal errors.
const (
	NegativeCapacity = "simon: capacity cannot be negative (%d)"
	LargeCapacity    = "simon: capacity cannot be more than %d (%d)"
)

// MaxCapacity is the largest sequence capacity allowed.
const MaxCapacity = 1000

// Preferences for the game.
type Preferences struct {
	dsk *prefs.Disk

	// maximum length of the sequence. each round uses two slots
	Capacity prefs.Int

	// time each entry is shown during playback
	Playback prefs.Duration

	// pause after the result of each round is shown
	Feedback prefs.Duration

	// pause before returning to the menu at the end of a game
	Closing prefs.Duration

	// pause after an invalid menu selection
	Invalid prefs.Duration
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Capacity.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(NegativeCapacity, v)
		}
		if v.(int) > MaxCapacity {
			return curated.Errorf(LargeCapacity, MaxCapacity, v)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("simon.capacity", &p.Capacity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("simon.playback", &p.Playback)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("simon.feedback", &p.Feedback)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("simon.closing", &p.Closing)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("simon.invalid", &p.Invalid)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Capacity.Set(20)
	_ = p.Playback.Set(time.Second)
	_ = p.Feedback.Set(time.Second)
	_ = p.Closing.Set(time.Second)
	_ = p.Invalid.Set(500 * time.Millisecond)
}

// Load game preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save game preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
