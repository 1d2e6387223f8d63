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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/simonvid/simonvid/hardware/preferences"
	"github.com/simonvid/simonvid/prefs"
	"github.com/simonvid/simonvid/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectEquality(t, p.Width.Get().(int), 1280)
	test.ExpectEquality(t, p.Height.Get().(int), 720)
	test.ExpectEquality(t, p.Baud.Get().(int), 115200)

	// dimensions must be positive
	test.ExpectFailure(t, p.Width.Set(0))
	test.ExpectEquality(t, p.Width.Get().(int), 1280)

	// no file so saving does nothing
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Width.Set(640))
	test.ExpectSuccess(t, p.Port.Set("/dev/ttyUSB1"))
	test.DemandSuccess(t, p.Save())

	p, err = preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Width.Get().(int), 640)
	test.ExpectEquality(t, p.Height.Get().(int), 720)
	test.ExpectEquality(t, p.Port.String(), "/dev/ttyUSB1")
}
