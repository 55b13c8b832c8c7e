// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package preferences_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gophersap/hardware/preferences"
	"github.com/jetsetilly/gophersap/test"
)

// preferences are written to the portable resource path inside a temporary
// directory
func portable(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gophersap", 0700))
}

func TestDefaults(t *testing.T) {
	portable(t)

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)
	test.ExpectEquality(t, p.LowPass.Get().(bool), true)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.StereoSeparation.Get().(float64), 1.0)
}

func TestRange(t *testing.T) {
	portable(t)

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.SampleRate.Set(100))
	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)
	test.ExpectSuccess(t, p.SampleRate.Set(48000))
	test.ExpectEquality(t, p.SampleRate.Get().(int), 48000)

	test.ExpectFailure(t, p.StereoSeparation.Set(1.5))
	test.ExpectSuccess(t, p.StereoSeparation.Set(0.5))
}

func TestSaveAndLoad(t *testing.T) {
	portable(t)

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.SampleRate.Set(22050))
	test.DemandSuccess(t, p.LowPass.Set(false))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SampleRate.Get().(int), 22050)
	test.ExpectEquality(t, q.LowPass.Get().(bool), false)

	q.SetDefaults()
	test.ExpectEquality(t, q.SampleRate.Get().(int), 44100)
}
