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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gophersap/prefs"
	"github.com/jetsetilly/gophersap/resources"
)

// Preferences defines and collates all the preference values used by the
// playback engine.
type Preferences struct {
	dsk *prefs.Disk

	// the rate at which the POKEY output is downsampled. this is the sample
	// rate of the PCM stream produced by the session
	SampleRate prefs.Int

	// apply the one-pole low-pass filter to the POKEY output
	LowPass prefs.Bool

	// values read from the RANDOM register will be different on every
	// playback. if false then the values are predictable
	RandomState prefs.Bool

	// amount of separation between the left and right channels of a stereo
	// song. a value of 1.0 is full separation and 0.0 is mono
	StereoSeparation prefs.Float
}

// the range of sample rates that are accepted
const (
	minSampleRate = 8000
	maxSampleRate = 192000
)

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		r := v.(int)
		if r < minSampleRate || r > maxSampleRate {
			return fmt.Errorf("preferences: sample rate must be between %d and %d", minSampleRate, maxSampleRate)
		}
		return nil
	})

	p.StereoSeparation.SetHookPre(func(v prefs.Value) error {
		s := v.(float64)
		if s < 0.0 || s > 1.0 {
			return fmt.Errorf("preferences: stereo separation must be between 0.0 and 1.0")
		}
		return nil
	})

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.lowpass", &p.LowPass)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.stereoseparation", &p.StereoSeparation)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.SampleRate.Set(44100)
	_ = p.LowPass.Set(true)
	_ = p.RandomState.Set(false)
	_ = p.StereoSeparation.Set(1.0)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
