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

// Package environment bundles the context of a playback session. The random
// number source, the preferences and the permission to log are all reached
// through the Environment type.
package environment

import (
	"github.com/jetsetilly/gophersap/hardware/preferences"
	"github.com/jetsetilly/gophersap/random"
)

// Label is used to name the environment
type Label string

// MainSession is the label of the session used for audible playback. Sessions
// with other labels are used for rendering and comparison.
const MainSession = Label("")

// Environment is used to provide context for a playback session. Particularly
// useful when using more than one session at once, as the COMPARE mode does.
type Environment struct {
	Label Label

	// any randomisation required by the session should be retreived through
	// this structure
	Random *random.Random

	// the playback preferences
	Prefs *preferences.Preferences

	// logging is suppressed if this is true
	Quiet bool
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The clock argument can be nil and plumbed in later with Random.Plumb(). In
// the case of the prefs argument, if it is nil then a new Preferences instance
// will be created. Providing a non-nil value allows the preferences of more
// than one session to be synchronised.
func NewEnvironment(clock random.Clock, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Random: random.NewRandom(clock),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs
	env.Random.ZeroSeed = !prefs.RandomState.Get().(bool)

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run of the
// test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainSession returns true if the environment is intended for the audible
// playback session
func (env *Environment) IsMainSession() bool {
	return env.Label == MainSession
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.Quiet
}
