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

// Package prefs facilitates the storage of preference values on disk.
//
// The types Bool, Int, Float and String wrap a value of the corresponding Go
// type. Hooks can be attached to each value with SetHookPre() and
// SetHookPost(). A pre hook that returns an error prevents the value from
// changing.
//
// Values are associated with a key by adding them to a Disk instance. The
// Save() and Load() functions of the Disk type write and read the values to
// the named file. A preferences file can be shared by many Disk instances:
// Save() preserves any entries it does not know about.
//
// Preference values can also be overridden from the command line with
// PushCommandLineStack(). The string is a list of key/value pairs separated
// by semi-colons, for example:
//
//	hardware.samplerate::48000; hardware.lowpass::false
//
// A value in the command line stack is applied when the key is added to a
// Disk instance.
package prefs
