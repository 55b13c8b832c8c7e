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

// Package playmode plays a song through the host's audio device. Playback is
// controlled from the keyboard:
//
//	n       next song
//	p       previous song
//	0 to 9  select song directly
//	space   pause and resume
//	q       quit
//
// The audio device is one of the backends in the output directory. Backends
// pull samples from an io.Reader provided by the playmode package. The
// reader renders audio from the session on demand.
package playmode
