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

// Package hardware is the base package for the SAP playback engine. The
// Session type contains the memory, the CPU, the two POKEY chips and the
// driver for the player type of the loaded song.
//
// The Session is driven by the host in the following order:
//
//	ses, _ := hardware.NewSession(env)
//	md, _ := ses.Load(songloader.NewLoader("songs/tune.sap"))
//	_ = ses.SelectSong(md.DefSong)
//	for {
//		_ = ses.RenderBuffer(buffer, len(buffer)/2)
//	}
//
// Frames are run only when they are needed to satisfy a call to
// RenderBuffer(). The number of scanlines in a frame depends on the television
// specification of the song or on the FASTPLAY directive if it is present.
//
// The Session is not safe for concurrent use.
package hardware
