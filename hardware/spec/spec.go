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

// Package spec contains the timing specifications of the PAL and NTSC
// variants of the Atari 8-bit computers.
package spec

// ClksScanline is the number of CPU cycles in a scanline. The value is the
// same for PAL and NTSC.
const ClksScanline = 114

// ActiveScanlines is the number of scanlines before the vertical blank. The
// ANTIC raises the VBI on the same scanline for PAL and NTSC.
const ActiveScanlines = 248

// Spec is the timing of a television standard.
type Spec struct {
	ID string

	// total number of scanlines in a frame
	Scanlines int

	// CPU clock in Hz
	CPUClock int

	// the number of frames per second
	FramesPerSecond int
}

// BlankScanlines returns the number of scanlines in the vertical blank.
func (s Spec) BlankScanlines() int {
	return s.Scanlines - ActiveScanlines
}

// ClksFrame returns the number of CPU cycles in a frame.
func (s Spec) ClksFrame() int {
	return s.Scanlines * ClksScanline
}

func (s Spec) String() string {
	return s.ID
}

// PAL is the specification used by SAP files unless the NTSC directive is
// present.
var PAL = Spec{
	ID:              "PAL",
	Scanlines:       312,
	CPUClock:        1773447,
	FramesPerSecond: 50,
}

// NTSC is the specification used by SAP files with the NTSC directive.
var NTSC = Spec{
	ID:              "NTSC",
	Scanlines:       262,
	CPUClock:        1789772,
	FramesPerSecond: 60,
}
