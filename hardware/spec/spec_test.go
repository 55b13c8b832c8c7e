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

package spec_test

import (
	"testing"

	"github.com/jetsetilly/gophersap/hardware/spec"
	"github.com/jetsetilly/gophersap/test"
)

func TestSpec(t *testing.T) {
	test.ExpectEquality(t, spec.PAL.BlankScanlines(), 64)
	test.ExpectEquality(t, spec.NTSC.BlankScanlines(), 14)
	test.ExpectEquality(t, spec.PAL.ClksFrame(), 35568)

	// the PAL CPU clock divided by the number of cycles in a frame is very
	// close to the frame rate
	fps := float64(spec.PAL.CPUClock) / float64(spec.PAL.ClksFrame())
	test.ExpectApproximate(t, fps, float64(spec.PAL.FramesPerSecond), 0.1)

	fps = float64(spec.NTSC.CPUClock) / float64(spec.NTSC.ClksFrame())
	test.ExpectApproximate(t, fps, float64(spec.NTSC.FramesPerSecond), 0.1)
}
