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

package pokey

// the source of a channel's output when it underflows
type source int

const (
	sourceNoise source = iota
	sourceSquare
	sourcePoly4
)

// distortion is the decoded form of the upper nibble of an AUDC register
type distortion struct {
	// the output is hardwired on and the waveform has no effect
	volumeOnly bool

	// the output only changes if the 5bit polynomial is high at the moment of
	// underflow
	poly5Gate bool

	source source
}

// distortions is indexed by the upper nibble of AUDC
var distortions [16]distortion

func init() {
	for i := range distortions {
		d := distortion{
			volumeOnly: i&0x01 == 0x01,
			poly5Gate:  i&0x08 == 0x00,
		}
		switch (i >> 1) & 0x03 {
		case 0:
			d.source = sourceNoise
		case 2:
			d.source = sourcePoly4
		default:
			d.source = sourceSquare
		}
		distortions[i] = d
	}
}
