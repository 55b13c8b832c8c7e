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

import "fmt"

// the clock and linking of a pair of channels. the first channel of a pair
// (channel 0 or channel 2) is the low byte when the pair is linked
type linkMode int

const (
	linkNone linkMode = iota
	linkFast
	link16
	link16Fast
)

func (l linkMode) String() string {
	switch l {
	case linkNone:
		return "none"
	case linkFast:
		return "1.79MHz"
	case link16:
		return "16bit"
	case link16Fast:
		return "16bit 1.79MHz"
	}
	return "unknown"
}

// AUDCTL bits that concern the clocking and linking of channels
const (
	audctl15Khz    = 0x01
	audctlFilter1  = 0x02
	audctlFilter0  = 0x04
	audctlLink23   = 0x08
	audctlLink01   = 0x10
	audctlFast2    = 0x20
	audctlFast0    = 0x40
	audctlPoly9bit = 0x80
)

// the number of cycles in a tick of the base clock
const (
	base64Khz = 28
	base15Khz = 114
)

// variant is the linking of both pairs of channels
type variant struct {
	pairs [2]linkMode
}

func (v variant) String() string {
	return fmt.Sprintf("(0,1) %s; (2,3) %s", v.pairs[0], v.pairs[1])
}

// variants is indexed by variantIndex()
var variants [16]variant

// variantIndex packs the four AUDCTL bits that select the link variant
func variantIndex(audctl uint8) int {
	var idx int
	if audctl&audctlFast0 == audctlFast0 {
		idx |= 0x01
	}
	if audctl&audctlLink01 == audctlLink01 {
		idx |= 0x02
	}
	if audctl&audctlFast2 == audctlFast2 {
		idx |= 0x04
	}
	if audctl&audctlLink23 == audctlLink23 {
		idx |= 0x08
	}
	return idx
}

func init() {
	for i := range variants {
		for p := range 2 {
			bits := (i >> (p * 2)) & 0x03
			variants[i].pairs[p] = linkMode(bits)
		}
	}
}

// periods returns the number of cycles between underflows for each of the
// four channels. base is the number of cycles in a tick of the base clock
func (v variant) periods(audf [4]uint8, base int) [4]int {
	var p [4]int

	for pair, mode := range v.pairs {
		lo := int(audf[pair*2])
		hi := int(audf[pair*2+1])

		// from 'Altirra Reference', page 104
		//
		// "For timers running at 1.8MHz with AUDFx = N, the period of the timer is N+4 cycles."
		//
		// for linked timers the delay is +7 and the low channel's counter
		// runs through all 256 values before clocking the high channel
		switch mode {
		case linkNone:
			p[pair*2] = (lo + 1) * base
			p[pair*2+1] = (hi + 1) * base
		case linkFast:
			p[pair*2] = lo + 4
			p[pair*2+1] = (hi + 1) * base
		case link16:
			p[pair*2] = 256 * base
			p[pair*2+1] = (((hi << 8) | lo) + 1) * base
		case link16Fast:
			p[pair*2] = 256
			p[pair*2+1] = ((hi << 8) | lo) + 7
		}
	}

	return p
}

// isLinked returns true if the channel is the high byte of a 16bit timer
func (v variant) isLinked(ch int) bool {
	m := v.pairs[ch/2]
	return ch%2 == 1 && (m == link16 || m == link16Fast)
}
