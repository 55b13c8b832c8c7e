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

// the polynomial tables are shared by every instance of the chip and are
// never written to after init()
var poly4bit []uint8
var poly5bit []uint8
var poly9bit []uint8
var poly17bit []uint8

// the polynomial counters of the real chip all advance once per cycle. it is
// enough therefore to count the cycles and index each table with the count
// modulo the length of the table
type polynomials struct {
	// number of cycles since the chip left the initialisation state
	ct uint64

	// whether to use the 9bit polynomial instead of the 17bit. set via the
	// AUDCTL register
	prefer9bit bool
}

func (p *polynomials) reset() {
	p.ct = 0
	p.prefer9bit = false
}

func (p *polynomials) step() {
	p.ct++
}

func (p *polynomials) bit4() uint8 {
	return poly4bit[p.ct%uint64(len(poly4bit))]
}

func (p *polynomials) bit5() uint8 {
	return poly5bit[p.ct%uint64(len(poly5bit))]
}

// noise returns the current bit of either the 9bit or 17bit polynomial
// depending on the AUDCTL selection
func (p *polynomials) noise() uint8 {
	if p.prefer9bit {
		return poly9bit[p.ct%uint64(len(poly9bit))]
	}
	return poly17bit[p.ct%uint64(len(poly17bit))]
}

// from 'Altirra Reference', page 111:
//
// "Eight bits of the shift register are visible to the CPU via RANDOM [...]
// Note that RANDOM reads bits inverted from the shift register itself and the
// bits seen by the audio circuits"
func (p *polynomials) random() uint8 {
	tab := poly17bit
	if p.prefer9bit {
		tab = poly9bit
	}
	n := uint64(len(tab))

	var r uint8
	for i := range uint64(8) {
		r |= tab[(p.ct+i)%n] << i
	}
	return ^r
}

func init() {
	// initialisation sequences taken from the Altirra emulator

	var b uint32

	poly4bit = make([]uint8, (1<<4)-1)
	for i := range poly4bit {
		b = (b >> 1) + (^((b << 2) ^ (b << 3)) & 8)
		poly4bit[i] = uint8(b & 1)
	}

	b = 0
	poly5bit = make([]uint8, (1<<5)-1)
	for i := range poly5bit {
		b = (b >> 1) + (^((b << 2) ^ (b << 4)) & 16)
		poly5bit[i] = uint8(b & 1)
	}

	b = 0
	poly9bit = make([]uint8, (1<<9)-1)
	for i := range poly9bit {
		b = (b >> 1) + (^((b << 8) ^ (b << 3)) & 0x100)
		poly9bit[i] = uint8(b & 1)
	}

	b = 0
	poly17bit = make([]uint8, (1<<17)-1)
	for i := range poly17bit {
		b = (b >> 1) + (^((b << 16) ^ (b << 11)) & 0x10000)
		poly17bit[i] = uint8((b >> 8) & 0x01)
	}
}
