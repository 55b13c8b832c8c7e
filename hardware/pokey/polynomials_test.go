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

import (
	"testing"

	"github.com/jetsetilly/gophersap/test"
)

func TestPoynomialsLength(t *testing.T) {
	// from 'Altirra Reference", page 110:
	//
	// "As maximal-length generators, each N-bit generator has a period of 2N – 1, so the 4-bit
	// generator repeats every 15 bits, and the 9 bit generator every 511 bits."
	test.ExpectEquality(t, len(poly4bit), 15)
	test.ExpectEquality(t, len(poly5bit), 31)
	test.ExpectEquality(t, len(poly9bit), 511)
	test.ExpectEquality(t, len(poly17bit), 131071)
}

func TestPoynomialsPeriod(t *testing.T) {
	// a table of the correct length might still repeat with a shorter
	// period. a shorter period must divide the length of the table
	periodic := func(b []uint8, k int) bool {
		for i := range b {
			if b[i] != b[(i+k)%len(b)] {
				return false
			}
		}
		return true
	}

	for _, b := range [][]uint8{poly4bit, poly5bit, poly9bit, poly17bit} {
		for k := 1; k < len(b); k++ {
			if len(b)%k != 0 {
				continue
			}
			if periodic(b, k) {
				t.Errorf("table of length %d repeats every %d bits", len(b), k)
			}
		}
		test.ExpectSuccess(t, periodic(b, len(b)))
	}
}

func TestPoynomialsBiasCheck(t *testing.T) {
	// the generator patterns have one more 0 bit than 1 bit
	biasCheck := func(t *testing.T, b []uint8) bool {
		t.Helper()

		var ct int
		for _, v := range b {
			if v == 0 {
				ct++
			}
		}
		return ct == (len(b)/2)+1
	}

	test.ExpectSuccess(t, biasCheck(t, poly4bit))
	test.ExpectSuccess(t, biasCheck(t, poly5bit))
	test.ExpectSuccess(t, biasCheck(t, poly9bit))
	test.ExpectSuccess(t, biasCheck(t, poly17bit))
}

func TestPolynomialsCounter(t *testing.T) {
	var p polynomials
	p.reset()

	// the tables repeat with their length
	first := p.bit4()
	for range len(poly4bit) {
		p.step()
	}
	test.ExpectEquality(t, p.bit4(), first)

	p.reset()
	p.prefer9bit = true
	a := p.random()
	for range len(poly9bit) {
		p.step()
	}
	test.ExpectEquality(t, p.random(), a)
}
