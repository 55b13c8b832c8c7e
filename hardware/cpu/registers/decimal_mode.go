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

package registers

// AddDecimal adds value to register as though both values are binary coded
// decimal. Returns the new carry state along with the zero, overflow and sign
// flags.
//
// The zero flag is taken from the binary sum. The sign and overflow flags are
// taken from the intermediate result after the low nibble has been adjusted
// but before the high nibble adjustment. This is how the NMOS 6502 behaves.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c uint8
	if carry {
		c = 1
	}

	a := r.value

	lo := (a & 0x0f) + (val & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := uint16(a&0xf0) + uint16(val&0xf0) + uint16(lo)
	seq := (a & 0xf0) + (val & 0xf0) + lo
	bin := a + val + c

	overflow = ((a ^ seq) & (val ^ seq) & 0x80) != 0
	sign = seq&0x80 == 0x80
	zero = bin == 0

	if sum >= 0xa0 {
		sum += 0x60
	}

	r.value = uint8(sum)

	return sum >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both values are
// binary coded decimal. Returns the new carry state along with the zero,
// overflow and sign flags.
//
// All flags are taken from the equivalent binary subtraction. Only the value
// in the register is affected by decimal mode.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int8
	if carry {
		c = 1
	}

	a := r.value

	lo := int8(a&0x0f) - int8(val&0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	sum := int16(a&0xf0) - int16(val&0xf0) + int16(lo)
	if sum < 0 {
		sum -= 0x60
	}

	// flags from binary subtraction
	bin := NewRegister(a, "")
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	r.value = uint8(sum & 0xff)

	return rcarry, zero, overflow, sign
}
