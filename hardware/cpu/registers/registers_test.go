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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophersap/hardware/cpu/registers"
	"github.com/jetsetilly/gophersap/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Label(), "test")

	// addition with carry out
	r8.Load(0xff)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)

	// addition with carry in that results in the same value
	r8.Load(0x10)
	carry, _ = r8.Add(0xff, true)
	test.ExpectEquality(t, r8.Value(), 0x10)
	test.ExpectSuccess(t, carry)

	// signed overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r8.IsNegative())

	// subtraction. carry set means no borrow
	r8.Load(0x05)
	carry, _ = r8.Subtract(0x03, true)
	test.ExpectEquality(t, r8.Value(), 0x02)
	test.ExpectSuccess(t, carry)

	r8.Load(0x05)
	carry, _ = r8.Subtract(0x06, true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectFailure(t, carry)

	r8.Load(0x80)
	_, overflow = r8.Subtract(0x01, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectSuccess(t, overflow)

	// logical operators
	r8.Load(0xf0)
	r8.AND(0x3c)
	test.ExpectEquality(t, r8.Value(), 0x30)
	r8.ORA(0x03)
	test.ExpectEquality(t, r8.Value(), 0x33)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xcc)
	test.ExpectSuccess(t, r8.IsBitV())

	// shifts and rotates
	r8.Load(0x81)
	test.ExpectSuccess(t, r8.ASL())
	test.ExpectEquality(t, r8.Value(), 0x02)
	test.ExpectFailure(t, r8.LSR())
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectSuccess(t, r8.ROR(true))
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectSuccess(t, r8.ROL(false))
	test.ExpectEquality(t, r8.Value(), 0x00)
}

func TestDecimalMode(t *testing.T) {
	var rcarry, zero, overflow, sign bool

	r8 := registers.NewRegister(0x05, "test")
	rcarry, _, _, _ = r8.AddDecimal(0x05, false)
	test.ExpectEquality(t, r8.Value(), 0x10)
	test.ExpectFailure(t, rcarry)

	r8.Load(0x58)
	rcarry, _, _, _ = r8.AddDecimal(0x46, true)
	test.ExpectEquality(t, r8.Value(), 0x05)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x99)
	rcarry, zero, _, _ = r8.AddDecimal(0x01, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)

	// the zero flag comes from the binary sum (0x9a) and not the decimal
	// result
	test.ExpectFailure(t, zero)

	// the sign and overflow flags come from the intermediate result. 0x79 +
	// 0x01 is 0x7a in binary which is adjusted to 0x80 before the high
	// nibble is corrected
	r8.Load(0x79)
	_, _, overflow, sign = r8.AddDecimal(0x01, false)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, sign)

	// subtraction
	r8.Load(0x10)
	rcarry, _, _, _ = r8.SubtractDecimal(0x01, true)
	test.ExpectEquality(t, r8.Value(), 0x09)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x46)
	rcarry, _, _, _ = r8.SubtractDecimal(0x12, true)
	test.ExpectEquality(t, r8.Value(), 0x34)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x40)
	rcarry, _, _, _ = r8.SubtractDecimal(0x13, false)
	test.ExpectEquality(t, r8.Value(), 0x26)
	test.ExpectSuccess(t, rcarry)

	r8.Load(0x00)
	rcarry, zero, _, sign = r8.SubtractDecimal(0x01, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)
	test.ExpectFailure(t, zero)
	test.ExpectSuccess(t, sign)

	r8.Load(0x21)
	_, zero, _, _ = r8.SubtractDecimal(0x21, true)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, zero)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x10fe)
	test.ExpectFailure(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), 0x10ff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), 0x1100)

	test.ExpectSuccess(t, pc.AddRelative(0xfe))
	test.ExpectEquality(t, pc.Address(), 0x10fe)
	test.ExpectFailure(t, pc.AddRelative(0x01))
	test.ExpectEquality(t, pc.Address(), 0x10ff)

	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0x0000)
	test.ExpectEquality(t, pc.String(), "0000")
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.String(), "sv-bdizc")
	test.ExpectEquality(t, sr.Value(), 0x20)

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)

	sr.Reset()
	sr.Carry = true
	sr.Sign = true
	test.ExpectEquality(t, sr.String(), "Sv-bdizC")
	test.ExpectEquality(t, sr.Value(), 0xa1)
}
