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

// Package registers implements the three types of registers found in the
// 6502. The most common type is the general 8-bit register, used for the
// accumulator, the index registers and the stack pointer. The other types are
// the 16-bit program counter and the status register.
//
// The registers do not affect the status register directly. Instead, the
// functions that might be expected to affect the status register return the
// information required to set the flags. For example:
//
//	carry, overflow := a.Add(v, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// Decimal mode arithmetic is performed by AddDecimal() and SubtractDecimal().
// The flags returned by these functions match the behaviour of the NMOS 6502
// rather than a mathematically correct BCD result.
package registers
