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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gophersap/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersap/test"
)

func TestDefinitionsIndex(t *testing.T) {
	defs := instructions.GetDefinitions()
	for i, d := range defs {
		test.DemandEquality(t, int(d.OpCode), i)
		test.ExpectSuccess(t, d.Mnemonic != "")
	}
}

func TestJamInstructions(t *testing.T) {
	jams := []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2}

	var ct int
	for _, d := range instructions.GetDefinitions() {
		if d.IsJam() {
			ct++
		}
	}
	test.ExpectEquality(t, ct, len(jams))

	defs := instructions.GetDefinitions()
	for _, op := range jams {
		test.ExpectSuccess(t, defs[op].IsJam())
	}
}

func TestDefinitionBytes(t *testing.T) {
	for _, d := range instructions.GetDefinitions() {
		switch d.AddressingMode {
		case instructions.Implied:
			test.ExpectEquality(t, d.Bytes, 1)
		case instructions.Absolute, instructions.Indirect, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
			test.ExpectEquality(t, d.Bytes, 3)
		default:
			test.ExpectEquality(t, d.Bytes, 2)
		}
	}
}

func TestBranches(t *testing.T) {
	var ct int
	for _, d := range instructions.GetDefinitions() {
		if d.IsBranch() {
			ct++
			test.ExpectSuccess(t, d.PageSensitive)
		}
	}
	test.ExpectEquality(t, ct, 8)
}

func TestUndocumented(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.ExpectSuccess(t, defs[0xa7].IsUndocumented())
	test.ExpectSuccess(t, defs[0xeb].IsUndocumented())
	test.ExpectFailure(t, defs[0xe9].IsUndocumented())
	test.ExpectFailure(t, defs[0xea].IsUndocumented())
	test.ExpectSuccess(t, defs[0x1a].IsUndocumented())
}
