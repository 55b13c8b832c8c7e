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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gophersap/hardware/cpu/execution"
	"github.com/jetsetilly/gophersap/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersap/test"
)

func TestResultString(t *testing.T) {
	defs := instructions.GetDefinitions()

	r := execution.Result{
		Address:         0x2000,
		Defn:            &defs[0xbd],
		ByteCount:       3,
		InstructionData: 0x3000,
		Cycles:          4,
	}
	test.ExpectEquality(t, r.String(), "2000 LDA $3000,X")
	test.ExpectSuccess(t, r.IsValid())

	// branch back by two bytes is a branch to itself
	r = execution.Result{
		Address:         0x2010,
		Defn:            &defs[0xd0],
		ByteCount:       2,
		InstructionData: 0xfe,
		Cycles:          3,
		BranchSuccess:   true,
	}
	test.ExpectEquality(t, r.String(), "2010 BNE $2010")
	test.ExpectSuccess(t, r.IsValid())

	r.Reset()
	test.ExpectEquality(t, r.String(), "0000 ???")
	test.ExpectFailure(t, r.IsValid())
}

func TestResultValidity(t *testing.T) {
	defs := instructions.GetDefinitions()

	// STA abs,X is not page sensitive
	r := execution.Result{
		Defn:      &defs[0x9d],
		ByteCount: 3,
		Cycles:    5,
		PageFault: true,
	}
	test.ExpectFailure(t, r.IsValid())

	// too many cycles for NOP
	r = execution.Result{
		Defn:      &defs[0xea],
		ByteCount: 1,
		Cycles:    3,
	}
	test.ExpectFailure(t, r.IsValid())
}
