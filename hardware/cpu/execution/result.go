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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersap/hardware/cpu/instructions"
)

// Bug is a known hardware bug in the 6502 that was triggered by an instruction.
type Bug string

// List of known bugs.
const (
	NoBug                    Bug = ""
	JmpIndirectAddressingBug Bug = "indirect addressing bug"
	UnstableHighByte         Bug = "unstable high byte"
)

// Result records the state/result of the most recently executed instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition. nil if no instruction has been decoded
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction. for branch instructions it is the
	// offset value
	InstructionData uint16

	// the number of cycles taken by the instruction. usually the same as
	// Defn.Cycles but page faults and branches may add to this value
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the instruction data formatted for the addressing mode of
// the instruction.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		// branch destination is relative to the address of the next instruction
		dest := uint16(int32(r.Address) + 2 + int32(int8(r.InstructionData)))
		return fmt.Sprintf("$%04x", dest)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	return ""
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic))
	if o := r.Operand(); o != "" {
		s.WriteString(" ")
		s.WriteString(o)
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" [%s]", r.CPUBug))
	}
	return s.String()
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Defn == nil {
		return fmt.Errorf("cpu: no instruction decoded")
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsJam() {
		return nil
	}

	if r.PageFault && !r.Defn.PageSensitive {
		return fmt.Errorf("cpu: unexpected page fault for %s", r.Defn.Mnemonic)
	}

	// the maximum number of cycles is the defined number plus one for a page
	// fault and, in the case of branches, one more for a successful branch
	maxCycles := r.Defn.Cycles
	if r.Defn.PageSensitive {
		maxCycles++
	}
	if r.Defn.IsBranch() {
		maxCycles++
	}
	if r.Cycles < r.Defn.Cycles || r.Cycles > maxCycles {
		return fmt.Errorf("cpu: number of cycles (%d) out of range for %s (%d to %d)", r.Cycles, r.Defn.Mnemonic, r.Defn.Cycles, maxCycles)
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return fmt.Errorf("cpu: branch success for non-branch instruction %s", r.Defn.Mnemonic)
	}

	return nil
}
