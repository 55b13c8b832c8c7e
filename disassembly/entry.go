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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersap/hardware/cpu/execution"
	"github.com/jetsetilly/gophersap/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersap/hardware/memory/addresses"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is a valid
// instruction. Blessed entries have been reached by following the flow of the
// program from an entry point.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the decoded instruction. the Cycles field is the number of cycles given
	// by the definition, without any page fault or branch penalty
	Result execution.Result

	// the bytes of the instruction formatted as hex pairs
	Bytes string

	// label for the address if it is an entry point
	Label string
}

func (e Entry) String() string {
	s := strings.Builder{}
	if e.Label != "" {
		s.WriteString(fmt.Sprintf("%s:\n", e.Label))
	}
	s.WriteString(fmt.Sprintf("  %-10s %s", e.Bytes, e.Result.String()))
	if sym := e.Symbol(); sym != "" {
		s.WriteString(fmt.Sprintf(" ; %s", sym))
	}
	return s.String()
}

// Symbol returns the name of the hardware register referred to by the
// instruction's operand. Returns the empty string if the operand is not a
// hardware register.
func (e Entry) Symbol() string {
	defn := e.Result.Defn
	if defn == nil {
		return ""
	}

	switch defn.AddressingMode {
	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
	default:
		return ""
	}

	write := defn.Effect == instructions.Write
	sym, ok := addresses.Symbol(e.Result.InstructionData, write)
	if !ok && defn.Effect == instructions.RMW {
		sym, ok = addresses.Symbol(e.Result.InstructionData, true)
	}
	if !ok {
		return ""
	}
	return sym
}

// Peeker is the interface to the memory being disassembled. Reading memory
// must not have side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// decode the instruction at the address
func decode(mem Peeker, address uint16) Entry {
	defn := &instructions.GetDefinitions()[mem.Peek(address)]

	e := Entry{
		Result: execution.Result{
			Address:   address,
			Defn:      defn,
			ByteCount: defn.Bytes,
			Cycles:    defn.Cycles,
		},
	}

	b := make([]string, 0, 3)
	for i := range defn.Bytes {
		b = append(b, fmt.Sprintf("%02x", mem.Peek(address+uint16(i))))
	}
	e.Bytes = strings.Join(b, " ")

	switch defn.Bytes {
	case 2:
		e.Result.InstructionData = uint16(mem.Peek(address + 1))
	case 3:
		e.Result.InstructionData = uint16(mem.Peek(address+1)) | uint16(mem.Peek(address+2))<<8
	}

	return e
}

// Linear decodes count instructions starting at the origin address. Each
// instruction is assumed to follow on from the previous instruction.
func Linear(mem Peeker, origin uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	address := origin
	for range count {
		e := decode(mem, address)
		entries = append(entries, e)
		address += uint16(e.Result.Defn.Bytes)
	}
	return entries
}
