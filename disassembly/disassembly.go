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
	"io"
	"slices"

	"github.com/jetsetilly/gophersap/hardware"
	"github.com/jetsetilly/gophersap/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersap/hardware/memory/cpubus"
	"github.com/jetsetilly/gophersap/songloader"
)

// EntryPoint is an address from which the flow of the program is followed.
type EntryPoint struct {
	Address uint16
	Label   string
}

// Disassembly is the result of following the flow of a program from one or
// more entry points.
type Disassembly struct {
	entries map[uint16]Entry

	// the flow of the program could not be followed completely. for example,
	// an indirect JMP through a vector that is written by the program
	Incomplete bool
}

// EntryPoints returns the entry points for the player type.
func EntryPoints(md songloader.Metadata) []EntryPoint {
	var ep []EntryPoint

	switch md.Type {
	case songloader.TypeC:
		ep = append(ep, EntryPoint{Address: md.Player + 3, Label: "init"})
		ep = append(ep, EntryPoint{Address: md.Player + 6, Label: "player"})
	default:
		if md.Init != 0 {
			ep = append(ep, EntryPoint{Address: md.Init, Label: "init"})
		}
		if md.Player != 0 {
			ep = append(ep, EntryPoint{Address: md.Player, Label: "player"})
		}
	}

	return ep
}

// FromSession disassembles the program in the memory of the session, from the
// entry points of the loaded song.
func FromSession(ses *hardware.Session) *Disassembly {
	return FromEntryPoints(ses.Mem, EntryPoints(ses.Metadata()))
}

// FromEntryPoints disassembles the program in memory by following the flow of
// the program from each entry point.
func FromEntryPoints(mem Peeker, entryPoints []EntryPoint) *Disassembly {
	dsm := &Disassembly{
		entries: make(map[uint16]Entry),
	}

	for _, ep := range entryPoints {
		dsm.flow(mem, ep.Address)
		if e, ok := dsm.entries[ep.Address]; ok {
			e.Label = ep.Label
			dsm.entries[ep.Address] = e
		}
	}

	return dsm
}

// flow follows the program from the address until every path has reached an
// instruction that has already been seen or an instruction that ends the
// path
func (dsm *Disassembly) flow(mem Peeker, address uint16) {
	pending := []uint16{address}

	for len(pending) > 0 {
		address = pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			if _, ok := dsm.entries[address]; ok {
				break
			}

			e := decode(mem, address)
			e.Level = EntryLevelBlessed
			dsm.entries[address] = e

			defn := e.Result.Defn
			next := address + uint16(defn.Bytes)

			if defn.IsJam() {
				break
			}

			if defn.IsBranch() {
				dest := uint16(int32(next) + int32(int8(e.Result.InstructionData)))
				pending = append(pending, dest)
				address = next
				continue
			}

			switch defn.Operator {
			case instructions.Jmp:
				if defn.AddressingMode == instructions.Indirect {
					v := e.Result.InstructionData
					dest := uint16(mem.Peek(v)) | uint16(mem.Peek((v&0xff00)|((v+1)&0x00ff)))<<8
					if dest == 0x0000 {
						dsm.Incomplete = true
						break
					}
					pending = append(pending, dest)
					break
				}
				pending = append(pending, e.Result.InstructionData)
			case instructions.Jsr:
				pending = append(pending, e.Result.InstructionData)
				address = next
				continue
			case instructions.Brk:
				dest := uint16(mem.Peek(cpubus.IRQ)) | uint16(mem.Peek(cpubus.IRQ+1))<<8
				pending = append(pending, dest)
			case instructions.Rts, instructions.Rti:
			default:
				address = next
				continue
			}

			break
		}
	}
}

// Entries returns the disassembled entries in address order.
func (dsm *Disassembly) Entries() []Entry {
	entries := make([]Entry, 0, len(dsm.entries))
	for _, e := range dsm.entries {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return int(a.Result.Address) - int(b.Result.Address)
	})
	return entries
}

// Get returns the entry at the address.
func (dsm *Disassembly) Get(address uint16) (Entry, bool) {
	e, ok := dsm.entries[address]
	return e, ok
}

// Write the disassembly to the writer. A blank line separates entries that
// are not contiguous.
func (dsm *Disassembly) Write(output io.Writer) error {
	var next uint16
	for i, e := range dsm.Entries() {
		if i > 0 && e.Result.Address != next {
			if _, err := io.WriteString(output, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return err
		}
		next = e.Result.Address + uint16(e.Result.Defn.Bytes)
	}
	return nil
}
