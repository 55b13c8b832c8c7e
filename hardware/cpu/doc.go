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

// Package cpu emulates the NMOS 6502 microprocessor as found in the Atari
// 8-bit computers. Like all 8-bit processors of the era, the 6502 executes
// instructions according to the single byte value read from an address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The instruction definition for that
// opcode is then used to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface. All
// memory access goes through that interface, which is how the POKEY registers
// are reached.
//
// The emulation is instruction accurate rather than cycle accurate. The Step()
// function executes one instruction and returns the number of cycles that
// instruction would have taken on real hardware:
//
//	mc := cpu.NewCPU(nil, mem)
//	mc.Reset()
//	mc.PC.Load(0x2000)
//
//	for {
//		cycles, err := mc.Step()
//		...
//	}
//
// The RunSubroutine() function calls a routine in memory and runs it until it
// returns. Player routines in SAP files are invoked in this way.
//
// All 256 opcodes are emulated, including the undocumented opcodes. The
// decimal mode flags follow the NMOS behaviour. A KIL opcode puts the CPU
// into the Killed state and from then on every call to Step() returns
// HangCycles.
package cpu
