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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophersap/hardware/cpu"
	"github.com/jetsetilly/gophersap/test"
)

func TestRunSubroutine(t *testing.T) {
	mc, mem := newCPU(0x0000)

	// LDA #$42; STA $0300; STX $0301; RTS
	mem.putInstructions(0x2000, 0xa9, 0x42, 0x8d, 0x00, 0x03, 0x8e, 0x01, 0x03, 0x60)

	term, err := mc.RunSubroutine(0x2000, cpu.Regs{X: 0x99})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, term, cpu.Terminated)
	test.ExpectEquality(t, mem.internal[0x0300], 0x42)
	test.ExpectEquality(t, mem.internal[0x0301], 0x99)
	test.ExpectSuccess(t, mc.Parked())
	test.ExpectEquality(t, mc.PC.Address(), cpu.Sentinel)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	// a parked CPU can be used to call another routine
	term, _ = mc.RunSubroutine(0x2000, cpu.Regs{X: 0x11})
	test.ExpectEquality(t, term, cpu.Terminated)
	test.ExpectEquality(t, mem.internal[0x0301], 0x11)
}

func TestRunSubroutineFault(t *testing.T) {
	mc, mem := newCPU(0x0000)

	// LDA #$01; KIL
	mem.putInstructions(0x2000, 0xa9, 0x01, 0x02)

	term, err := mc.RunSubroutine(0x2000, cpu.Regs{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, term, cpu.OpcodeFault)
	test.ExpectSuccess(t, mc.Killed)
	test.ExpectEquality(t, term.String(), "opcode fault")

	// a killed CPU is revived by the next call
	mem.putInstructions(0x2100, 0x60)
	term, _ = mc.RunSubroutine(0x2100, cpu.Regs{})
	test.ExpectEquality(t, term, cpu.Terminated)
	test.ExpectFailure(t, mc.Killed)
}

func TestRunSubroutineExhausted(t *testing.T) {
	mc, mem := newCPU(0x0000)

	// JMP $2000
	mem.putInstructions(0x2000, 0x4c, 0x00, 0x20)

	term, err := mc.RunSubroutine(0x2000, cpu.Regs{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, term, cpu.Exhausted)
	test.ExpectFailure(t, mc.Parked())
}

func TestRunInterrupt(t *testing.T) {
	mc, mem := newCPU(0x0000)
	mc.Status.Carry = true

	// INC $80; PHP; PLA; STA $81; RTI
	mem.putInstructions(0x2000, 0xe6, 0x80, 0x08, 0x68, 0x85, 0x81, 0x40)

	term, err := mc.RunInterrupt(0x2000, cpu.Regs{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, term, cpu.Terminated)
	test.ExpectEquality(t, mem.internal[0x80], 0x01)
	test.ExpectSuccess(t, mc.Parked())
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	// interrupts are disabled inside the routine
	test.ExpectEquality(t, mem.internal[0x81]&0x04, 0x04)

	// status register is restored by RTI
	test.ExpectSuccess(t, mc.Status.Carry)

	// the stack holds the status register with the break flag clear
	test.ExpectEquality(t, mem.internal[0x01fd]&0x10, 0x00)
	test.ExpectEquality(t, mem.internal[0x01fe], 0xff)
	test.ExpectEquality(t, mem.internal[0x01ff], 0xff)
}

func TestContext(t *testing.T) {
	mc, mem := newCPU(0x1234)
	mc.A.Load(0x01)
	mc.X.Load(0x02)
	mc.Y.Load(0x03)
	mc.Status.DecimalMode = true

	ctx := mc.Save()

	// INC $10; RTS
	mem.putInstructions(0x2000, 0xe6, 0x10, 0x60)
	term, _ := mc.RunSubroutine(0x2000, cpu.Regs{A: 0xff})
	test.ExpectEquality(t, term, cpu.Terminated)

	mc.Restore(ctx)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.X.Value(), 0x02)
	test.ExpectEquality(t, mc.Y.Value(), 0x03)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.DecimalMode)
	test.ExpectEquality(t, mem.internal[0x10], 0x01)
}
