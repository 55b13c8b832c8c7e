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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gophersap/environment"
	"github.com/jetsetilly/gophersap/hardware/cpu/execution"
	"github.com/jetsetilly/gophersap/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersap/hardware/cpu/registers"
	"github.com/jetsetilly/gophersap/hardware/memory/cpubus"
)

// HangCycles is the number of cycles reported by Step() for a KIL
// instruction or for any instruction while the CPU is in the Killed state.
// The value is larger than any legitimate instruction.
const HangCycles = 0xff

// InterruptCycles is the number of cycles taken to service an interrupt.
const InterruptCycles = 7

// the page in which the stack is found
const stackPage = uint16(0x0100)

// CPU implements the NMOS 6502. Register logic is implemented by the Register
// type in the registers sub-package.
type CPU struct {
	env *environment.Environment

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions *[256]instructions.Definition

	// the result of the most recent call to Step()
	LastResult execution.Result

	// the cpu has encounted a KIL instruction. requires a Reset() or a new
	// call to RunSubroutine()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// environment can be nil.
func NewCPU(env *environment.Environment, mem cpubus.Memory) *CPU {
	mc := &CPU{
		env:          env,
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0, "SP"),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. The stack pointer is set to 0xff and
// interrupts are disabled. The PC is set to zero.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
}

// LoadPCIndirect loads the contents of the vector into the PC.
func (mc *CPU) LoadPCIndirect(vector uint16) error {
	address, err := mc.read16Bit(vector)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit reads two consecutive bytes. the high byte wraps around the end
// of memory
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// read16BitZeroPage reads two consecutive bytes from zero page. the high
// byte wraps around to the beginning of zero page
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.mem.Read(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// read the next byte in the program and advance the PC
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// read the next two bytes in the program and advance the PC
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(stackPage|mc.SP.Address(), value)
	if err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 1)
	return nil
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8Bit(stackPage | mc.SP.Address())
}

func (mc *CPU) push16(value uint16) error {
	if err := mc.push(uint8(value >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(value))
}

func (mc *CPU) pull16() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// set the zero and sign flags according to the value
func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

// compare the register with the value as though by subtraction
func (mc *CPU) compare(r registers.Register, v uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(v, true)
	mc.setZN(mc.acc8.Value())
}

func (mc *CPU) adc(v uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) sbc(v uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

// arr is the undocumented AND followed by ROR. the flags are set unusually
// and are different again in decimal mode
func (mc *CPU) arr(v uint8) {
	t := mc.A.Value() & v
	r := t >> 1
	if mc.Status.Carry {
		r |= 0x80
	}

	if !mc.Status.DecimalMode {
		mc.A.Load(r)
		mc.setZN(r)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r&0x40 == 0x40) != (r&0x20 == 0x20)
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = r == 0
	mc.Status.Overflow = (r^t)&0x40 == 0x40

	if (t&0x0f)+(t&0x01) > 0x05 {
		r = (r & 0xf0) | ((r + 0x06) & 0x0f)
	}
	if uint16(t&0xf0)+uint16(t&0x10) > 0x50 {
		r += 0x60
		mc.Status.Carry = true
	} else {
		mc.Status.Carry = false
	}

	mc.A.Load(r)
}

// branch if the flag is true. the offset has already been read
func (mc *CPU) branch(flag bool, offset uint8) {
	if !flag {
		return
	}

	mc.LastResult.BranchSuccess = true
	mc.LastResult.Cycles++

	if mc.PC.AddRelative(offset) {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
}

// Step executes the next instruction in the program and returns the number
// of cycles taken by the instruction. Page fault and branch penalties are
// included in the count.
//
// If the CPU is in the Killed state then nothing is executed and HangCycles
// is returned.
func (mc *CPU) Step() (int, error) {
	if mc.Killed {
		return HangCycles, nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	defn := &mc.instructions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// base is the address before indexing
	var base uint16

	// value is read from the program for immediate mode and from memory for
	// read and read-modify-write instructions
	var value uint8

	// the addressing mode has placed the address on another page
	var pageFault bool

	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes

	case instructions.Immediate, instructions.Relative:
		value, err = mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = address

	case instructions.ZeroPage:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		address = uint16(v)
		mc.LastResult.InstructionData = address

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		indirect, err := mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = indirect

		if indirect&0x00ff == 0x00ff {
			// the high byte of the JMP address is read from the start of the
			// same page rather than the start of the next page
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
			lo, err := mc.read8Bit(indirect)
			if err != nil {
				return 0, err
			}
			hi, err := mc.read8Bit(indirect & 0xff00)
			if err != nil {
				return 0, err
			}
			address = uint16(hi)<<8 | uint16(lo)
		} else {
			address, err = mc.read16Bit(indirect)
			if err != nil {
				return 0, err
			}
		}

	case instructions.IndexedIndirect: // x indexing
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(v)

		// the indexed address wraps around zero page
		address, err = mc.read16BitZeroPage(v + mc.X.Value())
		if err != nil {
			return 0, err
		}

	case instructions.IndirectIndexed: // y indexing
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(v)

		base, err = mc.read16BitZeroPage(v)
		if err != nil {
			return 0, err
		}
		address = base + mc.Y.Address()
		pageFault = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedX:
		base, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = base
		address = base + mc.X.Address()
		pageFault = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		base, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = base
		address = base + mc.Y.Address()
		pageFault = base&0xff00 != address&0xff00

	case instructions.ZeroPageIndexedX:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(v)
		address = uint16(v + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(v)
		address = uint16(v + mc.Y.Value())

	default:
		return 0, fmt.Errorf("cpu: unknown addressing mode for %s", defn.Mnemonic)
	}

	// page faults only cost an extra cycle for read instructions. branches
	// are dealt with separately
	if pageFault && defn.PageSensitive {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	// read value from memory for instructions that need it
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.read8Bit(address)
			if err != nil {
				return 0, err
			}
		}
	}

	// the undocumented store instructions AND their value with the high byte
	// of the base address plus one
	storeHi := uint8(base>>8) + 1

	switch defn.Operator {
	case instructions.Nop, instructions.NOP:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		err = mc.push(mc.A.Value())
	case instructions.Php:
		// the break flag is always set in the pushed value
		err = mc.push(mc.Status.Value() | 0x10)
	case instructions.Pla:
		value, err = mc.pull()
		mc.A.Load(value)
		mc.setZN(value)
	case instructions.Plp:
		value, err = mc.pull()
		mc.Status.FromValue(value)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(value)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(value)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(value)

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())
	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())
	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())
	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())

	case instructions.Adc:
		mc.adc(value)
	case instructions.Sbc, instructions.SBC:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		r := &mc.A
		if defn.AddressingMode != instructions.Implied {
			mc.acc8.Load(value)
			r = &mc.acc8
		}
		switch defn.Operator {
		case instructions.Asl:
			mc.Status.Carry = r.ASL()
		case instructions.Lsr:
			mc.Status.Carry = r.LSR()
		case instructions.Rol:
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		case instructions.Ror:
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		}
		mc.setZN(r.Value())
		if r == &mc.acc8 {
			err = mc.write8Bit(address, r.Value())
		}

	case instructions.Inc:
		value++
		mc.setZN(value)
		err = mc.write8Bit(address, value)
	case instructions.Dec:
		value--
		mc.setZN(value)
		err = mc.write8Bit(address, value)
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setZN(mc.Y.Value())

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)
	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)
	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)
	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		// the address pushed onto the stack is the address of the last byte
		// of the JSR instruction
		err = mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.Rts:
		var rts uint16
		rts, err = mc.pull16()
		mc.PC.Load(rts + 1)

	case instructions.Brk:
		// BRK skips the byte after the opcode
		mc.PC.Add(1)
		err = mc.push16(mc.PC.Address())
		if err == nil {
			err = mc.push(mc.Status.Value() | 0x10)
		}
		if err == nil {
			mc.Status.InterruptDisable = true
			err = mc.LoadPCIndirect(cpubus.IRQ)
		}

	case instructions.Rti:
		value, err = mc.pull()
		if err == nil {
			mc.Status.FromValue(value)
			var rti uint16
			rti, err = mc.pull16()
			mc.PC.Load(rti)
		}

	// undocumented instructions
	case instructions.LAX:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.SAX:
		err = mc.write8Bit(address, mc.A.Value()&mc.X.Value())

	case instructions.DCP:
		value--
		err = mc.write8Bit(address, value)
		mc.compare(mc.A, value)

	case instructions.ISC:
		value++
		err = mc.write8Bit(address, value)
		mc.sbc(value)

	case instructions.SLO:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		err = mc.write8Bit(address, mc.acc8.Value())
		mc.A.ORA(mc.acc8.Value())
		mc.setZN(mc.A.Value())

	case instructions.RLA:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		err = mc.write8Bit(address, mc.acc8.Value())
		mc.A.AND(mc.acc8.Value())
		mc.setZN(mc.A.Value())

	case instructions.SRE:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		err = mc.write8Bit(address, mc.acc8.Value())
		mc.A.EOR(mc.acc8.Value())
		mc.setZN(mc.A.Value())

	case instructions.RRA:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		err = mc.write8Bit(address, mc.acc8.Value())
		mc.adc(mc.acc8.Value())

	case instructions.ANC:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.A.IsNegative()

	case instructions.ASR:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A.Value())

	case instructions.ARR:
		mc.arr(value)

	case instructions.AXS:
		mc.acc8.Load(mc.A.Value() & mc.X.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.X.Load(mc.acc8.Value())
		mc.setZN(mc.X.Value())

	case instructions.XAA:
		// the constant is the value seen on most NMOS 6502 chips
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.setZN(mc.A.Value())

	case instructions.LXA:
		mc.A.Load((mc.A.Value() | 0xff) & value)
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.A.Value())

	case instructions.AHX:
		err = mc.unstableStore(address, pageFault, mc.A.Value()&mc.X.Value()&storeHi)

	case instructions.SHX:
		err = mc.unstableStore(address, pageFault, mc.X.Value()&storeHi)

	case instructions.SHY:
		err = mc.unstableStore(address, pageFault, mc.Y.Value()&storeHi)

	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		err = mc.unstableStore(address, pageFault, mc.SP.Value()&storeHi)

	case instructions.LAS:
		value &= mc.SP.Value()
		mc.A.Load(value)
		mc.X.Load(value)
		mc.SP.Load(value)
		mc.setZN(value)

	case instructions.KIL:
		// the PC does not advance beyond the KIL opcode
		mc.Killed = true
		mc.PC.Load(mc.LastResult.Address)
		mc.LastResult.Cycles = HangCycles

	default:
		return 0, fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	if err != nil {
		return 0, err
	}

	return mc.LastResult.Cycles, nil
}

// unstableStore writes the value for the SHX family of instructions. if the
// indexing crossed a page then the high byte of the address is replaced by the
// value being written
func (mc *CPU) unstableStore(address uint16, pageFault bool, value uint8) error {
	if pageFault {
		mc.LastResult.CPUBug = execution.UnstableHighByte
		address = uint16(value)<<8 | address&0x00ff
	}
	return mc.write8Bit(address, value)
}

// Interrupt pushes the PC and the status register onto the stack and loads
// the PC from the vector. The break flag is clear in the pushed status
// register. Interrupts are disabled afterwards.
func (mc *CPU) Interrupt(vector uint16) error {
	if err := mc.push16(mc.PC.Address()); err != nil {
		return err
	}
	if err := mc.push(mc.Status.Value() &^ 0x10); err != nil {
		return err
	}
	mc.Status.InterruptDisable = true
	return mc.LoadPCIndirect(vector)
}

// IRQ raises a maskable interrupt. Returns true if the interrupt was serviced,
// which it will not be if interrupts are disabled or if the CPU is killed.
func (mc *CPU) IRQ() (bool, error) {
	if mc.Status.InterruptDisable || mc.Killed {
		return false, nil
	}
	return true, mc.Interrupt(cpubus.IRQ)
}

// NMI raises a non-maskable interrupt.
func (mc *CPU) NMI() error {
	if mc.Killed {
		return nil
	}
	return mc.Interrupt(cpubus.NMI)
}
