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
	"github.com/jetsetilly/gophersap/logger"
)

// Sentinel is the value of the PC after a routine called by RunSubroutine()
// has returned. The value pushed onto the stack is one less than Sentinel
// because the RTS instruction adds one to the value it pulls from the stack.
const Sentinel = uint16(0xffff)

// MaxSubroutineCycles is the number of cycles a routine called by
// RunSubroutine() can run for before it is abandoned.
const MaxSubroutineCycles = 1000000

// Termination describes how a call to RunSubroutine() ended.
type Termination int

// List of valid Termination values.
const (
	// the routine returned normally
	Terminated Termination = iota

	// the routine executed a KIL instruction
	OpcodeFault

	// the routine ran for longer than MaxSubroutineCycles
	Exhausted
)

func (t Termination) String() string {
	switch t {
	case Terminated:
		return "terminated"
	case OpcodeFault:
		return "opcode fault"
	case Exhausted:
		return "exhausted"
	}
	return "unknown termination"
}

// Regs are the register values to be set before a routine is called.
type Regs struct {
	A uint8
	X uint8
	Y uint8
}

// Context is a copy of the CPU registers. It is used to preserve the state of
// a running program while a routine is called on top of it.
type Context struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
	Killed bool
}

// Save returns a copy of the current register values.
func (mc *CPU) Save() Context {
	return Context{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status.Value(),
		Killed: mc.Killed,
	}
}

// Restore registers from a previous call to Save().
func (mc *CPU) Restore(ctx Context) {
	mc.PC.Load(ctx.PC)
	mc.A.Load(ctx.A)
	mc.X.Load(ctx.X)
	mc.Y.Load(ctx.Y)
	mc.SP.Load(ctx.SP)
	mc.Status.FromValue(ctx.Status)
	mc.Killed = ctx.Killed
}

// Parked returns true if the PC is at the Sentinel address. This is the case
// after a successful call to RunSubroutine() or RunInterrupt().
func (mc *CPU) Parked() bool {
	return mc.PC.Address() == Sentinel
}

// RunSubroutine calls the routine at the address with the registers set to
// the supplied values. The routine runs until it returns, until it executes
// a KIL instruction or until it exceeds MaxSubroutineCycles.
//
// The Termination value says which of those three things happened. None of
// them are errors. An error is only returned if the memory implementation
// returns an error.
//
// A previously killed CPU is revived by a call to RunSubroutine().
func (mc *CPU) RunSubroutine(address uint16, regs Regs) (Termination, error) {
	mc.Killed = false

	if err := mc.push16(Sentinel - 1); err != nil {
		return Terminated, err
	}

	return mc.run(address, regs)
}

// RunInterrupt calls the routine at the address as if it had been entered
// by a hardware interrupt. The return address and the status register (with
// the break flag clear) are pushed onto the stack and interrupts are
// disabled. The routine is expected to end with an RTI instruction.
//
// Termination conditions are the same as for RunSubroutine().
func (mc *CPU) RunInterrupt(address uint16, regs Regs) (Termination, error) {
	mc.Killed = false

	if err := mc.push16(Sentinel); err != nil {
		return Terminated, err
	}
	if err := mc.push(mc.Status.Value() &^ 0x10); err != nil {
		return Terminated, err
	}
	mc.Status.InterruptDisable = true

	return mc.run(address, regs)
}

// run from the address until the PC reaches the Sentinel address
func (mc *CPU) run(address uint16, regs Regs) (Termination, error) {
	mc.PC.Load(address)
	mc.A.Load(regs.A)
	mc.X.Load(regs.X)
	mc.Y.Load(regs.Y)

	var cycles int

	for mc.PC.Address() != Sentinel {
		if cycles > MaxSubroutineCycles {
			mc.logTermination(address, Exhausted)
			return Exhausted, nil
		}

		n, err := mc.Step()
		if err != nil {
			return Terminated, err
		}

		if mc.Killed {
			mc.logTermination(address, OpcodeFault)
			return OpcodeFault, nil
		}

		cycles += n
	}

	return Terminated, nil
}

func (mc *CPU) logTermination(address uint16, t Termination) {
	if mc.env == nil {
		return
	}
	logger.Logf(mc.env, "cpu", "routine at %04x: %s (%s)", address, t, mc.LastResult)
}
