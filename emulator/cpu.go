package emulator

import (
	"github.com/pkg/errors"
	"github.com/zeozeozeo/restdiv/divider"
)

// One cycle per instruction; DIV/DIVU occupy the divide unit for
// DIVIDE_CYCLES more (one per quotient bit plus setup)
const (
	INSTRUCTION_CYCLES uint64 = 1
	DIVIDE_CYCLES      uint64 = 36
)

// CPU state
type CPU struct {
	PC    uint32        // The program counter register
	Regs  [32]uint32    // General purpose registers. The first value must always be 0
	Hi    uint32        // Remainder of the last divide
	Lo    uint32        // Quotient of the last divide
	Cop0  *Cop0         // System control coprocessor
	Inter *Interconnect // Memory interface

	// Keeps track of the execution time in CPU clock cycles
	Cycles uint64

	// When true DIV/DIVU raise BREAK 7 (zero divide) or BREAK 6 (overflow)
	// instead of leaving the R3000's undefined results in HI/LO
	TrapDivideErrors bool

	// Set once an exception was raised, execution stops there
	Fault *ExceptionError
}

// Creates a new CPU state
func NewCPU(inter *Interconnect) *CPU {
	return &CPU{
		PC:    RESET_PC,
		Inter: inter,
		Cop0:  NewCop0(),
	}
}

// Returns true if the PC left program memory or an exception was raised
func (cpu *CPU) Halted() bool {
	return cpu.Fault != nil || !cpu.Inter.Mapped(cpu.PC)
}

// Runs until the program ends (PC leaves the ROM) or raises an exception.
// Returns the exception as an *ExceptionError
func (cpu *CPU) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		if cpu.Halted() {
			break
		}
		cpu.RunNextInstruction()
	}
	if cpu.Fault != nil {
		return cpu.Fault
	}
	if !cpu.Halted() {
		return errors.Errorf("cpu: still running after %d steps (pc 0x%08x)", maxSteps, cpu.PC)
	}
	return nil
}

// Runs the instruction at the program counter and increments it
func (cpu *CPU) RunNextInstruction() {
	pc := cpu.PC

	// fetch instruction at PC
	instruction := Instruction(cpu.Load32(pc))

	// increment PC to point to the next instruction
	cpu.PC += 4 // wraps around: 0xfffffffc + 4 = 0
	cpu.Cycles += INSTRUCTION_CYCLES
	cpu.DecodeAndExecute(instruction, pc)
}

// Returns a 32bit little endian value at `addr`. Panics if the address does not exist
func (cpu *CPU) Load32(addr uint32) uint32 {
	return cpu.Inter.Load32(addr)
}

// Decodes and executes an instruction fetched from `pc`
func (cpu *CPU) DecodeAndExecute(instruction Instruction, pc uint32) {
	// http://problemkaputt.de/psx-spx.htm#cpuopcodeencoding
	switch instruction.Function() {
	case OP_SPECIAL:
		switch instruction.Subfunction() {
		case FN_MFHI: // Move From HI
			cpu.SetReg(instruction.D(), cpu.Hi)
		case FN_MFLO: // Move From LO
			cpu.SetReg(instruction.D(), cpu.Lo)
		case FN_DIV: // Divide (signed)
			cpu.OpDIV(instruction, divider.MODE_SIGNED, pc)
		case FN_DIVU: // Divide Unsigned
			cpu.OpDIV(instruction, divider.MODE_UNSIGNED, pc)
		case FN_SYSCALL:
			cpu.Exception(EXCEPTION_SYSCALL, pc, 0)
		case FN_BREAK:
			cpu.Exception(EXCEPTION_BREAK, pc, instruction.BreakCode())
		default:
			cpu.Exception(EXCEPTION_ILLEGAL_INSTRUCTION, pc, 0)
		}
	case OP_LUI: // Load Upper Immediate
		cpu.OpLUI(instruction)
	case OP_ORI: // Bitwise Or Immediate
		cpu.OpORI(instruction)
	case OP_ADDIU: // Add Immediate Unsigned
		cpu.OpADDIU(instruction)
	default:
		cpu.Exception(EXCEPTION_ILLEGAL_INSTRUCTION, pc, 0)
	}
}

// Raises an exception and stops execution
func (cpu *CPU) Exception(cause Exception, pc uint32, code uint32) {
	cpu.Cop0.EnterException(cause, pc)
	cpu.Fault = &ExceptionError{Cause: cause, Epc: pc, Code: code}
}

// Load Upper Immediate
func (cpu *CPU) OpLUI(instruction Instruction) {
	i := instruction.Imm()
	t := instruction.T()

	// low 16 bits are set to 0
	v := i << 16
	cpu.SetReg(t, v)
}

// Bitwise Or Immediate
func (cpu *CPU) OpORI(instruction Instruction) {
	i := instruction.Imm()
	t := instruction.T()
	s := instruction.S()
	cpu.SetReg(t, cpu.Reg(s)|i)
}

// Add Immediate Unsigned (no overflow trap)
func (cpu *CPU) OpADDIU(instruction Instruction) {
	i := instruction.ImmSE()
	t := instruction.T()
	s := instruction.S()
	cpu.SetReg(t, cpu.Reg(s)+i)
}

// DIV and DIVU: LO = rs / rt, HI = rs % rt
func (cpu *CPU) OpDIV(instruction Instruction, mode divider.Mode, pc uint32) {
	n := cpu.Reg(instruction.S())
	d := cpu.Reg(instruction.T())
	cpu.Cycles += DIVIDE_CYCLES

	res, err := divider.Divide(n, d, mode)
	switch {
	case err == nil:
		cpu.Lo = res.Quotient
		cpu.Hi = res.Remainder
	case errors.Is(err, divider.ErrDivisionByZero):
		if cpu.TrapDivideErrors {
			cpu.Exception(EXCEPTION_BREAK, pc, BREAK_ZERO_DIVIDE)
			return
		}
		cpu.Hi = n
		if mode == divider.MODE_SIGNED && int32(n) < 0 {
			cpu.Lo = 1
		} else {
			cpu.Lo = 0xffffffff
		}
	case errors.Is(err, divider.ErrOverflow):
		if cpu.TrapDivideErrors {
			cpu.Exception(EXCEPTION_BREAK, pc, BREAK_OVERFLOW)
			return
		}
		cpu.Hi = 0
		cpu.Lo = divider.MIN_INT32
	default:
		panicFmt("cpu: divide 0x%x by 0x%x: %v", n, d, err)
	}
}

// Returns the register value at `index`. The first register is always zero
func (cpu *CPU) Reg(index uint32) uint32 {
	return cpu.Regs[index]
}

// Sets the value at the `index` register and sets the first register to zero
func (cpu *CPU) SetReg(index, val uint32) {
	cpu.Regs[index] = val
	// R0 should always remain 0, we can't change it
	cpu.Regs[0] = 0
}
