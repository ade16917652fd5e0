package emulator

import "github.com/zeozeozeo/restdiv/divider"

const (
	REG_V0 uint32 = 2 // Quotient is moved here
	REG_V1 uint32 = 3 // Remainder is moved here
	REG_A0 uint32 = 4 // Dividend
	REG_A1 uint32 = 5 // Divisor
)

// Assembles a program that loads `dividend` into a0 and `divisor` into a1,
// divides them and moves LO into v0 and HI into v1:
//
//	lui  a0, hi(dividend)
//	ori  a0, a0, lo(dividend)
//	lui  a1, hi(divisor)
//	ori  a1, a1, lo(divisor)
//	div  a0, a1             (divu in unsigned mode)
//	mflo v0
//	mfhi v1
func DivideProgram(dividend, divisor uint32, mode divider.Mode) []uint32 {
	fn := FN_DIVU
	if mode == divider.MODE_SIGNED {
		fn = FN_DIV
	}
	program := []Instruction{
		EncodeImm(OP_LUI, 0, REG_A0, dividend>>16),
		EncodeImm(OP_ORI, REG_A0, REG_A0, dividend),
		EncodeImm(OP_LUI, 0, REG_A1, divisor>>16),
		EncodeImm(OP_ORI, REG_A1, REG_A1, divisor),
		EncodeSpecial(fn, REG_A0, REG_A1, 0),
		EncodeSpecial(FN_MFLO, 0, 0, REG_V0),
		EncodeSpecial(FN_MFHI, 0, 0, REG_V1),
	}
	words := make([]uint32, len(program))
	for i, op := range program {
		words[i] = uint32(op)
	}
	return words
}

// Runs DivideProgram on a fresh CPU and returns v0 (quotient) and v1
// (remainder)
func RunDivide(dividend, divisor uint32, mode divider.Mode, trap bool) (lo, hi uint32, err error) {
	rom := NewROM(DivideProgram(dividend, divisor, mode))
	cpu := NewCPU(NewInterconnect(rom))
	cpu.TrapDivideErrors = trap

	if err := cpu.Run(64); err != nil {
		return 0, 0, err
	}
	return cpu.Reg(REG_V0), cpu.Reg(REG_V1), nil
}
