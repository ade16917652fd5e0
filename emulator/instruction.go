package emulator

type Instruction uint32

// Primary opcodes in bits [31:26]
const (
	OP_SPECIAL uint32 = 0x00
	OP_ADDIU   uint32 = 0x09
	OP_ORI     uint32 = 0x0d
	OP_LUI     uint32 = 0x0f
)

// SPECIAL function codes in bits [5:0]
const (
	FN_SYSCALL uint32 = 0x0c
	FN_BREAK   uint32 = 0x0d
	FN_MFHI    uint32 = 0x10
	FN_MFLO    uint32 = 0x12
	FN_DIV     uint32 = 0x1a
	FN_DIVU    uint32 = 0x1b
)

// Return bits [31:26] of the instruction
func (op Instruction) Function() uint32 {
	return uint32(op) >> 26
}

// Return bits [5:0] of the instruction
func (op Instruction) Subfunction() uint32 {
	return uint32(op) & 0x3f
}

// Return register index in bits [25:21]
func (op Instruction) S() uint32 {
	return (uint32(op) >> 21) & 0x1f
}

// Return register index in bits [20:16]
func (op Instruction) T() uint32 {
	return (uint32(op) >> 16) & 0x1f
}

// Return register index in bits [15:11]
func (op Instruction) D() uint32 {
	return (uint32(op) >> 11) & 0x1f
}

// Return immediate value in bits [16:0]
func (op Instruction) Imm() uint32 {
	return uint32(op) & 0xffff
}

// Return immediate value in bits [16:0] as a sign-extended 32 bit value
func (op Instruction) ImmSE() uint32 {
	v := int16(uint32(op) & 0xffff) // sign-extend v
	return uint32(v)
}

// BREAK code. Assemblers put single codes in bits [25:16]
func (op Instruction) BreakCode() uint32 {
	return (uint32(op) >> 16) & 0x3ff
}

// Encodes an immediate (I-type) instruction
func EncodeImm(function, s, t, imm uint32) Instruction {
	return Instruction(function<<26 | (s&0x1f)<<21 | (t&0x1f)<<16 | imm&0xffff)
}

// Encodes a SPECIAL (R-type) instruction
func EncodeSpecial(subfunction, s, t, d uint32) Instruction {
	return Instruction((s&0x1f)<<21 | (t&0x1f)<<16 | (d&0x1f)<<11 | subfunction&0x3f)
}

// Encodes BREAK `code`
func EncodeBreak(code uint32) Instruction {
	return Instruction((code&0x3ff)<<16 | FN_BREAK)
}
