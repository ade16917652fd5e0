package emulator

import "fmt"

// Returns the assembly for one instruction, "illegal 0x..." if it is not
// one the CPU implements
func Disassemble(op Instruction) string {
	s, t, d := GetRegisterName(op.S()), GetRegisterName(op.T()), GetRegisterName(op.D())
	switch op.Function() {
	case OP_SPECIAL:
		switch op.Subfunction() {
		case FN_MFHI:
			return "mfhi " + d
		case FN_MFLO:
			return "mflo " + d
		case FN_DIV:
			return fmt.Sprintf("div  %s, %s", s, t)
		case FN_DIVU:
			return fmt.Sprintf("divu %s, %s", s, t)
		case FN_SYSCALL:
			return "syscall"
		case FN_BREAK:
			return fmt.Sprintf("break %d", op.BreakCode())
		}
	case OP_LUI:
		return fmt.Sprintf("lui  %s, 0x%04x", t, op.Imm())
	case OP_ORI:
		return fmt.Sprintf("ori  %s, %s, 0x%04x", t, s, op.Imm())
	case OP_ADDIU:
		return fmt.Sprintf("addiu %s, %s, %d", t, s, int32(op.ImmSE()))
	}
	return fmt.Sprintf("illegal 0x%08x", uint32(op))
}

// Disassembles `words` as if loaded at RESET_PC, one line per word:
//
//	bfc00000  3c040000  lui  a0, 0x0000
func Listing(words []uint32) []string {
	lines := make([]string, len(words))
	for i, word := range words {
		addr := RESET_PC + uint32(i)*4
		lines[i] = fmt.Sprintf("%08x  %08x  %s", addr, word, Disassemble(Instruction(word)))
	}
	return lines
}

// Listing of the program in `rom`
func (rom *ROM) Listing() []string {
	words := make([]uint32, rom.Size()/4)
	for i := range words {
		words[i] = rom.Load32(uint32(i) * 4)
	}
	return Listing(words)
}
