package emulator

import "fmt"

type Exception uint32

const (
	EXCEPTION_SYSCALL             Exception = 0x8 // System call (caused by the SYSCALL opcode)
	EXCEPTION_OVERFLOW            Exception = 0xc // Arithmetic overflow
	EXCEPTION_BREAK               Exception = 0x9 // Breakpoint (caused by BREAK opcode)
	EXCEPTION_ILLEGAL_INSTRUCTION Exception = 0xa // CPU encountered an unknown instruction
)

// Break codes the MIPS toolchain uses around DIV/DIVU
const (
	BREAK_OVERFLOW    uint32 = 6 // Signed divide overflow
	BREAK_ZERO_DIVIDE uint32 = 7 // Divide by zero
)

func (cause Exception) String() string {
	switch cause {
	case EXCEPTION_SYSCALL:
		return "syscall"
	case EXCEPTION_OVERFLOW:
		return "overflow"
	case EXCEPTION_BREAK:
		return "break"
	case EXCEPTION_ILLEGAL_INSTRUCTION:
		return "illegal instruction"
	default:
		return fmt.Sprintf("exception 0x%x", uint32(cause))
	}
}

// Returned by CPU.Run when the program raised an exception
type ExceptionError struct {
	Cause Exception
	Epc   uint32 // Address of the faulting instruction
	Code  uint32 // Break code, 0 for other exceptions
}

func (e *ExceptionError) Error() string {
	if e.Cause == EXCEPTION_BREAK {
		return fmt.Sprintf("cpu: %s %d at 0x%08x", e.Cause, e.Code, e.Epc)
	}
	return fmt.Sprintf("cpu: %s at 0x%08x", e.Cause, e.Epc)
}
