package emulator

// Coprocessor 0: System Control. Only the exception registers are modelled
type Cop0 struct {
	Cause uint32 // Register 13: cause register
	Epc   uint32 // Register 14: exception PC
}

// Creates a new Cop0 instance
func NewCop0() *Cop0 {
	return &Cop0{}
}

// Records an exception. The exception code lives in bits [6:2] of Cause
func (cop *Cop0) EnterException(cause Exception, pc uint32) {
	cop.Cause = (cop.Cause &^ 0x7c) | ((uint32(cause) << 2) & 0x7c)
	cop.Epc = pc
}

// Returns the exception code stored in the cause register
func (cop *Cop0) ExceptionCode() Exception {
	return Exception((cop.Cause >> 2) & 0x1f)
}
