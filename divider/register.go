package divider

// Width of the operands in bits. The divide loop runs once per bit
const WIDTH = 32

const lowMask uint64 = 0x00000000ffffffff

// The combined partial remainder / quotient register pair. P lives in bits
// [63:32] and the quotient under construction in bits [31:0].
//
// Ext is the guard bit above bit 63. The adder that works on P is one bit
// wider than the operands, so a partial remainder outside the signed 32 bit
// range keeps its sign. In signed mode Ext always equals bit 63
type Register struct {
	Bits uint64
	Ext  bool
}

// Returns a register pair holding `a` in the low half and zero in P
func NewRegister(a uint32) Register {
	return Register{Bits: uint64(a)}
}

// Returns the partial remainder (bits [63:32])
func (reg Register) P() uint32 {
	return uint32(reg.Bits >> 32)
}

// Returns the quotient half (bits [31:0])
func (reg Register) A() uint32 {
	return uint32(reg.Bits)
}

// Replaces the partial remainder, leaving the quotient half untouched
func (reg *Register) SetP(p uint32) {
	reg.Bits = (reg.Bits & lowMask) | (uint64(p) << 32)
}

// Returns true if the partial remainder is negative
func (reg Register) Negative() bool {
	return reg.Ext
}

// Shifts the whole register pair one bit left. Bit 63 moves into the guard
// bit and bit 0 becomes 0
func (reg *Register) Shift() {
	reg.Ext = reg.Bits>>63 != 0
	reg.Bits <<= 1
}

// Adds `b` to the partial remainder
func (reg *Register) AddP(b uint32) {
	reg.setWide(reg.wide() + uint64(b))
}

// Subtracts `b` from the partial remainder
func (reg *Register) SubP(b uint32) {
	reg.setWide(reg.wide() - uint64(b))
}

// Sets bit 0 of the quotient half; must follow a Shift
func (reg *Register) SetQuotientBit(bit uint32) {
	reg.Bits |= uint64(bit & 1)
}

// 33 bit view of P including the guard bit
func (reg Register) wide() uint64 {
	return uint64(oneIfTrue(reg.Ext))<<32 | uint64(reg.P())
}

func (reg *Register) setWide(v uint64) {
	reg.Ext = (v>>32)&1 != 0
	reg.SetP(uint32(v))
}
