// Package divider emulates the integer divide unit of a 32 bit processor.
// Quotient and remainder are produced one bit per cycle on a combined P:A
// register pair, the way the hardware does it, including the sign fix-up
// and the zero divisor and signed overflow conditions.
package divider

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

const (
	MIN_INT32     uint32 = 0x80000000 // -2^31
	MINUS_ONE     uint32 = 0xffffffff // -1
	KIND_ZERO     string = "division-by-zero"
	KIND_OVERFLOW string = "overflow"
)

// Division mode
type Mode int

const (
	MODE_UNSIGNED Mode = iota // Operands are unsigned magnitudes
	MODE_SIGNED               // Operands are two's complement integers
)

func (mode Mode) String() string {
	switch mode {
	case MODE_UNSIGNED:
		return "unsigned"
	case MODE_SIGNED:
		return "signed"
	default:
		return "invalid"
	}
}

// Parses "signed"/"unsigned" (or the short forms "s"/"u")
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "signed", "s", "div":
		return MODE_SIGNED, nil
	case "unsigned", "u", "divu":
		return MODE_UNSIGNED, nil
	}
	return MODE_UNSIGNED, errors.Errorf("unknown division mode %q", s)
}

// Quotient and remainder bit patterns
type Result struct {
	Quotient  uint32
	Remainder uint32
}

func (res Result) SignedQuotient() int32 {
	return int32(res.Quotient)
}

func (res Result) SignedRemainder() int32 {
	return int32(res.Remainder)
}

// Returns KIND_ZERO or KIND_OVERFLOW for divider errors, "" for anything else
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return KIND_ZERO
	case errors.Is(err, ErrOverflow):
		return KIND_OVERFLOW
	default:
		return ""
	}
}

// Divides the `dividend` bit pattern by `divisor`. Returns ErrDivisionByZero
// or ErrOverflow (signed -2^31 / -1) instead of a result
func Divide(dividend, divisor uint32, mode Mode) (Result, error) {
	return run(dividend, divisor, mode, nil)
}

// Signed division with truncation towards zero
func DivideSigned(a, b int32) (q, r int32, err error) {
	res, err := Divide(uint32(a), uint32(b), MODE_SIGNED)
	if err != nil {
		return 0, 0, err
	}
	return res.SignedQuotient(), res.SignedRemainder(), nil
}

func DivideUnsigned(a, b uint32) (q, r uint32, err error) {
	res, err := Divide(a, b, MODE_UNSIGNED)
	if err != nil {
		return 0, 0, err
	}
	return res.Quotient, res.Remainder, nil
}

// Checks the special cases of the ISA before any register is touched
func checkOperands(dividend, divisor uint32, mode Mode) error {
	if divisor == 0 {
		return errors.Wrapf(ErrDivisionByZero, "%s divide 0x%08x", mode, dividend)
	}
	if mode == MODE_SIGNED && dividend == MIN_INT32 && divisor == MINUS_ONE {
		return errors.Wrapf(ErrOverflow, "signed divide 0x%08x by -1", dividend)
	}
	return nil
}

// Runs the divide. `observe`, if not nil, is called after every step
func run(dividend, divisor uint32, mode Mode, observe func(Step)) (Result, error) {
	if mode != MODE_SIGNED && mode != MODE_UNSIGNED {
		return Result{}, errors.Errorf("invalid division mode %d", mode)
	}
	if err := checkOperands(dividend, divisor, mode); err != nil {
		return Result{}, err
	}

	// pre-process the inputs based on their signs
	signDividend := signBit(dividend)
	signDivisor := signBit(divisor)

	var reg Register
	var bReg uint32
	if mode == MODE_SIGNED {
		reg = NewRegister(abs32(dividend))
		bReg = abs32(divisor)
	} else {
		reg = NewRegister(dividend)
		bReg = divisor
	}
	signP := reg.Negative()

	for i := 0; i < WIDTH; i++ {
		before := reg
		op := OP_SUBTRACT

		reg.Shift()
		if signP {
			// P was negative: add the divisor back
			reg.AddP(bReg)
			op = OP_ADD
		} else {
			reg.SubP(bReg)
		}
		signP = reg.Negative()

		// quotient bit is 1 if P is non-negative
		bit := oneIfTrue(!signP)
		reg.SetQuotientBit(bit)

		if observe != nil {
			observe(Step{Index: i, Op: op, Before: before, After: reg, QuotientBit: bit})
		}
	}

	// final restoring step: a negative P needs the divisor added to become
	// the remainder
	if signP {
		before := reg
		reg.AddP(bReg)
		if observe != nil {
			observe(Step{Index: WIDTH, Op: OP_RESTORE, Before: before, After: reg})
		}
	}

	res := Result{Quotient: reg.A(), Remainder: reg.P()}
	if mode == MODE_SIGNED {
		if signDividend != signDivisor {
			res.Quotient = negate(res.Quotient)
		}
		// remainder takes the sign of the dividend
		if signDividend {
			res.Remainder = negate(res.Remainder)
		}
	}
	return res, nil
}
