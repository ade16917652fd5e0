package divider

import "github.com/pkg/errors"

// Checks that `res` is a valid truncating division of `dividend` by
// `divisor`: A == Q*B + R, |R| < |B| and R is zero or has the sign of A
func Verify(dividend, divisor uint32, mode Mode, res Result) error {
	if err := checkOperands(dividend, divisor, mode); err != nil {
		return err
	}

	switch mode {
	case MODE_UNSIGNED:
		a, b := uint64(dividend), uint64(divisor)
		q, r := uint64(res.Quotient), uint64(res.Remainder)
		if q*b+r != a {
			return errors.Errorf("%d != %d*%d + %d", a, q, b, r)
		}
		if r >= b {
			return errors.Errorf("remainder %d not below divisor %d", r, b)
		}
	case MODE_SIGNED:
		a, b := int64(int32(dividend)), int64(int32(divisor))
		q, r := int64(res.SignedQuotient()), int64(res.SignedRemainder())
		if q*b+r != a {
			return errors.Errorf("%d != %d*%d + %d", a, q, b, r)
		}
		if absInt64(r) >= absInt64(b) {
			return errors.Errorf("|remainder| %d not below |divisor| %d", r, b)
		}
		if r != 0 && (r < 0) != (a < 0) {
			return errors.Errorf("remainder %d does not take the sign of %d", r, a)
		}
	default:
		return errors.Errorf("invalid division mode %d", mode)
	}
	return nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
