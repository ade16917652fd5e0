package divider

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parses a 32 bit operand. Decimal, 0x hex, 0b binary and 0o octal are
// accepted; values are taken as bit patterns, so 0xffffffff is -1 in signed
// mode. Negative numbers are only allowed in signed mode
func ParseOperand(s string, mode Mode) (uint32, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid operand %q", s)
	}
	if v < 0 && mode != MODE_SIGNED {
		return 0, errors.Errorf("negative operand %q in %s mode", s, mode)
	}
	if v < -0x80000000 || v > 0xffffffff {
		return 0, errors.Errorf("operand %q does not fit in %d bits", s, WIDTH)
	}
	return uint32(v), nil
}

// Formats a bit pattern the way ParseOperand reads it back in `mode`
func FormatOperand(v uint32, mode Mode) string {
	if mode == MODE_SIGNED {
		return strconv.FormatInt(int64(int32(v)), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
