package divider

import (
	"testing"

	"github.com/pkg/errors"
)

func TestVerify(t *testing.T) {
	assert := func(a, b uint32, mode Mode, res Result, ok bool) {
		err := Verify(a, b, mode, res)
		if (err == nil) != ok {
			t.Errorf("Verify(0x%x, 0x%x, %s, %+v) = %v", a, b, mode, res, err)
		}
	}

	minus := func(v int32) uint32 { return uint32(v) }

	assert(121, 10, MODE_SIGNED, Result{12, 1}, true)
	assert(minus(-121), 10, MODE_SIGNED, Result{minus(-12), minus(-1)}, true)
	assert(121, minus(-10), MODE_SIGNED, Result{minus(-12), 1}, true)
	// floored division is not what the hardware does
	assert(minus(-121), 10, MODE_SIGNED, Result{minus(-13), 9}, false)
	assert(121, 10, MODE_SIGNED, Result{11, 11}, false)
	assert(121, 10, MODE_UNSIGNED, Result{12, 1}, true)
	assert(121, 10, MODE_UNSIGNED, Result{12, 2}, false)
	assert(0xffffffff, 0xffffffff, MODE_UNSIGNED, Result{1, 0}, true)

	if err := Verify(1, 0, MODE_UNSIGNED, Result{}); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
	if err := Verify(MIN_INT32, MINUS_ONE, MODE_SIGNED, Result{}); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}
