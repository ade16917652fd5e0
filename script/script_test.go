package script

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeozeozeo/restdiv/divider"
)

func run(t *testing.T, mode divider.Mode, source string) string {
	t.Helper()
	var out bytes.Buffer
	r := NewRunner(mode, &out)
	if err := r.RunString(context.Background(), "test", source); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	return strings.TrimSpace(out.String())
}

func TestDivide(t *testing.T) {
	assert := func(source, want string) {
		if got := run(t, divider.MODE_SIGNED, source); got != want {
			t.Errorf("%s: expected %q, got %q", source, want, got)
		}
	}

	assert(`print(divide(120, 10))`, "12\t0")
	assert(`print(divide(121, 10))`, "12\t1")
	assert(`print(divide(-121, 10))`, "-12\t-1")
	assert(`print(divide(121, -10))`, "-12\t1")
	assert(`print(divide(120, 0))`, "nil\tdivision-by-zero")
	assert(`print(divide(-2147483648, -1))`, "nil\toverflow")
	assert(`print(divide("0xffffffff", 2, UNSIGNED))`, "2147483647\t1")
	assert(`print(divide("0xffffffff", 2))`, "0\t-1")
}

func TestDefaultMode(t *testing.T) {
	if got := run(t, divider.MODE_UNSIGNED, `print(divide(4294967295, 16))`); got != "268435455\t15" {
		t.Errorf("expected unsigned division by default, got %q", got)
	}
}

func TestVerifyAndTrace(t *testing.T) {
	got := run(t, divider.MODE_SIGNED, `
local ok = true
for a = -50, 50 do
  for b = -7, 7 do
    if b ~= 0 then ok = ok and verify(a, b) end
  end
end
print(ok, verify(1, 0))

local steps = trace(7, 10, UNSIGNED)
print(#steps, steps[1].op, steps[2].op, steps[#steps].op, steps[#steps].p)
print(trace(1, 0))
`)
	want := "true\tfalse\n33\tsub\tadd\trestore\t7\nnil\tdivision-by-zero"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBadArguments(t *testing.T) {
	r := NewRunner(divider.MODE_SIGNED, ioutil.Discard)
	for _, source := range []string{
		`divide(1.5, 1)`,
		`divide({}, 1)`,
		`divide(1, 1, "float")`,
		`divide(-1, 1, UNSIGNED)`,
		`syntax error here`,
	} {
		if err := r.RunString(context.Background(), "bad", source); err == nil {
			t.Errorf("%s: expected an error", source)
		}
	}
}

func TestRunFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "restdiv-script")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "div.lua")
	if err := ioutil.WriteFile(name, []byte(`local q, r = divide(0x78, 0xa); print(q, r)`), 0600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := NewRunner(divider.MODE_UNSIGNED, &out).RunFile(context.Background(), name); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "12\t0" {
		t.Errorf("expected 12\\t0, got %q", out.String())
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(divider.MODE_SIGNED, ioutil.Discard)
	if err := r.RunString(ctx, "loop", `while true do end`); err == nil {
		t.Error("expected the cancelled context to stop the script")
	}
}
