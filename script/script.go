// Package script runs Lua programs that drive the divider.
package script

import (
	"context"
	"io"
	"strconv"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
	"github.com/zeozeozeo/restdiv/divider"
)

// Runner executes Lua scripts with the divider bound in as globals:
//
//	q, r = divide(a, b [, mode])  -- nil, kind on error
//	ok   = verify(a, b [, mode])
//	steps = trace(a, b [, mode])  -- list of {index, op, p, a, neg, bit}
//
// mode is SIGNED or UNSIGNED (the strings "signed" / "unsigned"),
// DefaultMode when omitted.
type Runner struct {
	DefaultMode divider.Mode
	Out         io.Writer // destination of print()
}

// NewRunner returns a runner printing to out.
func NewRunner(mode divider.Mode, out io.Writer) *Runner {
	return &Runner{DefaultMode: mode, Out: out}
}

// RunString executes Lua source. name is used in error messages.
func (r *Runner) RunString(ctx context.Context, name, source string) error {
	L := r.newState(ctx)
	defer L.Close()
	fn, err := L.LoadString(source)
	if err != nil {
		return errors.Wrapf(err, "load %v", name)
	}
	L.Push(fn)
	return errors.Wrapf(L.PCall(0, lua.MultRet, nil), "run %v", name)
}

// RunFile executes the Lua script at fileName.
func (r *Runner) RunFile(ctx context.Context, fileName string) error {
	L := r.newState(ctx)
	defer L.Close()
	return errors.Wrapf(L.DoFile(fileName), "run %v", fileName)
}

func (r *Runner) newState(ctx context.Context) *lua.LState {
	L := lua.NewState()
	L.SetContext(ctx)
	L.SetGlobal("SIGNED", lua.LString(divider.MODE_SIGNED.String()))
	L.SetGlobal("UNSIGNED", lua.LString(divider.MODE_UNSIGNED.String()))
	L.SetGlobal("divide", L.NewFunction(r.luaDivide))
	L.SetGlobal("verify", L.NewFunction(r.luaVerify))
	L.SetGlobal("trace", L.NewFunction(r.luaTrace))
	if r.Out != nil {
		L.SetGlobal("print", L.NewFunction(r.luaPrint))
	}
	return L
}

// operands reads (a, b [, mode]) from the Lua stack. Numbers are taken as
// integers; strings go through divider.ParseOperand so "0xffffffff" works.
func (r *Runner) operands(L *lua.LState) (uint32, uint32, divider.Mode) {
	mode := r.DefaultMode
	if L.GetTop() >= 3 {
		m, err := divider.ParseMode(L.CheckString(3))
		if err != nil {
			L.ArgError(3, err.Error())
		}
		mode = m
	}
	return r.operand(L, 1, mode), r.operand(L, 2, mode), mode
}

func (r *Runner) operand(L *lua.LState, n int, mode divider.Mode) uint32 {
	var s string
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		if float64(v) != float64(int64(v)) {
			L.ArgError(n, "operand must be an integer")
		}
		s = strconv.FormatInt(int64(v), 10)
	case lua.LString:
		s = string(v)
	default:
		L.ArgError(n, "operand must be a number or a string")
	}
	x, err := divider.ParseOperand(s, mode)
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return x
}

// number converts a result bit pattern to a Lua number in the given mode.
func number(v uint32, mode divider.Mode) lua.LNumber {
	if mode == divider.MODE_SIGNED {
		return lua.LNumber(int32(v))
	}
	return lua.LNumber(v)
}

func (r *Runner) luaDivide(L *lua.LState) int {
	a, b, mode := r.operands(L)
	res, err := divider.Divide(a, b, mode)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(divider.ErrorKind(err)))
		return 2
	}
	L.Push(number(res.Quotient, mode))
	L.Push(number(res.Remainder, mode))
	return 2
}

func (r *Runner) luaVerify(L *lua.LState) int {
	a, b, mode := r.operands(L)
	res, err := divider.Divide(a, b, mode)
	if err == nil {
		err = divider.Verify(a, b, mode, res)
	}
	L.Push(lua.LBool(err == nil))
	return 1
}

func (r *Runner) luaTrace(L *lua.LState) int {
	a, b, mode := r.operands(L)
	steps, _, err := divider.Trace(a, b, mode)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(divider.ErrorKind(err)))
		return 2
	}
	list := L.NewTable()
	for _, step := range steps {
		t := L.NewTable()
		t.RawSetString("index", lua.LNumber(step.Index))
		t.RawSetString("op", lua.LString(step.Op.String()))
		t.RawSetString("p", lua.LNumber(step.After.P()))
		t.RawSetString("a", lua.LNumber(step.After.A()))
		t.RawSetString("neg", lua.LBool(step.After.Negative()))
		t.RawSetString("bit", lua.LNumber(step.QuotientBit))
		list.Append(t)
	}
	L.Push(list)
	return 1
}

func (r *Runner) luaPrint(L *lua.LState) int {
	top := L.GetTop()
	for i := 1; i <= top; i++ {
		if i > 1 {
			io.WriteString(r.Out, "\t")
		}
		io.WriteString(r.Out, L.ToStringMeta(L.Get(i)).String())
	}
	io.WriteString(r.Out, "\n")
	return 0
}
