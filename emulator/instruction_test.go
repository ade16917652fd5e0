package emulator

import (
	"bytes"
	"testing"

	"github.com/zeozeozeo/restdiv/divider"
)

func TestInstructionFields(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	op := EncodeImm(OP_ORI, 4, 5, 0x8001)
	assert(op.Function() == OP_ORI)
	assert(op.S() == 4)
	assert(op.T() == 5)
	assert(op.Imm() == 0x8001)
	assert(op.ImmSE() == 0xffff8001)

	op = EncodeSpecial(FN_DIVU, 4, 5, 0)
	assert(op.Function() == OP_SPECIAL)
	assert(op.Subfunction() == FN_DIVU)
	assert(uint32(op) == 0x0085001b)

	assert(uint32(EncodeBreak(BREAK_ZERO_DIVIDE)) == 0x0007000d)
	assert(EncodeBreak(BREAK_ZERO_DIVIDE).BreakCode() == 7)
	assert(EncodeSpecial(FN_MFLO, 0, 0, REG_V0).D() == REG_V0)
}

func TestDivideProgram(t *testing.T) {
	words := DivideProgram(0x12345678, 0xa, divider.MODE_SIGNED)
	if len(words) != 7 {
		t.Fatalf("expected 7 words, got %d", len(words))
	}
	if words[0] != 0x3c041234 || words[1] != 0x34845678 {
		t.Errorf("bad dividend load 0x%08x 0x%08x", words[0], words[1])
	}
	if Instruction(words[4]).Subfunction() != FN_DIV {
		t.Errorf("expected div, got 0x%08x", words[4])
	}
	if Instruction(DivideProgram(1, 1, divider.MODE_UNSIGNED)[4]).Subfunction() != FN_DIVU {
		t.Error("expected divu in unsigned mode")
	}
}

func TestLoadROM(t *testing.T) {
	rom, err := LoadROM(bytes.NewReader([]byte{0x0d, 0x00, 0x07, 0x00}))
	if err != nil {
		t.Fatal(err)
	}
	if rom.Load32(0) != 0x0007000d {
		t.Errorf("expected little endian 0x0007000d, got 0x%08x", rom.Load32(0))
	}

	if _, err := LoadROM(bytes.NewReader([]byte{1, 2, 3})); err == nil {
		t.Error("expected an error for a partial word")
	}
	if _, err := LoadROM(bytes.NewReader(make([]byte, ROM_MAX_SIZE+4))); err == nil {
		t.Error("expected an error for an oversized rom")
	}
}

func TestRegisterNames(t *testing.T) {
	if GetRegisterName(REG_A0) != "a0" || GetRegisterName(REG_V1) != "v1" {
		t.Error("bad register names")
	}

	assert := func(name string, index uint32, found bool) {
		idx, ok := GetRegisterIndexByName(name)
		if ok != found || idx != index {
			t.Errorf("%q: expected (%d, %t), got (%d, %t)", name, index, found, idx, ok)
		}
	}
	assert("a1", REG_A1, true)
	assert("$a1", REG_A1, true)
	assert("r5", REG_A1, true)
	assert("$31", 31, true)
	assert("ra", 31, true)
	assert("r0", 0, true)
	assert("r32", 0, false)
	assert("r4x", 0, false)
	assert("nope", 0, false)
	assert("", 0, false)
}

func TestDisassemble(t *testing.T) {
	assert := func(op Instruction, expected string) {
		if got := Disassemble(op); got != expected {
			t.Errorf("0x%08x: expected %q, got %q", uint32(op), expected, got)
		}
	}
	assert(EncodeImm(OP_LUI, 0, REG_A0, 0x8000), "lui  a0, 0x8000")
	assert(EncodeImm(OP_ORI, REG_A0, REG_A1, 0xbeef), "ori  a1, a0, 0xbeef")
	assert(EncodeImm(OP_ADDIU, 0, REG_V0, 0xfff6), "addiu v0, r0, -10")
	assert(EncodeSpecial(FN_DIV, REG_A0, REG_A1, 0), "div  a0, a1")
	assert(EncodeSpecial(FN_DIVU, REG_A0, REG_A1, 0), "divu a0, a1")
	assert(EncodeSpecial(FN_MFLO, 0, 0, REG_V0), "mflo v0")
	assert(EncodeSpecial(FN_MFHI, 0, 0, REG_V1), "mfhi v1")
	assert(EncodeBreak(BREAK_ZERO_DIVIDE), "break 7")
	assert(EncodeSpecial(FN_SYSCALL, 0, 0, 0), "syscall")
	assert(Instruction(0xffffffff), "illegal 0xffffffff")
	assert(EncodeSpecial(0x3f, 0, 0, 0), "illegal 0x0000003f")
}

func TestListing(t *testing.T) {
	expected := []string{
		"bfc00000  3c040000  lui  a0, 0x0000",
		"bfc00004  34840079  ori  a0, a0, 0x0079",
		"bfc00008  3c050000  lui  a1, 0x0000",
		"bfc0000c  34a5000a  ori  a1, a1, 0x000a",
		"bfc00010  0085001a  div  a0, a1",
		"bfc00014  00001012  mflo v0",
		"bfc00018  00001810  mfhi v1",
	}
	words := DivideProgram(121, 10, divider.MODE_SIGNED)
	for _, lines := range [][]string{Listing(words), NewROM(words).Listing()} {
		if len(lines) != len(expected) {
			t.Fatalf("expected %d lines, got %d", len(expected), len(lines))
		}
		for i := range lines {
			if lines[i] != expected[i] {
				t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
			}
		}
	}
}
