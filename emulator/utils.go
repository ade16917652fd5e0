package emulator

import (
	"fmt"
	"strconv"
	"strings"
)

// ABI names of the general purpose registers
var RegisterNames = [32]string{
	"r0", "at", "v0", "v1", "a0", "a1", "a2", "a3", // 00
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", // 08
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", // 10
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra", // 18
}

// Returns the ABI name of register `index`
func GetRegisterName(index uint32) string {
	return RegisterNames[index&0x1f]
}

// Looks a register up by ABI name ("a0") or number ("r4", "$4")
func GetRegisterIndexByName(name string) (uint32, bool) {
	for idx, n := range RegisterNames {
		if n == name || "$"+n == name {
			return uint32(idx), true
		}
	}
	for _, prefix := range []string{"r", "$"} {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if idx, err := strconv.ParseUint(name[len(prefix):], 10, 5); err == nil {
			return uint32(idx), true
		}
	}
	return 0, false
}

// Formatted panic()
func panicFmt(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
