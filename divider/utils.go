package divider

func oneIfTrue(val bool) uint32 {
	if val {
		return 1
	}
	return 0
}

// Two's complement negation (~v + 1). Wraps, so 0x80000000 maps to itself
func negate(v uint32) uint32 {
	return ^v + 1
}

// Returns the magnitude of a 32 bit two's complement value
func abs32(v uint32) uint32 {
	if signBit(v) {
		return negate(v)
	}
	return v
}

// Returns bit 31 of `v`
func signBit(v uint32) bool {
	return v>>31 != 0
}
