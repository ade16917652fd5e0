package emulator

// Global interconnect. It stores all of the peripherals
type Interconnect struct {
	Rom      *ROM  // Program memory
	RomRange Range // Where the ROM is mapped
}

// Creates a new interconnect instance with `rom` mapped at RESET_PC
func NewInterconnect(rom *ROM) *Interconnect {
	inter := &Interconnect{
		Rom:      rom,
		RomRange: NewRange(RESET_PC, rom.Size()),
	}
	return inter
}

// Returns true if `addr` holds a word of program memory
func (inter *Interconnect) Mapped(addr uint32) bool {
	return addr%4 == 0 && inter.RomRange.Contains(addr)
}

// Returns a 32bit little endian value at `addr`. Panics
// if the address does not exist
func (inter *Interconnect) Load32(addr uint32) uint32 {
	if inter.Mapped(addr) {
		return inter.Rom.Load32(inter.RomRange.Offset(addr))
	}

	panicFmt("interconnect: unhandled load32 at address 0x%x", addr)
	return 0
}
