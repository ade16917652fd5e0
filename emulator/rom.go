package emulator

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const ROM_MAX_SIZE uint32 = 512 * 1024 // Same window as the PlayStation BIOS

// Program memory the CPU fetches instructions from
type ROM struct {
	Data []byte // Raw little endian program words
}

// Creates a ROM holding `words`
func NewROM(words []uint32) *ROM {
	data := make([]byte, len(words)*4)
	for i, word := range words {
		binary.LittleEndian.PutUint32(data[i*4:], word)
	}
	return &ROM{Data: data}
}

// Loads a ROM image from a reader. The image must be a whole number of
// words and at most ROM_MAX_SIZE bytes
func LoadROM(r io.Reader) (*ROM, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(ROM_MAX_SIZE)+1))
	if err != nil {
		return nil, errors.Wrap(err, "read rom")
	}
	if uint32(len(data)) > ROM_MAX_SIZE {
		return nil, errors.Errorf("rom too large (max %d bytes)", ROM_MAX_SIZE)
	}
	if len(data)%4 != 0 {
		return nil, errors.Errorf("rom size %d is not a multiple of 4", len(data))
	}
	return &ROM{Data: data}, nil
}

// Size in bytes
func (rom *ROM) Size() uint32 {
	return uint32(len(rom.Data))
}

// Returns a 32 bit little endian value at `offset`. Note that `offset` is
// not the absolute address used by the CPU, instead it is an offset in the
// ROM memory range
func (rom *ROM) Load32(offset uint32) uint32 {
	return binary.LittleEndian.Uint32(rom.Data[offset:])
}
