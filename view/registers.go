package view

import (
	"image/color"

	"github.com/zeozeozeo/restdiv/divider"
)

const (
	BIT_SIZE    int16 = 8 // Width and height of a bit cell
	BIT_GAP     int16 = 1
	HALF_GAP    int16 = 6 // Space between the guard bit, P and A
	ROW_X       int16 = 8
	SCREEN_W          = 640
	SCREEN_H          = 200
	NUM_REG_BIT       = 2*divider.WIDTH + 1 // guard bit, P and A
)

var (
	colorZero     = color.RGBA{0x20, 0x20, 0x28, 0xff}
	colorGuardOne = color.RGBA{0xe0, 0x30, 0x30, 0xff}
	colorPOne     = color.RGBA{0xf0, 0xa0, 0x20, 0xff}
	colorAOne     = color.RGBA{0x30, 0x90, 0xf0, 0xff}
	colorNewBit   = color.RGBA{0x40, 0xe0, 0x60, 0xff}
)

// Returns the x coordinate of register bit `bit` (64 is the guard bit,
// 63..32 are P, 31..0 are A)
func bitX(bit int) int16 {
	col := int16(NUM_REG_BIT - 1 - bit)
	x := ROW_X + col*(BIT_SIZE+BIT_GAP)
	if bit < 64 {
		x += HALF_GAP
	}
	if bit < 32 {
		x += HALF_GAP
	}
	return x
}

// Pushes one quad per register bit at row `y`. When `highlightQ` is set
// the quotient bit in A bit 0 is drawn in its own colour
func DrawRegister(dd *DrawData, reg divider.Register, y int16, highlightQ bool) {
	for bit := NUM_REG_BIT - 1; bit >= 0; bit-- {
		var one bool
		var clr color.RGBA
		switch {
		case bit == 64:
			one, clr = reg.Ext, colorGuardOne
		case bit >= 32:
			one, clr = reg.Bits>>uint(bit)&1 != 0, colorPOne
		default:
			one, clr = reg.Bits>>uint(bit)&1 != 0, colorAOne
		}
		if bit == 0 && highlightQ {
			clr = colorNewBit
		}
		if !one {
			clr = colorZero
		}
		dd.PushRect(bitX(bit), y, BIT_SIZE, BIT_SIZE, clr)
	}
}
