package bitmap

import (
	"image"
	"image/color"
)

// RGB565 is the pixel format of the serial panels: 5 bits red, 6 bits green,
// 5 bits blue, stored little endian.
//
//    bit 76543210  76543210
//        RRRRRGGG  GGGBBBBB
//       high byte  low byte
type RGB565 uint16

// Model converts any color to RGB565, dropping alpha.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return FromRGB(r, g, b)
})

// FromRGB keeps the highest 5 or 6 bits of 16 bit channels.
func FromRGB(r, g, b uint32) RGB565 {
	return RGB565((r & 0xF800) + ((g & 0xFC00) >> 5) + ((b & 0xF800) >> 11))
}

// RGBA implements color.Color. Short channels are widened by repeating
// their bit pattern so that 0 and the channel maximum map to 0 and 0xFFFF.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xF800)
	gBits := uint32(c & 0x7E0)
	bBits := uint32(c & 0x1F)
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}

// Encode packs src row by row, two bytes per pixel.
func Encode(src image.Image) []byte {
	b := src.Bounds()
	buf := make([]byte, 0, 2*b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := Model.Convert(src.At(x, y)).(RGB565)
			buf = append(buf, byte(px&0xFF), byte(px>>8))
		}
	}
	return buf
}
