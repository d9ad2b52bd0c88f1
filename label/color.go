package label

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB converts a 0xRRGGBB value into an opaque color.
func RGB(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// ParseHex accepts "#RRGGBB", "0xRRGGBB" or bare "RRGGBB".
func ParseHex(s string) (color.RGBA, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "#")
	if len(v) > 2 && (v[:2] == "0x" || v[:2] == "0X") {
		v = v[2:]
	}
	if len(v) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(uint32(n)), nil
}

// Hex formats c as "#RRGGBB", dropping alpha.
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
