package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var colorMap = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"gray":    {136, 136, 136, 255},
	"grey":    {136, 136, 136, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"orange":  {255, 165, 0, 255},
}

// Parse accepts a color name, "#RRGGBB", "#AARRGGBB" or a decimal/0x
// ARGB integer like the ones found in platform style attributes.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorMap[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		switch len(hex) {
		case 6:
			return FromARGB(uint32(v) | 0xFF000000), nil
		case 8:
			return FromARGB(uint32(v)), nil
		}
		return color.RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return FromARGB(uint32(v)), nil
}

// FromARGB unpacks a 0xAARRGGBB integer. Alpha is premultiplied into the
// channels so the result is a valid color.RGBA.
func FromARGB(v uint32) color.RGBA {
	a := uint8(v >> 24)
	r, g, b := uint8(v>>16), uint8(v>>8), uint8(v)
	if a == 0xFF {
		return color.RGBA{r, g, b, a}
	}
	c := color.NRGBA{R: r, G: g, B: b, A: a}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Hex formats c as "#RRGGBB", dropping alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
