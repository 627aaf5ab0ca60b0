package colors

import (
	"image/color"
	"math"
	"strings"
)

type ColorBlindMode int

var SupportedColorBlindModes = [...]string{
	Normal,
	Universal,
	Protanopia,
	Tritanopia,
	Deuteranomaly,
}

const (
	Normal        = "Normal"
	Universal     = "Universal"
	Protanopia    = "Protanopia"
	Tritanopia    = "Tritanopia"
	Deuteranomaly = "Deuteranomaly"
	Unknown       = "Unknown"
)

const (
	ModeNormal        ColorBlindMode = iota // Green → Yellow → Red
	ModeUniversal                           // Blue → Gray → Orange
	ModeProtanopia                          // Blue → White → Brown
	ModeTritanopia                          // Teal → Gray → Red
	ModeDeuteranomaly                       // Blue → Beige → Brown
)

func (m ColorBlindMode) String() string {
	switch m {
	case ModeNormal:
		return Normal
	case ModeUniversal:
		return Universal
	case ModeProtanopia:
		return Protanopia
	case ModeTritanopia:
		return Tritanopia
	case ModeDeuteranomaly:
		return Deuteranomaly
	default:
		return Unknown
	}
}

func StringToColorBlindMode(s string) ColorBlindMode {
	for i, name := range SupportedColorBlindModes {
		if strings.EqualFold(s, name) {
			return ColorBlindMode(i)
		}
	}
	return ModeNormal
}

// Stops are the low, mid and high colors of the speed gradient.
type Stops struct {
	Low, Mid, High color.RGBA
}

// Palette returns the gradient stops for mode.
func Palette(mode ColorBlindMode) Stops {
	switch mode {
	case ModeUniversal:
		return Stops{
			Low:  color.RGBA{33, 102, 172, 255},  // #2166AC
			Mid:  color.RGBA{247, 247, 247, 255}, // #F7F7F7
			High: color.RGBA{255, 165, 0, 255},   // #FFA500
		}
	case ModeProtanopia:
		return Stops{
			Low:  color.RGBA{5, 113, 176, 255},   // #0571B0
			Mid:  color.RGBA{247, 247, 247, 255}, // #F7F7F7
			High: color.RGBA{150, 75, 0, 255},    // #964B00
		}
	case ModeTritanopia:
		return Stops{
			Low:  color.RGBA{0, 128, 128, 255},   // #008080
			Mid:  color.RGBA{247, 247, 247, 255}, // #F7F7F7
			High: color.RGBA{215, 48, 39, 255},   // #D73027
		}
	case ModeDeuteranomaly:
		return Stops{
			Low:  color.RGBA{0x4A, 0x90, 0xE2, 255}, // #4A90E2
			Mid:  color.RGBA{0xF5, 0xE6, 0xB3, 255}, // #F5E6B3
			High: color.RGBA{0x8B, 0x45, 0x13, 255}, // #8B4513
		}
	default:
		return Stops{
			Low:  color.RGBA{0, 255, 0, 255},
			Mid:  color.RGBA{255, 255, 0, 255},
			High: color.RGBA{255, 0, 0, 255},
		}
	}
}

// At returns the color at t in [0, 1] with the mid stop at 0.5.
func (s Stops) At(t float64) color.RGBA {
	if math.IsNaN(t) {
		return color.RGBA{128, 128, 128, 255}
	}
	t = math.Max(0, math.Min(1, t))
	const divider = 0.5
	if t < divider {
		return lerpColor(s.Low, s.Mid, t/divider)
	}
	return lerpColor(s.Mid, s.High, (t-divider)/(1-divider))
}

// Interpolate returns the gradient color for value within [min, max].
func (s Stops) Interpolate(min, max, value float64) color.RGBA {
	return s.At((value - min) / (max - min))
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(lerp(float64(c1.R), float64(c2.R), t))),
		G: uint8(math.Round(lerp(float64(c1.G), float64(c2.G), t))),
		B: uint8(math.Round(lerp(float64(c1.B), float64(c2.B), t))),
		A: 255,
	}
}
