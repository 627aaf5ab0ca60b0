package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Background matches the default surface clear color of the PNG renderer.
var Background = color.RGBA{R: 23, G: 23, B: 24, A: 255}

// GaugeTheme is the dark theme used by the demo window.
type GaugeTheme struct{}

func (m GaugeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return Background
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0x2C, G: 0xFC, B: 0x03, A: 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m GaugeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m GaugeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m GaugeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameInnerPadding:
		return 8
	}
	return theme.DefaultTheme().Size(name)
}
