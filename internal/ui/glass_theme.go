package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette shared by the theme and the display
var (
	ColorWater      = color.NRGBA{R: 0, G: 200, B: 255, A: 255}
	ColorWaterDeep  = color.NRGBA{R: 8, G: 52, B: 94, A: 255}
	ColorGlass      = color.NRGBA{R: 255, G: 255, B: 255, A: 36}
	ColorGlassHover = color.NRGBA{R: 255, G: 255, B: 255, A: 64}
	ColorAccent     = color.NRGBA{R: 200, G: 0, B: 255, A: 255}
	ColorGold       = color.NRGBA{R: 255, G: 200, B: 60, A: 255}
	ColorDestroy    = color.NRGBA{R: 255, G: 0, B: 100, A: 255}
)

// GlassTheme is a dark, translucent "water glass" theme with larger keypad text
type GlassTheme struct{}

// NewGlassTheme creates a new glass theme
func NewGlassTheme() fyne.Theme {
	return &GlassTheme{}
}

// Color returns theme colors
func (t *GlassTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return ColorWater
	case theme.ColorNameError:
		return ColorDestroy
	case theme.ColorNameWarning:
		return ColorGold
	case theme.ColorNameSuccess:
		return ColorAccent
	case theme.ColorNameButton:
		return ColorGlass
	case theme.ColorNameHover:
		return ColorGlassHover
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return color.NRGBA{R: 214, G: 236, B: 248, A: 255}
		}
		return ColorWaterDeep
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return color.NRGBA{R: 12, G: 30, B: 48, A: 255}
		}
		return color.White
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GlassTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GlassTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes tuned for a keypad
func (t *GlassTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 10 // Taller buttons
	case theme.SizeNameText:
		return 16 // Larger than default 14
	case theme.SizeNameInputRadius:
		return 14 // Rounded glass buttons
	case theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
