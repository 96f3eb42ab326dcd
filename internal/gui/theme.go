package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"flip-clock/internal/settings"
)

// ClockTheme pins the toolkit theme to the clock's dark or light variant
// regardless of the desktop preference.
type ClockTheme struct {
	variant fyne.ThemeVariant
}

func NewClockTheme(t settings.Theme) *ClockTheme {
	variant := theme.VariantDark
	if t == settings.ThemeLight {
		variant = theme.VariantLight
	}
	return &ClockTheme{variant: variant}
}

func (c *ClockTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, c.variant)
}

func (c *ClockTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (c *ClockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (c *ClockTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

func (c *ClockTheme) Variant() fyne.ThemeVariant {
	return c.variant
}
