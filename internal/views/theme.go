package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// whiteTheme is the default light theme on a pure white background.
type whiteTheme struct{}

var _ fyne.Theme = whiteTheme{}

func (whiteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.White
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (whiteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (whiteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (whiteTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// WhiteTheme returns the application theme.
func WhiteTheme() fyne.Theme {
	return whiteTheme{}
}
