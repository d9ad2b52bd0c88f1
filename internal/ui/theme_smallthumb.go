package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// compactTheme halves the inline icon size, which Fyne uses for slider thumbs,
// and tightens padding so the control bar stays a single narrow strip.
type compactTheme struct{ fyne.Theme }

func (t compactTheme) Size(n fyne.ThemeSizeName) float32 {
	base := t.Theme.Size(n)
	switch n {
	case theme.SizeNameInlineIcon:
		return base * 0.5
	case theme.SizeNamePadding, theme.SizeNameInnerPadding:
		return base * 0.75
	}
	return base
}

// UseCompactTheme wraps the current app theme.
func UseCompactTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(compactTheme{Theme: app.Settings().Theme()})
}
