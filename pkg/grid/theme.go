package grid

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	defaultTextColor   = lipgloss.Color("248")
	defaultBGColor     = lipgloss.Color("236")
	defaultAccentColor = lipgloss.Color("12")
)

// Theme overrides the renderer colors for a single column. Nil fields fall
// back to the grid defaults (ANSI 256 codes).
type Theme struct {
	TextColor       color.Color
	BackgroundColor color.Color
	AccentColor     color.Color
}

// Styles resolves the theme into concrete lipgloss styles for cell text and
// the column header, applying defaults for unset fields.
func (t *Theme) Styles() (text, header lipgloss.Style) {
	tc := color.Color(defaultTextColor)
	bg := color.Color(defaultBGColor)
	ac := color.Color(defaultAccentColor)
	if t != nil {
		if t.TextColor != nil {
			tc = t.TextColor
		}
		if t.BackgroundColor != nil {
			bg = t.BackgroundColor
		}
		if t.AccentColor != nil {
			ac = t.AccentColor
		}
	}
	text = lipgloss.NewStyle().Foreground(tc)
	header = lipgloss.NewStyle().Bold(true).Foreground(ac).Background(bg)
	return text, header
}
