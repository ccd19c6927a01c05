package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"navtitle/models"
)

// Catppuccin Mocha
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	chevronStyle = lipgloss.NewStyle().
			Foreground(colorLavender)

	barStyle = lipgloss.NewStyle().
			Background(colorBase).
			Padding(0, 2).
			Align(lipgloss.Center)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorSurface1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	historyStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			PaddingLeft(2)
)

// kindColor is the subtitle color for a payload kind.
func kindColor(kind models.Kind) lipgloss.Color {
	switch kind {
	case models.KindSuccess:
		return colorGreen
	case models.KindWarning:
		return colorYellow
	case models.KindFailure:
		return colorRed
	default:
		return colorSubtext0
	}
}

// fadeColor blends from the bar background to fg by alpha. Terminals have no
// text opacity, so the fade is a color ramp.
func fadeColor(fg lipgloss.Color, alpha float64) lipgloss.Color {
	bg, err1 := colorful.Hex(string(colorBase))
	c, err2 := colorful.Hex(string(fg))
	if err1 != nil || err2 != nil {
		return fg
	}
	if alpha <= 0 {
		return colorBase
	}
	if alpha >= 1 {
		return fg
	}
	return lipgloss.Color(bg.BlendRgb(c, alpha).Clamped().Hex())
}
