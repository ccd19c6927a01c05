package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"navtitle/internal/config"
	"navtitle/models"
)

// Custom theme color names
const (
	ColorNameTitleBar       fyne.ThemeColorName = "titleBar"
	ColorNameSurface        fyne.ThemeColorName = "surface"
	ColorNameSurfaceVariant fyne.ThemeColorName = "surfaceVariant"
	ColorNameDivider        fyne.ThemeColorName = "divider"

	// Subtitle colors
	ColorNameSubtitleStandard fyne.ThemeColorName = "subtitleStandard"
	ColorNameSubtitleSuccess  fyne.ThemeColorName = "subtitleSuccess"
	ColorNameSubtitleWarning  fyne.ThemeColorName = "subtitleWarning"
	ColorNameSubtitleFailure  fyne.ThemeColorName = "subtitleFailure"

	// Text variants
	ColorNameTextSecondary fyne.ThemeColorName = "textSecondary"
)

// Custom size names
const (
	SizeNameTitleText    fyne.ThemeSizeName = "titleText"
	SizeNameSubtitleText fyne.ThemeSizeName = "subtitleText"
	SizeNameTitleBar     fyne.ThemeSizeName = "titleBarHeight"
)

// SubtitleColorName returns the theme color used for a payload kind.
func SubtitleColorName(kind models.Kind) fyne.ThemeColorName {
	switch kind {
	case models.KindSuccess:
		return ColorNameSubtitleSuccess
	case models.KindWarning:
		return ColorNameSubtitleWarning
	case models.KindFailure:
		return ColorNameSubtitleFailure
	default:
		return ColorNameSubtitleStandard
	}
}

// NavTitleTheme is the dark theme for the title bar demo
type NavTitleTheme struct{}

var _ fyne.Theme = (*NavTitleTheme)(nil)

// Color returns the color for the specified name
func (t *NavTitleTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	// Always use dark variant for our app
	switch name {
	// Core colors
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorTextPrimary
	case theme.ColorNamePrimary:
		return ColorPrimary
	case theme.ColorNameButton:
		return ColorPrimary

	// Input colors
	case theme.ColorNameInputBackground:
		return ColorInputBg
	case theme.ColorNameInputBorder:
		return ColorDivider
	case theme.ColorNamePlaceHolder:
		return ColorTextHint
	case theme.ColorNameFocus:
		return ColorFocusBorder

	// Selection colors
	case theme.ColorNameSelection:
		return WithAlpha(ColorPrimary, 80)
	case theme.ColorNameHover:
		return ColorHover
	case theme.ColorNamePressed:
		return ColorPressed

	// Disabled colors
	case theme.ColorNameDisabled:
		return ColorTextDisabled
	case theme.ColorNameDisabledButton:
		return ColorDisabledBg

	case theme.ColorNameScrollBar:
		return ColorScrollbar
	case theme.ColorNameSeparator:
		return ColorDivider

	// Status colors
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameWarning:
		return ColorWarning

	case theme.ColorNameShadow:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 100}

	// Menu/overlay
	case theme.ColorNameOverlayBackground:
		return ColorOverlay
	case theme.ColorNameMenuBackground:
		return ColorSurface
	case theme.ColorNameHeaderBackground:
		return ColorSurface

	// Custom colors
	case ColorNameTitleBar:
		return ColorTitleBar
	case ColorNameSurface:
		return ColorSurface
	case ColorNameSurfaceVariant:
		return ColorSurfaceVariant
	case ColorNameDivider:
		return ColorDivider
	case ColorNameSubtitleStandard, ColorNameTextSecondary:
		return ColorTextSecondary
	case ColorNameSubtitleSuccess:
		return ColorSuccess
	case ColorNameSubtitleWarning:
		return ColorWarning
	case ColorNameSubtitleFailure:
		return ColorError

	case theme.ColorNameHyperlink:
		return ColorSecondary

	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

// Font returns the font for the specified style
func (t *NavTitleTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon for the specified name
func (t *NavTitleTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name
func (t *NavTitleTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 4
	case theme.SizeNameText:
		return 14
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 6

	// Custom sizes
	case SizeNameTitleText:
		return config.TitleTextSize
	case SizeNameSubtitleText:
		return config.SubtitleTextSize
	case SizeNameTitleBar:
		return 52

	default:
		return theme.DefaultTheme().Size(name)
	}
}
