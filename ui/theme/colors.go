package theme

import "image/color"

// Dark palette for the title bar demo
var (
	// Background layers (darkest to lightest)
	ColorBackground     = color.NRGBA{R: 18, G: 18, B: 18, A: 255} // #121212
	ColorSurface        = color.NRGBA{R: 30, G: 30, B: 30, A: 255} // #1E1E1E
	ColorSurfaceVariant = color.NRGBA{R: 40, G: 40, B: 40, A: 255} // #282828
	ColorOverlay        = color.NRGBA{R: 50, G: 50, B: 50, A: 255} // #323232
	ColorTitleBar       = color.NRGBA{R: 24, G: 24, B: 24, A: 255} // #181818

	// Accent colors (Brand plum)
	ColorPrimary   = color.NRGBA{R: 92, G: 58, B: 88, A: 255}   // #5C3A58
	ColorSecondary = color.NRGBA{R: 125, G: 90, B: 121, A: 255} // #7D5A79

	// Text colors
	ColorTextPrimary   = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // #FFFFFF
	ColorTextSecondary = color.NRGBA{R: 158, G: 158, B: 158, A: 255} // #9E9E9E
	ColorTextDisabled  = color.NRGBA{R: 97, G: 97, B: 97, A: 255}    // #616161
	ColorTextHint      = color.NRGBA{R: 117, G: 117, B: 117, A: 255} // #757575

	// Subtitle colors per payload kind
	ColorSuccess = color.NRGBA{R: 76, G: 175, B: 80, A: 255} // #4CAF50
	ColorWarning = color.NRGBA{R: 255, G: 193, B: 7, A: 255} // #FFC107
	ColorError   = color.NRGBA{R: 244, G: 67, B: 54, A: 255} // #F44336

	// UI element colors
	ColorDivider     = color.NRGBA{R: 48, G: 48, B: 48, A: 255}   // #303030
	ColorInputBg     = color.NRGBA{R: 35, G: 35, B: 35, A: 255}   // #232323
	ColorHover       = color.NRGBA{R: 255, G: 255, B: 255, A: 20} // White with low opacity
	ColorPressed     = color.NRGBA{R: 255, G: 255, B: 255, A: 30} // White with higher opacity
	ColorFocusBorder = color.NRGBA{R: 92, G: 58, B: 88, A: 180}   // Primary with transparency
	ColorDisabledBg  = color.NRGBA{R: 38, G: 38, B: 38, A: 255}   // #262626
	ColorScrollbar   = color.NRGBA{R: 80, G: 80, B: 80, A: 255}   // #505050
)

// Blend blends two colors with a given weight (0.0 = first color, 1.0 = second color)
func Blend(c1, c2 color.Color, weight float64) color.Color {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()

	return color.NRGBA{
		R: uint8((float64(r1>>8)*(1-weight) + float64(r2>>8)*weight)),
		G: uint8((float64(g1>>8)*(1-weight) + float64(g2>>8)*weight)),
		B: uint8((float64(b1>>8)*(1-weight) + float64(b2>>8)*weight)),
		A: uint8((float64(a1>>8)*(1-weight) + float64(a2>>8)*weight)),
	}
}

// WithAlpha returns a color with modified alpha value
func WithAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.NRGBA{A: alpha}
	}
	// un-premultiply
	return color.NRGBA{
		R: uint8(r * 0xff / a),
		G: uint8(g * 0xff / a),
		B: uint8(b * 0xff / a),
		A: alpha,
	}
}

// ScaleAlpha multiplies the alpha of c by f in [0, 1].
func ScaleAlpha(c color.Color, f float32) color.Color {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	_, _, _, a := c.RGBA()
	return WithAlpha(c, uint8(float32(a>>8)*f))
}
