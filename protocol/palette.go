package protocol

import "github.com/lucasb-eyer/go-colorful"

// TextColor is one entry of the compositor's text palette.
type TextColor struct {
	R, G, B uint8
}

// TextPalette maps color_index 1..MaxColorIndex to truecolor values:
// white and mid-gray, then sixteen evenly spaced hues. Index 0 is
// unused so the table lines up with the wire indices.
var TextPalette = buildTextPalette()

func buildTextPalette() [MaxColorIndex + 1]TextColor {
	var p [MaxColorIndex + 1]TextColor

	white := colorful.Hsl(0, 0, 1.0)
	gray := colorful.Hsl(0, 0, 0.62)
	p[1] = toTextColor(white)
	p[2] = toTextColor(gray)

	for i := 0; i < 16; i++ {
		c := colorful.Hsl(float64(i)*22.5, 0.85, 0.60)
		p[i+3] = toTextColor(c)
	}
	return p
}

func toTextColor(c colorful.Color) TextColor {
	r, g, b := c.Clamped().RGB255()
	return TextColor{R: r, G: g, B: b}
}

// PaletteColor resolves a wire color index, rejecting out-of-range
// values the same way command validation does.
func PaletteColor(index int) (TextColor, error) {
	if err := checkRange("color", index, MinColorIndex, MaxColorIndex); err != nil {
		return TextColor{}, err
	}
	return TextPalette[index], nil
}
