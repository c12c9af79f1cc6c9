package segment

import "image/color"

// Style defines the visual attributes shared by the text of a segment.
// Styles are values: a segment that changes appearance gets a new Style,
// the old one is never modified.
type Style struct {
	// Colors (nil means use default)
	Fg color.Color
	Bg color.Color

	// Font variations
	Bold      bool
	Italic    bool
	Underline bool

	// Size multiplier (1.0 = normal body text). Zero is treated as 1.0.
	Scale float64

	// Link is the hyperlink target for text in this style, if any.
	Link string

	// ReadOnly text cannot be edited even when its segment kind allows it.
	ReadOnly bool
}

// DefaultStyle returns the default body text style.
func DefaultStyle() Style {
	return Style{Scale: 1.0}
}

// LinkBlue is the standard blue color for hyperlinks.
var LinkBlue = color.RGBA{R: 0, G: 0, B: 238, A: 255}

// Common styles
var (
	StyleBold     = Style{Bold: true, Scale: 1.0}
	StyleItalic   = Style{Italic: true, Scale: 1.0}
	StyleReadOnly = Style{ReadOnly: true, Scale: 1.0}
)

// LinkStyle returns a style for a hyperlink to target.
func LinkStyle(target string) Style {
	return Style{Link: target, Fg: LinkBlue, Underline: true, Scale: 1.0}
}

// EffectiveScale returns the size multiplier with the zero value mapped to 1.
func (s Style) EffectiveScale() float64 {
	if s.Scale == 0 {
		return 1.0
	}
	return s.Scale
}

// Equal reports whether s and o describe the same appearance.
func (s Style) Equal(o Style) bool {
	return s.Bold == o.Bold &&
		s.Italic == o.Italic &&
		s.Underline == o.Underline &&
		s.EffectiveScale() == o.EffectiveScale() &&
		s.Link == o.Link &&
		s.ReadOnly == o.ReadOnly &&
		sameColor(s.Fg, o.Fg) &&
		sameColor(s.Bg, o.Bg)
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
