package metrics

import "github.com/rjkroege/textflow/segment"

// variants holds the fonts used for each style variation. F is a font
// handle type such as draw.Font or font.Face.
type variants[F comparable] struct {
	regular    F
	bold       F
	italic     F
	boldItalic F
	scaled     map[float64]F
}

// Option configures the font variants of a Measurer.
type Option[F comparable] func(*variants[F])

// WithBold sets the font used for bold text.
func WithBold[F comparable](f F) Option[F] {
	return func(v *variants[F]) { v.bold = f }
}

// WithItalic sets the font used for italic text.
func WithItalic[F comparable](f F) Option[F] {
	return func(v *variants[F]) { v.italic = f }
}

// WithBoldItalic sets the font used for bold italic text.
func WithBoldItalic[F comparable](f F) Option[F] {
	return func(v *variants[F]) { v.boldItalic = f }
}

// WithScaled sets the font used for text with the given scale.
func WithScaled[F comparable](scale float64, f F) Option[F] {
	return func(v *variants[F]) {
		if v.scaled == nil {
			v.scaled = make(map[float64]F)
		}
		v.scaled[scale] = f
	}
}

func newVariants[F comparable](regular F, opts []Option[F]) *variants[F] {
	v := &variants[F]{regular: regular}
	for _, o := range opts {
		o(v)
	}
	return v
}

// forStyle returns the font for st, falling back to the regular font when
// no variant was configured.
func (v *variants[F]) forStyle(st segment.Style) F {
	var none F

	// Scale takes precedence over weight and slant.
	if s := st.EffectiveScale(); s != 1.0 && v.scaled != nil {
		if f, ok := v.scaled[s]; ok {
			return f
		}
	}

	if st.Bold && st.Italic {
		if v.boldItalic != none {
			return v.boldItalic
		}
	} else if st.Bold {
		if v.bold != none {
			return v.bold
		}
	} else if st.Italic {
		if v.italic != none {
			return v.italic
		}
	}
	return v.regular
}
