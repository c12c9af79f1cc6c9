package segment

// WrapStyle selects where MaxDrawable may end a run that does not fit.
type WrapStyle int

const (
	// WrapIfPossible ends at the last break opportunity in range, or
	// anywhere if the range has none.
	WrapIfPossible WrapStyle = iota
	// OnlyAtWordBoundary ends at a break opportunity or returns 0.
	OnlyAtWordBoundary
	// WrapAnywhere ends at the last character that fits.
	WrapAnywhere
)

func (w WrapStyle) String() string {
	switch w {
	case WrapIfPossible:
		return "WrapIfPossible"
	case OnlyAtWordBoundary:
		return "OnlyAtWordBoundary"
	case WrapAnywhere:
		return "WrapAnywhere"
	}
	return "WrapStyle(?)"
}

// Metrics measures spans of document text. It is supplied by the
// rendering layer; see package metrics for implementations.
//
// In every method text is the whole document, start is the index of the
// first character of the span and the span never extends past len(text).
type Metrics interface {
	// Measure returns the pixel extent of the n characters at start and
	// whether the span ends with a hard line break.
	Measure(text []rune, start, n int, st Style) (width, height int, breaks bool)

	// CharAt returns the offset from start of the character boundary at
	// pixel x, examining at most maxChars characters. With round set a
	// position in the right half of a glyph maps to the boundary after it.
	CharAt(text []rune, start, x, maxChars int, round bool, st Style) int

	// MaxDrawable returns how many of the maxChars characters at start fit
	// in pixels, ending the run according to wrap. It never counts past a
	// '\n'.
	MaxDrawable(text []rune, start, pixels, maxChars int, wrap WrapStyle, st Style) int

	// Height returns the line height of text in st.
	Height(st Style) int
}

// Context is what a segment needs to measure itself. It is passed
// explicitly to every segment operation.
type Context struct {
	Text    []rune
	Metrics Metrics

	// Width is the available text width, used by inline widgets whose
	// size depends on it.
	Width int
}
