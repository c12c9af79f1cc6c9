// Package metrics implements segment.Metrics for the rendering back ends
// textflow knows about: plan9 fonts, golang.org/x/image font faces and
// terminal character cells.
package metrics

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/rjkroege/textflow/segment"
)

// tabWidth is the advance of a tab, in spaces.
const tabWidth = 4

// lookahead is how far past the first overflowing character MaxDrawable
// reads so that line break opportunities near it are classified with
// their context.
const lookahead = 64

// advancer reports per-rune widths and the line height for a style.
type advancer interface {
	advance(r rune, st segment.Style) int
	height(st segment.Style) int
}

// Measurer implements segment.Metrics on top of per-rune advances.
type Measurer struct {
	adv advancer
}

var _ segment.Metrics = (*Measurer)(nil)

func (m *Measurer) width(r rune, st segment.Style) int {
	switch r {
	case '\n':
		return 0
	case '\t':
		return tabWidth * m.adv.advance(' ', st)
	}
	return m.adv.advance(r, st)
}

// Height returns the line height of st.
func (m *Measurer) Height(st segment.Style) int {
	return m.adv.height(st)
}

// Measure returns the extent of text[start:start+n].
func (m *Measurer) Measure(text []rune, start, n int, st segment.Style) (int, int, bool) {
	w := 0
	for _, r := range text[start : start+n] {
		w += m.width(r, st)
	}
	return w, m.adv.height(st), n > 0 && text[start+n-1] == '\n'
}

// CharAt returns the offset from start of the character boundary at x.
func (m *Measurer) CharAt(text []rune, start, x, maxChars int, round bool, st segment.Style) int {
	cum := 0
	i := 0
	for ; i < maxChars && start+i < len(text); i++ {
		r := text[start+i]
		if r == '\n' {
			return i
		}
		w := m.width(r, st)
		if round {
			if 2*(x-cum) < w {
				return i
			}
		} else if x < cum+w {
			return i
		}
		cum += w
	}
	return i
}

// hangs reports whether r may extend past the right edge at a line end.
func hangs(r rune) bool {
	return r != '\n' && r != '\u00a0' && unicode.IsSpace(r)
}

// MaxDrawable returns how many characters from start fit in pixels.
// Candidate line ends are the Unicode line break opportunities; whitespace
// before an opportunity hangs and is not counted against pixels.
func (m *Measurer) MaxDrawable(text []rune, start, pixels, maxChars int, wrap segment.WrapStyle, st segment.Style) int {
	end := start + maxChars
	if end > len(text) {
		end = len(text)
	}
	for i, x := start, 0; i < end; i++ {
		r := text[i]
		if r == '\n' {
			end = i
			break
		}
		if hangs(r) {
			continue
		}
		if x += m.width(r, st); x > pixels && i+1+lookahead < end {
			end = i + 1 + lookahead
		}
	}
	if end <= start {
		return 0
	}

	x, n := 0, 0
	rest := string(text[start:end])
	state := -1
	for len(rest) > 0 {
		var seg string
		seg, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
		rs := []rune(seg)
		body := len(rs)
		for body > 0 && hangs(rs[body-1]) {
			body--
		}
		w := 0
		for _, r := range rs[:body] {
			w += m.width(r, st)
		}
		if x+w > pixels {
			if wrap == segment.WrapAnywhere || (wrap == segment.WrapIfPossible && n == 0) {
				for _, r := range rs[:body] {
					cw := m.width(r, st)
					if x+cw > pixels {
						break
					}
					x += cw
					n++
				}
			}
			return n
		}
		x += w
		for _, r := range rs[body:] {
			x += m.width(r, st)
		}
		n += len(rs)
	}
	return n
}
