// Package textflowtest contains utility functions that help with testing textflow.
package textflowtest

import (
	"unicode/utf8"

	"github.com/rjkroege/textflow/draw"
)

// MockFontName is the name reported by mock fonts.
const MockFontName = "/lib/font/bit/lucsans/euro.8.font"

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font. Runes listed in widths have that advance,
// all others have width.
type mockFont struct {
	width, height int
	widths        map[rune]int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

// NewVariableFont returns a draw.Font in which the runes in widths have
// the given advances and every other rune is width pixels wide.
func NewVariableFont(width, height int, widths map[rune]int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
		widths: widths,
	}
}

func (f *mockFont) Name() string { return MockFontName }
func (f *mockFont) Height() int  { return f.height }

func (f *mockFont) runeWidth(r rune) int {
	if w, ok := f.widths[r]; ok {
		return w
	}
	return f.width
}

func (f *mockFont) BytesWidth(b []byte) int {
	w := 0
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		w += f.runeWidth(r)
		b = b[n:]
	}
	return w
}

func (f *mockFont) RunesWidth(r []rune) int {
	w := 0
	for _, c := range r {
		w += f.runeWidth(c)
	}
	return w
}

func (f *mockFont) StringWidth(s string) int {
	w := 0
	for _, c := range s {
		w += f.runeWidth(c)
	}
	return w
}
