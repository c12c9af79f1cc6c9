// Package draw is textflow's boundary with a plan9 draw device. Layout
// only needs to measure text, so the boundary is a Font.
package draw

// Font measures text set in a plan9 font.
type Font interface {
	Name() string
	Height() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}
