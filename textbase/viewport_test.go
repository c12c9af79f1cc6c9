package textbase

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rjkroege/textflow/layout"
	"github.com/rjkroege/textflow/metrics"
)

// tenLines returns a document of ten one-line rows "line 0" to "line 9".
func tenLines(t *testing.T, opts ...Option) *Document {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "line %d", i)
	}
	return newDoc(t, b.String(), opts...)
}

func TestClickAtGlyphMidpoint(t *testing.T) {
	d := New(metrics.NewFixed(2, ch))
	if _, err := d.InsertString(0, "ab"); err != nil {
		t.Fatal(err)
	}
	if got := d.LocalCoordToDocIndex(1, 1, true, false); got != 1 {
		t.Errorf("round: got %d, want 1", got)
	}
	if got := d.LocalCoordToDocIndex(1, 1, false, false); got != 0 {
		t.Errorf("no round: got %d, want 0", got)
	}
	if got := d.LocalCoordToDocIndex(0, 1, true, false); got != 0 {
		t.Errorf("left edge: got %d, want 0", got)
	}
}

func TestLocalCoordToDocIndex(t *testing.T) {
	d := newDoc(t, "hello\nworld", WithSize(100, 0))
	wrapped := newDoc(t, "hello world", WithWordWrap(true), WithSize(5*cw, 0))

	tests := []struct {
		name            string
		d               *Document
		x, y            int
		round, pastLine bool
		want            int
	}{
		{"first character", d, 3, 3, false, false, 0},
		{"second line", d, 25, 15, false, false, 8},
		{"second line rounded", d, 25, 15, true, false, 9},
		{"right of a newline", d, 95, 5, false, false, 5},
		{"right of the last line", d, 95, 15, false, false, 11},
		{"below the text", d, 25, 100, false, false, 11},
		{"below the text onto the last line", d, 25, 100, false, true, 8},
		{"left of the text", d, -5, 15, false, false, 6},
		{"right of a wrapped line", wrapped, 95, 5, false, false, 6},
		{"right of a wrapped line staying on it", wrapped, 95, 5, false, true, 5},
		{"on the wrapped line", wrapped, 15, 15, false, false, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.LocalCoordToDocIndex(tc.x, tc.y, tc.round, tc.pastLine); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDocIndexToLocalRect(t *testing.T) {
	d := newDoc(t, "hello\nworld", WithSize(100, 0), WithPadding(4, 2))
	tests := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(4, 2, 4, 2+ch)},
		{5, image.Rect(54, 2, 54, 2+ch)},
		{6, image.Rect(4, 2+ch, 4, 2+2*ch)},
		{8, image.Rect(24, 2+ch, 24, 2+2*ch)},
		{11, image.Rect(54, 2+ch, 54, 2+2*ch)},
	}
	for _, tc := range tests {
		got, err := d.DocIndexToLocalRect(tc.index)
		if err != nil {
			t.Fatalf("%d: %v", tc.index, err)
		}
		if got != tc.want {
			t.Errorf("%d: got %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	d := newDoc(t, "abc\ndefgh\n\nij klm nop", WithWordWrap(true), WithSize(8*cw, 3*ch), WithPadding(3, 1))
	d.SetScroll(image.Pt(0, ch))
	for _, l := range d.Lines() {
		y := l.Rect.Min.Y + l.Rect.Dy()/2 - d.Scroll().Y
		for x := l.Rect.Min.X; x < l.Rect.Max.X; x++ {
			i := d.LocalCoordToDocIndex(x, y, false, true)
			r, err := d.DocIndexToLocalRect(i)
			if err != nil {
				t.Fatal(err)
			}
			if x < r.Min.X || x-r.Min.X >= cw || y < r.Min.Y || y >= r.Max.Y {
				t.Errorf("(%d,%d) maps to %d at %v", x, y, i, r)
			}
		}
	}
}

func TestVisibleLines(t *testing.T) {
	d := tenLines(t, WithSize(100, 3*ch+5))
	tests := []struct {
		scroll            int
		full              bool
		wantFirst, wantLast int
	}{
		{0, false, 0, 4},
		{0, true, 0, 3},
		{6, false, 0, 4},
		{6, true, 1, 3},
		{ch, true, 1, 4},
	}
	for _, tc := range tests {
		d.SetScroll(image.Pt(0, tc.scroll))
		first, last := d.VisibleLines(tc.full)
		if first != tc.wantFirst || last != tc.wantLast {
			t.Errorf("scroll %d full %v: got [%d,%d), want [%d,%d)", tc.scroll, tc.full, first, last, tc.wantFirst, tc.wantLast)
		}
	}
}

func TestLineQueries(t *testing.T) {
	d := newDoc(t, "hello world\nbye", WithWordWrap(true), WithSize(5*cw, 0))
	if diff := cmp.Diff([]extent{{0, 6, 0}, {6, 12, 0}, {12, 15, 1}}, extents(d)); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if got := d.LineCount(); got != 3 {
		t.Errorf("LineCount got %d, want 3", got)
	}
	for i, want := range []struct{ start, end int }{{0, 6}, {6, 12}, {12, 15}} {
		s, err1 := d.LineStart(i)
		e, err2 := d.LineEnd(i)
		if err1 != nil || err2 != nil || s != want.start || e != want.end {
			t.Errorf("line %d: got [%d,%d) %v %v, want [%d,%d)", i, s, e, err1, err2, want.start, want.end)
		}
	}

	tests := []struct {
		index                int
		visual, logical      int
		visualOff, logicalOff int
	}{
		{0, 0, 0, 0, 0},
		{8, 1, 0, 2, 8},
		{12, 2, 1, 0, 0},
		{15, 2, 1, 3, 3},
	}
	for _, tc := range tests {
		v, _ := d.LineNumFromDocIndex(tc.index, true)
		l, _ := d.LineNumFromDocIndex(tc.index, false)
		vo, _ := d.LineOffsetFromDocIndex(tc.index, true)
		lo, _ := d.LineOffsetFromDocIndex(tc.index, false)
		if v != tc.visual || l != tc.logical || vo != tc.visualOff || lo != tc.logicalOff {
			t.Errorf("%d: got line %d/%d offset %d/%d, want %d/%d offset %d/%d",
				tc.index, v, l, vo, lo, tc.visual, tc.logical, tc.visualOff, tc.logicalOff)
		}
	}
}

func TestTextBoundingRect(t *testing.T) {
	d := newDoc(t, "ab\nlonger\nc", WithSize(100, 0), WithPadding(5, 5))
	if got, want := d.TextBoundingRect(), image.Rect(5, 5, 65, 5+3*ch); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAlignment(t *testing.T) {
	d := newDoc(t, "ab", WithSize(100, 0), WithAlign(layout.AlignCenter))
	r, _ := d.DocIndexToLocalRect(0)
	if r.Min.X != 40 {
		t.Errorf("centered caret at %d, want 40", r.Min.X)
	}
	if got := d.LocalCoordToDocIndex(45, 5, false, false); got != 0 {
		t.Errorf("click in centered text got %d, want 0", got)
	}
}

func TestScrollToShowIndex(t *testing.T) {
	d := tenLines(t, WithSize(100, 3*ch))
	start, _ := d.LineStart(6)
	if err := d.ScrollToShowIndex(start); err != nil {
		t.Fatal(err)
	}
	if got := d.Scroll().Y; got != 4*ch {
		t.Errorf("scrolled to %d, want %d", got, 4*ch)
	}
	if first, last := d.VisibleLines(true); first > 6 || last <= 6 {
		t.Errorf("line 6 not in view: [%d,%d)", first, last)
	}
	if err := d.ScrollToShowIndex(start + 2); err != nil {
		t.Fatal(err)
	}
	if got := d.Scroll().Y; got != 4*ch {
		t.Errorf("scrolling to a visible index moved the view to %d", got)
	}
	if err := d.ScrollToShowIndex(0); err != nil {
		t.Fatal(err)
	}
	if !d.ScrolledToStart() {
		t.Errorf("not at the start after showing index 0, scroll %v", d.Scroll())
	}
	if err := d.ScrollToShowIndex(d.Len()); err != nil {
		t.Fatal(err)
	}
	if !d.ScrolledToEnd() {
		t.Errorf("not at the end after showing the last index, scroll %v", d.Scroll())
	}
	if err := d.ScrollToShowRange(0, d.Len()+1); err == nil {
		t.Error("showing a range past the end succeeded")
	}
}

func TestSetScrollClamps(t *testing.T) {
	d := tenLines(t, WithSize(100, 3*ch))
	d.SetScroll(image.Pt(-5, -5))
	if got := d.Scroll(); got != (image.Point{}) {
		t.Errorf("got %v, want the origin", got)
	}
	d.SetScroll(image.Pt(0, 1000))
	if got := d.Scroll().Y; got != 7*ch {
		t.Errorf("got %d, want %d", got, 7*ch)
	}
	if !d.ScrolledToEnd() || d.ScrolledToStart() {
		t.Error("wrong scroll end flags at the bottom")
	}
	if got, want := d.VisibleDocumentRect(), image.Rect(0, 7*ch, 100, 10*ch); got != want {
		t.Errorf("visible rect %v, want %v", got, want)
	}
}

func TestScrollAnchor(t *testing.T) {
	d := tenLines(t, WithSize(100, 3*ch))
	d.SetScroll(image.Pt(0, 4*ch+3))
	if _, err := d.InsertString(0, "new\nnew\n"); err != nil {
		t.Fatal(err)
	}
	if got, want := d.Scroll().Y, 6*ch+3; got != want {
		t.Errorf("scroll %d after inserting two lines above, want %d", got, want)
	}
	first, _ := d.VisibleLines(false)
	start, _ := d.LineStart(first)
	end, _ := d.LineEnd(first)
	if got := d.String()[start:end]; got != "line 4\n" {
		t.Errorf("first visible line %q, want %q", got, "line 4\n")
	}
}

func TestTrackEnd(t *testing.T) {
	d := newDoc(t, "", WithSize(100, 3*ch), WithTrackEnd(true), WithReadOnly(true))
	for i := 0; i < 6; i++ {
		d.AppendText(fmt.Sprintf("message %d", i), i > 0, d.Style())
		if !d.ScrolledToEnd() {
			t.Fatalf("message %d: not at the end, scroll %v", i, d.Scroll())
		}
	}
	if got := d.Scroll().Y; got != 3*ch {
		t.Errorf("scroll %d, want %d", got, 3*ch)
	}

	d.SetScroll(image.Pt(0, 0))
	d.AppendText("message 6", true, d.Style())
	if !d.ScrolledToStart() {
		t.Errorf("view followed the end after scrolling away, scroll %v", d.Scroll())
	}

	d.SetScroll(image.Pt(0, 1000))
	d.AppendText("message 7", true, d.Style())
	if got := d.Scroll().Y; got != 5*ch {
		t.Errorf("scroll %d after returning to the end, want %d", got, 5*ch)
	}
}

func TestSelectionRects(t *testing.T) {
	d := newDoc(t, "hello\nworld", WithSize(100, 0))
	if got := d.SelectionRects(); got != nil {
		t.Errorf("rects %v with nothing selected", got)
	}
	if err := d.SetSelection(8, 3); err != nil {
		t.Fatal(err)
	}
	if got, want := d.Selection(), (Range{3, 8}); got != want {
		t.Errorf("selection %v, want %v", got, want)
	}
	want := []image.Rectangle{
		image.Rect(30, 0, 50, ch),
		image.Rect(0, ch, 20, 2*ch),
	}
	if diff := cmp.Diff(want, d.SelectionRects()); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
}
