package textbase

import (
	"fmt"
	"image"
	"math"

	"github.com/rjkroege/textflow/layout"
	"github.com/rjkroege/textflow/segment"
)

// SetViewSize changes the size of the view. A width change relays the
// whole document on the next query.
func (d *Document) SetViewSize(width, height int) {
	d.view = image.Pt(width, height)
	d.Reflow()
	d.clampScroll()
}

// ViewSize returns the size of the view.
func (d *Document) ViewSize() image.Point { return d.view }

// Lines returns the up to date line table. The slice is owned by the
// document.
func (d *Document) Lines() []layout.Line {
	d.Reflow()
	return d.lines.Lines()
}

// LineCount returns the number of visual lines.
func (d *Document) LineCount() int {
	d.Reflow()
	return d.lines.Len()
}

// LineStart returns the index of the first character of visual line i.
func (d *Document) LineStart(i int) (int, error) {
	l, err := d.line(i)
	return l.Start, err
}

// LineEnd returns the index just past the last character of visual
// line i.
func (d *Document) LineEnd(i int) (int, error) {
	l, err := d.line(i)
	return l.End, err
}

func (d *Document) line(i int) (layout.Line, error) {
	d.Reflow()
	if i < 0 || i >= d.lines.Len() {
		return layout.Line{}, fmt.Errorf("%w: line %d of %d", ErrOutOfRange, i, d.lines.Len())
	}
	return d.lines.At(i), nil
}

// LineNumFromDocIndex returns the line holding index: the visual line
// when includeWordWrap is set, otherwise the logical line counting hard
// breaks only.
func (d *Document) LineNumFromDocIndex(index int, includeWordWrap bool) (int, error) {
	if err := d.checkIndex(index); err != nil {
		return 0, err
	}
	d.Reflow()
	i := d.lines.LineIndexOf(index)
	if includeWordWrap {
		return i, nil
	}
	return d.lines.At(i).Num, nil
}

// LineOffsetFromDocIndex returns how far index is from the start of its
// visual line, or of its logical line when includeWordWrap is false.
func (d *Document) LineOffsetFromDocIndex(index int, includeWordWrap bool) (int, error) {
	if err := d.checkIndex(index); err != nil {
		return 0, err
	}
	d.Reflow()
	l := d.lines.At(d.lines.LineIndexOf(index))
	if !includeWordWrap {
		l = d.lines.At(d.lines.FirstOfNum(l.Num))
	}
	return index - l.Start, nil
}

// VisibleLines returns the half-open range of lines in the view. With
// full set only lines entirely inside it count.
func (d *Document) VisibleLines(full bool) (first, last int) {
	d.Reflow()
	r := d.VisibleDocumentRect()
	return d.lines.Visible(r.Min.Y, r.Max.Y, full)
}

// VisibleDocumentRect returns the part of the document shown in the
// view, in document coordinates. A view without a height shows
// everything below the scroll position.
func (d *Document) VisibleDocumentRect() image.Rectangle {
	size := d.view
	if size.Y <= 0 {
		size.Y = math.MaxInt32 - d.scroll.Y
	}
	return image.Rectangle{Min: d.scroll, Max: d.scroll.Add(size)}
}

// TextBoundingRect returns the union of the line rectangles in document
// coordinates.
func (d *Document) TextBoundingRect() image.Rectangle {
	d.Reflow()
	return d.lines.BoundingRect()
}

// DocIndexToDocRect returns the zero-width caret rectangle before the
// character at index, in document coordinates.
func (d *Document) DocIndexToDocRect(index int) (image.Rectangle, error) {
	if err := d.checkIndex(index); err != nil {
		return image.Rectangle{}, err
	}
	d.Reflow()
	l := d.lines.At(d.lines.LineIndexOf(index))
	x := l.Rect.Min.X + d.lineWidth(l, index)
	return image.Rect(x, l.Rect.Min.Y, x, l.Rect.Max.Y), nil
}

// DocIndexToLocalRect is DocIndexToDocRect in view coordinates.
func (d *Document) DocIndexToLocalRect(index int) (image.Rectangle, error) {
	r, err := d.DocIndexToDocRect(index)
	if err != nil {
		return r, err
	}
	return r.Sub(d.scroll), nil
}

// lineWidth returns the width of the characters of l before index.
func (d *Document) lineWidth(l layout.Line, index int) int {
	if index > l.Elided {
		return l.Rect.Dx()
	}
	x := 0
	si, off := d.store.SegmentAndOffset(l.Start)
	for ; si < d.store.Len(); si, off = si+1, 0 {
		seg := d.store.At(si)
		s := seg.Start + off
		if s >= index {
			break
		}
		n := min(seg.End, index) - s
		w, _, _ := seg.Dimensions(&d.ctx, off, n)
		x += w
	}
	return x
}

// LocalCoordToDocIndex returns the index of the character boundary at
// view point (x, y). With round set a point in the right half of a
// character maps to the boundary after it.
//
// hitPastLineEnd decides what a point past the text means. Below the
// last line it maps to the last line when set and to the end of the
// document otherwise. Right of a wrapped line it maps to the last
// character of that line when set and to the start of the next line
// otherwise.
func (d *Document) LocalCoordToDocIndex(x, y int, round, hitPastLineEnd bool) int {
	d.Reflow()
	p := image.Pt(x, y).Add(d.scroll)
	i := d.lines.LineAtY(p.Y)
	if i == d.lines.Len() {
		if !hitPastLineEnd {
			return d.Len()
		}
		i--
	}
	return d.indexInLine(d.lines.At(i), p.X, round, hitPastLineEnd)
}

// indexInLine maps document x to an index on line l.
func (d *Document) indexInLine(l layout.Line, x int, round, hitPastLineEnd bool) int {
	cx := l.Rect.Min.X
	if x <= cx {
		return l.Start
	}
	si, off := d.store.SegmentAndOffset(l.Start)
	for ; si < d.store.Len(); si, off = si+1, 0 {
		seg := d.store.At(si)
		s := seg.Start + off
		if s >= l.Elided {
			break
		}
		n := min(seg.End, l.Elided) - s
		w, _, _ := seg.Dimensions(&d.ctx, off, n)
		if x < cx+w {
			switch seg.Kind {
			case segment.Plain, segment.Hover:
				return min(s+seg.Offset(&d.ctx, x-cx, off, n, round), d.lineEnd(l, hitPastLineEnd))
			}
			if round && 2*(x-cx) >= w {
				return s + n
			}
			return s
		}
		cx += w
	}
	return d.lineEnd(l, hitPastLineEnd)
}

// lineEnd returns the caret position at the end of l. A line ending in
// a newline keeps the caret before it; so does a wrapped line when
// stayOnLine is set.
func (d *Document) lineEnd(l layout.Line, stayOnLine bool) int {
	if l.End == l.Start {
		return l.End
	}
	if d.text.at(l.End-1) == '\n' {
		return l.End - 1
	}
	if stayOnLine && l.End < d.Len() {
		return l.End - 1
	}
	return l.End
}

// SetScroll scrolls so that document point p is at the view origin,
// clamped to the document.
func (d *Document) SetScroll(p image.Point) {
	d.Reflow()
	d.scroll = p
	d.clampScroll()
	d.pinnedEnd = d.scroll.Y >= d.maxScroll().Y
	d.scrollIndex = -1
	if d.scroll.Y > 0 {
		if i := d.lines.LineAtY(d.scroll.Y); i < d.lines.Len() {
			l := d.lines.At(i)
			d.scrollIndex = l.Start
			d.scrollDelta = d.scroll.Y - l.Rect.Min.Y
		}
	}
}

// Scroll returns the document point at the view origin.
func (d *Document) Scroll() image.Point {
	d.Reflow()
	return d.scroll
}

func (d *Document) maxScroll() image.Point {
	if d.view.Y <= 0 {
		return image.Point{}
	}
	return image.Pt(
		max(0, d.lines.BoundingRect().Max.X+d.hpad-d.view.X),
		max(0, d.contentHeight()-d.view.Y),
	)
}

func (d *Document) clampScroll() {
	m := d.maxScroll()
	d.scroll.X = min(max(d.scroll.X, 0), m.X)
	d.scroll.Y = min(max(d.scroll.Y, 0), m.Y)
}

// ScrolledToStart reports whether the top of the document is in view.
func (d *Document) ScrolledToStart() bool {
	d.Reflow()
	return d.scroll.Y <= 0
}

// ScrolledToEnd reports whether the bottom of the document is in view.
func (d *Document) ScrolledToEnd() bool {
	d.Reflow()
	return d.scroll.Y >= d.maxScroll().Y
}

// ScrollToShowIndex scrolls the least amount that brings the caret at
// index into view.
func (d *Document) ScrollToShowIndex(index int) error {
	return d.ScrollToShowRange(index, index)
}

// ScrollToShowRange scrolls the least amount that brings [start, end)
// into view, preferring its start when it is taller or wider than the
// view.
func (d *Document) ScrollToShowRange(start, end int) error {
	if err := d.checkIndex(start); err != nil {
		return err
	}
	if err := d.checkIndex(end); err != nil {
		return err
	}
	a, _ := d.DocIndexToDocRect(start)
	b, _ := d.DocIndexToDocRect(end)
	r := a.Union(b)
	v := d.VisibleDocumentRect()
	p := d.scroll
	if r.Max.Y > v.Max.Y {
		p.Y += r.Max.Y - v.Max.Y
	}
	if r.Min.Y < p.Y {
		p.Y = r.Min.Y
	}
	if !d.wordWrap && d.view.X > 0 {
		if r.Max.X > v.Max.X {
			p.X += r.Max.X - v.Max.X
		}
		if r.Min.X-d.hpad < p.X {
			p.X = max(0, r.Min.X-d.hpad)
		}
	}
	if p != d.scroll {
		d.SetScroll(p)
	}
	return nil
}
