package textbase

import (
	"fmt"
	"image"
)

// Cursor returns the caret index.
func (d *Document) Cursor() int { return d.cursor }

// SetCursorPos moves the caret to pos. A position inside a read-only
// segment moves to the segment's end when increasing, otherwise to its
// start, so the caret never rests inside locked text.
func (d *Document) SetCursorPos(pos int, increasing bool) error {
	if err := d.checkIndex(pos); err != nil {
		return err
	}
	d.cursor = d.store.EditableIndex(pos, increasing)
	d.desiredX = -1
	return nil
}

// SetCursor moves the caret to column col of visual line row. Columns
// past the end of the line stop at its end.
func (d *Document) SetCursor(row, col int) error {
	l, err := d.line(row)
	if err != nil {
		return err
	}
	if col < 0 {
		return fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}
	pos := min(l.Start+col, d.lineEnd(l, true))
	return d.SetCursorPos(pos, pos >= d.cursor)
}

// StartOfLine moves the caret to the start of its visual line.
func (d *Document) StartOfLine() error {
	d.Reflow()
	l := d.lines.At(d.lines.LineIndexOf(d.cursor))
	return d.SetCursorPos(l.Start, false)
}

// EndOfLine moves the caret to the end of its visual line.
func (d *Document) EndOfLine() error {
	d.Reflow()
	l := d.lines.At(d.lines.LineIndexOf(d.cursor))
	return d.SetCursorPos(d.lineEnd(l, true), true)
}

// StartOfDoc moves the caret to the start of the document.
func (d *Document) StartOfDoc() error { return d.SetCursorPos(0, false) }

// EndOfDoc moves the caret to the end of the document.
func (d *Document) EndOfDoc() error { return d.SetCursorPos(d.Len(), true) }

// ChangeLine moves the caret delta visual lines down, or up for a
// negative delta, staying as close as it can to the horizontal position
// it had when vertical movement began.
func (d *Document) ChangeLine(delta int) error {
	d.Reflow()
	li := d.lines.LineIndexOf(d.cursor)
	x := d.caretX()
	target := min(max(li+delta, 0), d.lines.Len()-1)
	pos := d.indexInLine(d.lines.At(target), x, true, true)
	if err := d.SetCursorPos(pos, delta > 0); err != nil {
		return err
	}
	d.desiredX = x
	return nil
}

// ChangePage moves the view and the caret delta view heights down, or
// up for a negative delta.
func (d *Document) ChangePage(delta int) error {
	d.Reflow()
	page := d.view.Y - 2*d.vpad
	if page <= 0 {
		li := d.lines.LineIndexOf(d.cursor)
		page = d.lines.At(li).Rect.Dy()
	}
	x := d.caretX()
	r, _ := d.DocIndexToDocRect(d.cursor)
	d.SetScroll(d.scroll.Add(image.Pt(0, delta*page)))
	y := r.Min.Y + delta*page
	li := d.lines.LineAtY(y)
	switch {
	case y < 0:
		li = 0
	case li == d.lines.Len():
		li--
	}
	pos := d.indexInLine(d.lines.At(li), x, true, true)
	if err := d.SetCursorPos(pos, delta > 0); err != nil {
		return err
	}
	d.desiredX = x
	return nil
}

// caretX returns the horizontal target for vertical movement.
func (d *Document) caretX() int {
	if d.desiredX >= 0 {
		return d.desiredX
	}
	r, _ := d.DocIndexToDocRect(d.cursor)
	return r.Min.X
}

// Selection returns the selected range, start not after end.
func (d *Document) Selection() Range {
	s := d.selection
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// HasSelection reports whether a non-empty range is selected.
func (d *Document) HasSelection() bool { return d.selection.Start != d.selection.End }

// SetSelection selects [start, end). The ends may be given in either
// order.
func (d *Document) SetSelection(start, end int) error {
	if err := d.checkIndex(start); err != nil {
		return err
	}
	if err := d.checkIndex(end); err != nil {
		return err
	}
	d.selection = Range{start, end}
	return nil
}

// ClearSelection deselects.
func (d *Document) ClearSelection() { d.selection = Range{d.cursor, d.cursor} }

// SelectionRects returns one rectangle per visual line covered by the
// selection, in view coordinates.
func (d *Document) SelectionRects() []image.Rectangle {
	s := d.Selection()
	if s.Start == s.End {
		return nil
	}
	d.Reflow()
	var rs []image.Rectangle
	for i := d.lines.LineIndexOf(s.Start); i < d.lines.Len(); i++ {
		l := d.lines.At(i)
		if l.Start >= s.End {
			break
		}
		x0 := l.Rect.Min.X + d.lineWidth(l, max(s.Start, l.Start))
		x1 := l.Rect.Min.X + d.lineWidth(l, min(s.End, l.End))
		rs = append(rs, image.Rect(x0, l.Rect.Min.Y, x1, l.Rect.Max.Y).Sub(d.scroll))
	}
	return rs
}
