package textbase

import (
	"github.com/rjkroege/textflow/layout"
)

// Reflow brings the line table up to date. It does nothing if no edit or
// view change happened since the last call.
//
// Laying out lines can change the document height, which shows or hides
// the scroll bar, which changes the text width and so the wrapping. At
// most maxPasses layouts are tried; if the scroll bar still disagrees
// with the last one, that layout is kept and the fact is logged.
func (d *Document) Reflow() {
	d.ctx.Text = d.text.all()
	if w := d.textWidth(); w != d.width {
		d.width = w
		d.lines.Reset()
	}
	if !d.lines.Dirty() {
		return
	}
	d.widenDirty()

	for pass := 1; ; pass++ {
		d.ctx.Width = d.width
		d.lines.Build(&d.ctx, d.store, d.params())
		sb := d.needsScrollbar()
		if sb == d.scrollbar {
			break
		}
		if pass >= d.maxPasses {
			d.logger.Printf("textbase: layout did not converge after %d passes, keeping width %d", pass, d.width)
			break
		}
		d.scrollbar = sb
		d.width = d.textWidth()
		d.lines.Reset()
	}
	d.anchorScroll()
	d.validatemodel("Document.Reflow")
}

// widenDirty moves the dirty index back to the start of the line before
// the one holding it: an edit can pull the first word of a line up onto
// the line above.
func (d *Document) widenDirty() {
	dirty := d.lines.DirtyIndex()
	if dirty <= 0 || d.lines.Len() == 0 {
		return
	}
	if i := d.lines.LineIndexOf(dirty); i > 0 {
		d.lines.Invalidate(d.lines.At(i - 1).Start)
	}
}

func (d *Document) params() layout.Params {
	return layout.Params{
		Width:         d.width,
		WordWrap:      d.wordWrap,
		Ellipses:      d.ellipses,
		Align:         d.align,
		SpacingMult:   d.spacingMult,
		SpacingPixels: d.spacingPixels,
		Left:          d.hpad,
		Top:           d.vpad,
	}
}

// textWidth returns the width available to text in the view.
func (d *Document) textWidth() int {
	w := d.view.X - 2*d.hpad
	if d.scrollbar {
		w -= d.scrollbarWidth
	}
	return max(w, 0)
}

func (d *Document) needsScrollbar() bool {
	return d.scrollbarWidth > 0 && d.view.Y > 0 && d.contentHeight() > d.view.Y
}

// contentHeight returns the height of the laid out text with its
// padding.
func (d *Document) contentHeight() int {
	return d.lines.Height() + d.vpad
}

// Scrollbar reports whether the last layout left room for a scroll bar.
func (d *Document) Scrollbar() bool {
	d.Reflow()
	return d.scrollbar
}

// anchorScroll restores the scroll position after a layout change: to
// the bottom when tracking the end, otherwise to keep the first visible
// character in place.
func (d *Document) anchorScroll() {
	switch {
	case d.trackEnd && d.pinnedEnd:
		d.scroll.Y = d.maxScroll().Y
	case d.scrollIndex >= 0:
		if i := d.lines.LineIndexOf(d.scrollIndex); i >= 0 {
			d.scroll.Y = d.lines.At(i).Rect.Min.Y + d.scrollDelta
		}
	}
	d.clampScroll()
}
