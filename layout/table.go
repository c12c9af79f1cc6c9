package layout

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/rjkroege/textflow/segment"
)

// clean is the dirty index of a table whose geometry is current.
const clean = math.MaxInt

// unbounded is the pixel budget offered to segments when not wrapping.
const unbounded = math.MaxInt32

// Ellipsis is drawn at the end of an elided line.
const Ellipsis = '…'

// Table is the ordered list of visual lines of a document together with
// the dirty index below which that list is known to be valid.
type Table struct {
	lines []Line
	dirty int
}

// NewTable returns an empty table that needs a full layout.
func NewTable() *Table {
	return &Table{}
}

// Invalidate records that the geometry of lines containing characters
// after index may be stale. The dirty index only moves down.
func (t *Table) Invalidate(index int) {
	if index < 0 {
		index = 0
	}
	if index < t.dirty {
		t.dirty = index
	}
}

// Dirty reports whether the table needs a Build.
func (t *Table) Dirty() bool { return t.dirty != clean }

// DirtyIndex returns the dirty index, or -1 when the table is clean.
func (t *Table) DirtyIndex() int {
	if t.dirty == clean {
		return -1
	}
	return t.dirty
}

// Reset drops every line and marks the whole document dirty.
func (t *Table) Reset() {
	t.lines = t.lines[:0]
	t.dirty = 0
}

// Len returns the number of lines.
func (t *Table) Len() int { return len(t.lines) }

// At returns the i-th line.
func (t *Table) At(i int) Line { return t.lines[i] }

// Lines returns the line table. The slice is owned by t.
func (t *Table) Lines() []Line { return t.lines }

// Build brings the table up to date. Lines ending at or before the dirty
// index are kept; layout restarts at the first line ending after it.
func (t *Table) Build(ctx *segment.Context, store *segment.Store, p Params) {
	if t.dirty == clean {
		return
	}
	defer func() { t.dirty = clean }()

	start, num, top := 0, 0, p.Top
	if len(t.lines) > 0 {
		i := sort.Search(len(t.lines), func(i int) bool {
			return t.lines[i].End > t.dirty
		})
		if i == len(t.lines) {
			i--
		}
		l := t.lines[i]
		start, num, top = l.Start, l.Num, l.Rect.Min.Y
		t.lines = t.lines[:i]
	}
	if store.Len() == 0 {
		return
	}

	b := builder{
		table: t,
		ctx:   ctx,
		store: store,
		p:     &p,
		top:   top,
	}
	b.run(start, num)
}

// builder carries the state of one layout pass.
type builder struct {
	table *Table
	ctx   *segment.Context
	store *segment.Store
	p     *Params
	top   int
}

func (b *builder) run(lineStart, num int) {
	segs := b.store.Segments()
	si, off := b.store.SegmentAndOffset(lineStart)
	remaining := b.p.Width
	height := 0

	for si < len(segs) {
		seg := segs[si]
		cur := seg.Start + off
		pixels := unbounded
		if b.p.WordWrap {
			pixels = max(0, remaining)
		}
		n := seg.NumChars(b.ctx, pixels, off, cur-lineStart, unbounded)
		w, h, breaks := seg.Dimensions(b.ctx, off, n)
		height = max(height, h)
		remaining -= w
		off += n
		end := seg.Start + off

		switch {
		case end < seg.End:
			// The segment continues on the next line.
			b.close(lineStart, end, num, height, b.p.Width-remaining)
			if breaks {
				num++
			}
			lineStart, remaining, height = end, b.p.Width, 0

		case si == len(segs)-1:
			b.close(lineStart, end, num, height, b.p.Width-remaining)
			if breaks {
				// Give the position after a final newline a row.
				b.close(end, end, num+1, b.ctx.Metrics.Height(seg.Style), 0)
			}
			return

		default:
			if breaks {
				b.close(lineStart, end, num, height, b.p.Width-remaining)
				num++
				lineStart, remaining, height = end, b.p.Width, 0
			}
			si++
			off = 0
		}
	}
}

func (b *builder) close(start, end, num, height, width int) {
	elided := end
	if !b.p.WordWrap && b.p.Ellipses && width > b.p.Width {
		elided = b.elide(start, end)
		width = b.p.Width
	}
	x := b.p.Left + b.p.alignOffset(width)
	b.table.lines = append(b.table.lines, Line{
		Start:  start,
		End:    end,
		Rect:   image.Rect(x, b.top, x+width, b.top+height),
		Num:    num,
		Elided: elided,
	})
	b.top += b.p.advance(height)
}

// elide returns the index in [start, end) after which an ellipsis fits
// within the available width.
func (b *builder) elide(start, end int) int {
	si, off := b.store.SegmentAndOffset(start)
	room := b.p.Width - b.ellipsisWidth(b.store.At(si).ActiveStyle())
	x := 0
	for ; si < b.store.Len(); si, off = si+1, 0 {
		seg := b.store.At(si)
		s := seg.Start + off
		if s >= end {
			break
		}
		n := min(seg.End, end) - s
		w, _, _ := seg.Dimensions(b.ctx, off, n)
		if x+w <= room {
			x += w
			continue
		}
		return s + seg.Offset(b.ctx, room-x, off, n, false)
	}
	return end
}

func (b *builder) ellipsisWidth(st segment.Style) int {
	w, _, _ := b.ctx.Metrics.Measure([]rune{Ellipsis}, 0, 1, st)
	return w
}

// LineIndexOf returns the line holding the character at index: the first
// line ending after it, or the last line for the end of the document.
// It returns -1 for an empty table.
func (t *Table) LineIndexOf(index int) int {
	i := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].End > index
	})
	if i == len(t.lines) {
		i--
	}
	return i
}

// LineAtY returns the first line whose bottom is below y, or Len() if y is
// below every line.
func (t *Table) LineAtY(y int) int {
	return sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].Rect.Max.Y > y
	})
}

// Visible returns the half-open range of lines intersecting the vertical
// span [top, bottom). With full set only lines entirely inside the span
// are counted.
func (t *Table) Visible(top, bottom int, full bool) (first, last int) {
	if full {
		first = sort.Search(len(t.lines), func(i int) bool {
			return t.lines[i].Rect.Min.Y >= top
		})
		last = sort.Search(len(t.lines), func(i int) bool {
			return t.lines[i].Rect.Max.Y > bottom
		})
	} else {
		first = sort.Search(len(t.lines), func(i int) bool {
			return t.lines[i].Rect.Max.Y > top
		})
		last = sort.Search(len(t.lines), func(i int) bool {
			return t.lines[i].Rect.Min.Y >= bottom
		})
	}
	if last < first {
		last = first
	}
	return first, last
}

// FirstOfNum returns the first line with logical number num, or Len() if
// there is none.
func (t *Table) FirstOfNum(num int) int {
	i := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].Num >= num
	})
	if i < len(t.lines) && t.lines[i].Num != num {
		return len(t.lines)
	}
	return i
}

// Height returns the bottom of the last line.
func (t *Table) Height() int {
	if len(t.lines) == 0 {
		return 0
	}
	return t.lines[len(t.lines)-1].Rect.Max.Y
}

// BoundingRect returns the union of the line rectangles.
func (t *Table) BoundingRect() image.Rectangle {
	var r image.Rectangle
	for i, l := range t.lines {
		if i == 0 {
			r = l.Rect
			continue
		}
		r = r.Union(l.Rect)
	}
	return r
}

// Validate checks that the lines cover [0, docLen) contiguously and do
// not overlap vertically.
func (t *Table) Validate(docLen int) error {
	if len(t.lines) == 0 {
		return fmt.Errorf("no lines for %d characters", docLen)
	}
	at := 0
	for i, l := range t.lines {
		if l.Start != at {
			return fmt.Errorf("line %d %v starts at %d, want %d", i, l, l.Start, at)
		}
		if l.End < l.Start {
			return fmt.Errorf("line %d %v has negative length", i, l)
		}
		if l.Elided < l.Start || l.Elided > l.End {
			return fmt.Errorf("line %d %v elided at %d", i, l, l.Elided)
		}
		if i > 0 {
			prev := t.lines[i-1]
			if l.Rect.Min.Y < prev.Rect.Max.Y {
				return fmt.Errorf("line %d %v overlaps line %d %v", i, l, i-1, prev)
			}
			if l.Num < prev.Num {
				return fmt.Errorf("line %d %v numbered before line %d %v", i, l, i-1, prev)
			}
		}
		at = l.End
	}
	if at != docLen {
		return fmt.Errorf("lines end at %d, document has %d characters", at, docLen)
	}
	return nil
}
