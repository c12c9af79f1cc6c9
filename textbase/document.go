// Package textbase is an editable document of styled text that keeps an
// incrementally maintained line layout and maps between document
// indices and view coordinates.
//
// A Document is not safe for concurrent use. Edits only lower the dirty
// index of the line table; every query brings the layout up to date
// before reading it.
package textbase

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/rjkroege/textflow/layout"
	"github.com/rjkroege/textflow/segment"
)

var validate = flag.Bool("validatetext", false, "Check that the text model is valid after every change")

// defaultMaxPasses bounds the layout passes of one Reflow. An even count
// settles an oscillating layout on the same side every time.
const defaultMaxPasses = 2

// Range is a half-open span of document indices.
type Range struct {
	Start, End int
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Document is styled text with its segments, line layout and view state.
type Document struct {
	text  buffer
	store *segment.Store
	lines *layout.Table
	ctx   segment.Context

	style  segment.Style
	logger *log.Logger

	wordWrap  bool
	ellipses  bool
	readOnly  bool
	trackEnd  bool
	plainText bool
	normalize bool
	maxBytes  int

	hpad, vpad     int
	align          layout.Align
	spacingMult    float64
	spacingPixels  int
	scrollbarWidth int
	maxPasses      int

	// view is the size of the widget; width is the text width the lines
	// were laid out for.
	view      image.Point
	width     int
	scrollbar bool

	// scroll is the document coordinate shown at the view origin. While
	// scrollIndex is non-negative the line holding that index is kept
	// scrollDelta pixels above the top of the view across reflows.
	scroll      image.Point
	scrollIndex int
	scrollDelta int
	pinnedEnd   bool

	cursor     int
	desiredX   int
	selection  Range
	misspelled []Range
}

// New returns an empty document measured by m.
func New(m segment.Metrics, opts ...Option) *Document {
	d := &Document{
		store:       segment.NewStore(),
		lines:       layout.NewTable(),
		style:       segment.DefaultStyle(),
		logger:      log.Default(),
		maxPasses:   defaultMaxPasses,
		scrollIndex: -1,
		desiredX:    -1,
	}
	d.ctx.Metrics = m
	for _, o := range opts {
		o(d)
	}
	d.pinnedEnd = d.trackEnd
	d.store.EnsureNonEmpty(0, d.style)
	return d
}

// Len returns the number of characters in the document.
func (d *Document) Len() int { return d.text.len() }

// String returns the text of the document.
func (d *Document) String() string { return d.text.String() }

// Runes returns a copy of the text in [start, end).
func (d *Document) Runes(start, end int) ([]rune, error) {
	if start < 0 || end < start || end > d.Len() {
		return nil, fmt.Errorf("%w: [%d,%d) in document of length %d", ErrOutOfRange, start, end, d.Len())
	}
	return append([]rune(nil), d.text.slice(start, end)...), nil
}

// Segments returns the segments of the document in order. The slice
// and the segments are owned by the document.
func (d *Document) Segments() []*segment.Segment { return d.store.Segments() }

// ToolTipAt returns the tooltip of the segment holding the character at
// pos, or "" if it has none.
func (d *Document) ToolTipAt(pos int) string {
	if pos < 0 || pos >= d.Len() {
		return ""
	}
	return d.store.At(d.store.FindContaining(pos)).ToolTip
}

// Style returns the style of typed text.
func (d *Document) Style() segment.Style { return d.style }

// ReadOnly reports whether edits are rejected.
func (d *Document) ReadOnly() bool { return d.readOnly }

// SetReadOnly sets whether edits are rejected.
func (d *Document) SetReadOnly(on bool) { d.readOnly = on }

// SetWordWrap turns word wrap on or off.
func (d *Document) SetWordWrap(on bool) {
	if d.wordWrap != on {
		d.wordWrap = on
		d.lines.Reset()
	}
}

// EditableIndex returns where an insertion at index lands: an index
// inside a read-only segment moves to its end when increasing, otherwise
// to its start.
func (d *Document) EditableIndex(index int, increasing bool) int {
	return d.store.EditableIndex(index, increasing)
}

func (d *Document) checkIndex(index int) error {
	if index < 0 || index > d.Len() {
		return fmt.Errorf("%w: index %d in document of length %d", ErrOutOfRange, index, d.Len())
	}
	return nil
}

// invalidate records that layout from the line holding index onward is
// stale.
func (d *Document) invalidate(index int) {
	d.lines.Invalidate(index)
}

// validatemodel panics with a report if the document's segments or lines
// do not cover its text.
func (d *Document) validatemodel(format string, args ...interface{}) {
	if !*validate {
		return
	}
	if err := d.store.Validate(d.Len()); err != nil {
		log.Printf(format, args...)
		d.store.Logsegments("-- invalid segments: %v --", err)
		panic(fmt.Sprintf("-- invalid segments: %v --", err))
	}
	if d.lines.Dirty() {
		return
	}
	if err := d.lines.Validate(d.Len()); err != nil {
		log.Printf(format, args...)
		for i, l := range d.lines.Lines() {
			log.Printf("	%d	%v", i, l)
		}
		panic(fmt.Sprintf("-- invalid lines: %v --", err))
	}
}
