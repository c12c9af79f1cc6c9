package textbase

import (
	"image"
	"log"

	"github.com/rjkroege/textflow/layout"
	"github.com/rjkroege/textflow/segment"
)

// Option configures a Document.
type Option func(*Document)

// WithWordWrap is an Option that wraps lines at the view width.
func WithWordWrap(on bool) Option {
	return func(d *Document) {
		d.wordWrap = on
	}
}

// WithSize is an Option that sets the size of the view in pixels,
// padding and scroll bar included.
func WithSize(width, height int) Option {
	return func(d *Document) {
		d.view = image.Pt(width, height)
	}
}

// WithPadding is an Option that sets the horizontal and vertical space
// between the view edge and the text.
func WithPadding(h, v int) Option {
	return func(d *Document) {
		d.hpad = h
		d.vpad = v
	}
}

// WithAlign is an Option that sets the horizontal alignment of lines.
func WithAlign(a layout.Align) Option {
	return func(d *Document) {
		d.align = a
	}
}

// WithLineSpacing is an Option that sets the line advance to
// height*mult + pixels.
func WithLineSpacing(mult float64, pixels int) Option {
	return func(d *Document) {
		d.spacingMult = mult
		d.spacingPixels = pixels
	}
}

// WithScrollbarWidth is an Option that reserves width pixels for a
// vertical scroll bar whenever the text is taller than the view.
func WithScrollbarWidth(width int) Option {
	return func(d *Document) {
		d.scrollbarWidth = width
	}
}

// WithMaxLength is an Option that limits the document to n bytes of
// UTF-8. Zero means no limit.
func WithMaxLength(n int) Option {
	return func(d *Document) {
		d.maxBytes = n
	}
}

// WithReadOnly is an Option that rejects edits.
func WithReadOnly(on bool) Option {
	return func(d *Document) {
		d.readOnly = on
	}
}

// WithPlainText is an Option that keeps newlines in plain runs instead of
// giving each its own line break segment.
func WithPlainText(on bool) Option {
	return func(d *Document) {
		d.plainText = on
	}
}

// WithEllipses is an Option that elides lines too wide for the view when
// word wrap is off.
func WithEllipses(on bool) Option {
	return func(d *Document) {
		d.ellipses = on
	}
}

// WithTrackEnd is an Option that keeps the view at the bottom of the
// document as text is appended, until the user scrolls away.
func WithTrackEnd(on bool) Option {
	return func(d *Document) {
		d.trackEnd = on
	}
}

// WithDefaultStyle is an Option that sets the style of typed text.
func WithDefaultStyle(st segment.Style) Option {
	return func(d *Document) {
		d.style = st
	}
}

// WithNormalization is an Option that converts strings to NFC before
// they are inserted.
func WithNormalization(on bool) Option {
	return func(d *Document) {
		d.normalize = on
	}
}

// WithMaxReflowPasses is an Option that bounds the layout passes of one
// reflow. Values below one are ignored.
func WithMaxReflowPasses(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxPasses = n
		}
	}
}

// WithLogger is an Option that sets where diagnostics go.
func WithLogger(l *log.Logger) Option {
	return func(d *Document) {
		d.logger = l
	}
}
