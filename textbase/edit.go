package textbase

import (
	"fmt"
	"image"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/rjkroege/textflow/segment"
)

// Insert inserts text at pos and returns the number of characters
// inserted, which is less than len(text) when the document's maximum
// length cuts it short. An insertion point inside a read-only segment
// moves to that segment's end. Text landing in an editable segment
// extends it; otherwise it gets a new segment in the default style.
// segs are then added over the new text, indexed in the document as it
// is after the insertion.
func (d *Document) Insert(pos int, text []rune, segs ...*segment.Segment) (int, error) {
	if err := d.checkIndex(pos); err != nil {
		return 0, err
	}
	if d.readOnly {
		return 0, ErrReadOnly
	}
	pos = d.store.EditableIndex(pos, true)
	text = d.truncate(text)
	n := len(text)
	for _, s := range segs {
		if s.Start < 0 || s.End < s.Start || s.End > d.Len()+n {
			return 0, fmt.Errorf("%w: segment %v in document of length %d", ErrOutOfRange, s, d.Len()+n)
		}
	}
	d.insert(pos, text, nil)
	for _, s := range segs {
		d.invalidate(d.store.Insert(s))
	}
	d.validatemodel("Document.Insert pos=%d «%s»", pos, string(text))
	return n, nil
}

// InsertString is Insert for a string, normalized to NFC when the
// document was built WithNormalization.
func (d *Document) InsertString(pos int, s string) (int, error) {
	return d.Insert(pos, d.prepare(s))
}

// insert adds text at pos. With seg nil the text joins the editable
// segment it lands in or gets a default one; otherwise seg, which must
// cover exactly the new text, is added.
func (d *Document) insert(pos int, text []rune, seg *segment.Segment) {
	n := len(text)
	if n == 0 {
		return
	}
	switch i := d.store.FindEditableContaining(pos, true); {
	case seg != nil:
		d.store.ShiftRange(pos, n)
		d.store.Insert(seg)
	case i < d.store.Len() && d.store.At(i).Editable() && d.store.At(i).Start <= pos && pos <= d.store.At(i).End:
		d.store.Extend(i, n)
	default:
		d.store.ShiftRange(pos, n)
		d.store.Insert(segment.NewPlain(pos, pos+n, d.style))
	}
	d.text.insert(pos, text)
	d.shiftAnchors(pos, n)
	d.invalidate(pos)
}

// truncate shortens text to fit the maximum length, cutting between
// grapheme clusters.
func (d *Document) truncate(text []rune) []rune {
	if d.maxBytes <= 0 {
		return text
	}
	room := d.maxBytes - d.text.size()
	if room <= 0 {
		return nil
	}
	s := string(text)
	if len(s) <= room {
		return text
	}
	n, used := 0, 0
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+len(cluster) > room {
			break
		}
		used += len(cluster)
		n += len([]rune(cluster))
	}
	return text[:n]
}

func (d *Document) prepare(s string) []rune {
	if d.normalize {
		s = norm.NFC.String(s)
	}
	return []rune(s)
}

// Remove deletes length characters at pos. It returns -length so that
// the results of Insert and Remove are both the change in document
// length.
func (d *Document) Remove(pos, length int) (int, error) {
	if pos < 0 || length < 0 || pos+length > d.Len() {
		return 0, fmt.Errorf("%w: remove [%d,%d) from document of length %d", ErrOutOfRange, pos, pos+length, d.Len())
	}
	if d.readOnly {
		return 0, ErrReadOnly
	}
	d.remove(pos, length)
	d.validatemodel("Document.Remove pos=%d length=%d", pos, length)
	return -length, nil
}

func (d *Document) remove(pos, length int) {
	if length == 0 {
		return
	}
	d.store.Remove(pos, length)
	d.text.delete(pos, pos+length)
	d.store.Coalesce(pos)
	d.store.EnsureNonEmpty(d.Len(), d.style)
	d.removeAnchors(pos, length)
	d.invalidate(pos)
}

// OverwriteChar replaces the character at pos with r and returns the
// character it replaced. Segment boundaries do not change.
func (d *Document) OverwriteChar(pos int, r rune) (rune, error) {
	if pos < 0 || pos >= d.Len() {
		return 0, fmt.Errorf("%w: overwrite at %d in document of length %d", ErrOutOfRange, pos, d.Len())
	}
	if d.readOnly {
		return 0, ErrReadOnly
	}
	old := d.text.set(pos, r)
	d.misspelled = dropTouching(d.misspelled, pos, pos+1)
	d.invalidate(pos)
	return old, nil
}

// shiftAnchors moves the indices kept by the view past an insertion of
// n characters at pos.
func (d *Document) shiftAnchors(pos, n int) {
	shift := func(i int) int {
		if i > pos {
			return i + n
		}
		return i
	}
	d.cursor = shift(d.cursor)
	d.selection = Range{shift(d.selection.Start), shift(d.selection.End)}
	if d.scrollIndex >= 0 {
		d.scrollIndex = shift(d.scrollIndex)
	}
	d.misspelled = shiftRanges(d.misspelled, pos, pos, n)
}

// removeAnchors moves the indices kept by the view past the removal of
// [pos, pos+length).
func (d *Document) removeAnchors(pos, length int) {
	end := pos + length
	shift := func(i int) int {
		switch {
		case i >= end:
			return i - length
		case i > pos:
			return pos
		}
		return i
	}
	d.cursor = shift(d.cursor)
	d.selection = Range{shift(d.selection.Start), shift(d.selection.End)}
	if d.scrollIndex >= 0 {
		d.scrollIndex = shift(d.scrollIndex)
	}
	d.misspelled = shiftRanges(d.misspelled, pos, end, -length)
}

// SetText replaces the whole document with s in the default style. It
// works on read-only documents.
func (d *Document) SetText(s string) {
	d.Clear()
	d.AppendText(s, false, d.style)
}

// Clear empties the document and resets the view.
func (d *Document) Clear() {
	d.text.clear()
	d.store.Clear()
	d.store.EnsureNonEmpty(0, d.style)
	d.lines.Reset()
	d.cursor = 0
	d.desiredX = -1
	d.selection = Range{}
	d.misspelled = nil
	d.scroll = image.Point{}
	d.scrollIndex = -1
	d.pinnedEnd = d.trackEnd
}

// AppendText adds s in style st at the end of the document, first adding
// a line break if prependNewline is set and the document is not empty.
// Unless the document holds plain text each newline becomes a line break
// segment. Appending works on read-only documents.
func (d *Document) AppendText(s string, prependNewline bool, st segment.Style) int {
	start := d.Len()
	if prependNewline && start > 0 {
		d.AppendLineBreak(st)
	}
	text := d.truncate(d.prepare(s))
	if d.plainText {
		d.appendRun(text, st)
	} else {
		for len(text) > 0 {
			i := 0
			for i < len(text) && text[i] != '\n' {
				i++
			}
			d.appendRun(text[:i], st)
			if i < len(text) {
				d.AppendLineBreak(st)
				i++
			}
			text = text[i:]
		}
	}
	d.validatemodel("Document.AppendText «%s»", s)
	return d.Len() - start
}

func (d *Document) appendRun(text []rune, st segment.Style) {
	if len(text) == 0 {
		return
	}
	pos := d.Len()
	d.insert(pos, text, segment.NewPlain(pos, pos+len(text), st))
	d.store.Coalesce(pos)
}

// AppendLineBreak adds a hard line break in style st.
func (d *Document) AppendLineBreak(st segment.Style) {
	pos := d.Len()
	d.insert(pos, []rune{'\n'}, segment.NewLineBreak(pos, st))
}

// AppendImage adds an image of the given size, occupying one
// placeholder character.
func (d *Document) AppendImage(st segment.Style, size image.Point) {
	pos := d.Len()
	d.insert(pos, []rune{segment.ObjectReplacement}, segment.NewImage(pos, st, size))
}

// AppendWidget adds an inline widget standing for text. With text empty
// the widget occupies one placeholder character.
func (d *Document) AppendWidget(w segment.Widget, text string, pad segment.Padding, forceNewline bool) {
	rs := []rune(text)
	if len(rs) == 0 {
		rs = []rune{segment.ObjectReplacement}
	}
	pos := d.Len()
	d.insert(pos, rs, segment.NewWidget(pos, pos+len(rs), w, pad, forceNewline))
}

// RemoveFirstLine deletes the text up to and including the first
// newline, or all of it if there is none, and returns the number of
// characters removed. It works on read-only documents.
func (d *Document) RemoveFirstLine() int {
	n := d.Len()
	if i := d.text.index(0, '\n'); i >= 0 {
		n = i + 1
	}
	d.remove(0, n)
	d.validatemodel("Document.RemoveFirstLine n=%d", n)
	return n
}

// SetHover puts the hover segment containing pos, if any, into its hover
// style and every other hover segment out of it. A negative pos clears
// all hovers. It reports whether any segment changed.
func (d *Document) SetHover(pos int) bool {
	changed := false
	for _, s := range d.store.Segments() {
		if s.Kind != segment.Hover {
			continue
		}
		on := pos >= s.Start && pos < s.End
		if s.Hovered != on {
			s.Hovered = on
			d.invalidate(s.Start)
			changed = true
		}
	}
	return changed
}
