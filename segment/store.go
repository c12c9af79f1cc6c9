package segment

import (
	"fmt"
	"log"
	"sort"
)

// Store is the ordered set of segments covering a document. Segments are
// kept in a slice sorted by End, ties broken by Start, so a zero-length
// segment sorts after the non-empty segment that ends where it sits.
// Ranges are adjusted in place and the slice is spliced explicitly; the
// ordering never depends on a comparator over keys being mutated.
type Store struct {
	segs []*Segment
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of segments.
func (s *Store) Len() int { return len(s.segs) }

// At returns the i-th segment.
func (s *Store) At(i int) *Segment { return s.segs[i] }

// Segments returns the segments in document order. The slice is owned by
// the store and must not be modified.
func (s *Store) Segments() []*Segment { return s.segs }

// Clear removes every segment.
func (s *Store) Clear() { s.segs = s.segs[:0] }

// FindContaining returns the index of the segment containing index, or
// Len() when index is at or past the end of the last segment.
func (s *Store) FindContaining(index int) int {
	return sort.Search(len(s.segs), func(i int) bool {
		return s.segs[i].End > index
	})
}

// SegmentAndOffset returns the index of the segment containing index and
// the offset of index within it. At the end of the document it returns
// the last segment and an offset equal to its length.
func (s *Store) SegmentAndOffset(index int) (int, int) {
	i := s.FindContaining(index)
	if i == len(s.segs) {
		if i == 0 {
			return 0, 0
		}
		i--
	}
	return i, index - s.segs[i].Start
}

// EditableIndex moves index out of the interior of a non-editable segment:
// to its end when increasing, otherwise to its start.
func (s *Store) EditableIndex(index int, increasing bool) int {
	i := s.FindContaining(index)
	if i == len(s.segs) {
		return index
	}
	seg := s.segs[i]
	if seg.Editable() || index <= seg.Start {
		return index
	}
	if increasing {
		return seg.End
	}
	return seg.Start
}

// FindEditableContaining returns the segment that text inserted at index
// belongs to. An index strictly inside a non-editable segment is first
// moved to the segment's end or start according to increasing; an index
// on the leading boundary of a non-editable segment then steps back to
// the preceding segment when that one is editable. Otherwise the segment
// containing the index is returned unchanged, editable or not.
func (s *Store) FindEditableContaining(index int, increasing bool) int {
	index = s.EditableIndex(index, increasing)
	i := s.FindContaining(index)
	if i == len(s.segs) {
		if i > 0 && s.segs[i-1].End == index && s.segs[i-1].Editable() {
			return i - 1
		}
		return i
	}
	seg := s.segs[i]
	if seg.Editable() || index != seg.Start {
		return i
	}
	if i > 0 && s.segs[i-1].End == index && s.segs[i-1].Editable() {
		return i - 1
	}
	return i
}

func (s *Store) insertAt(i int, seg *Segment) {
	s.segs = append(s.segs, nil)
	copy(s.segs[i+1:], s.segs[i:])
	s.segs[i] = seg
}

func (s *Store) removeAt(i int) {
	copy(s.segs[i:], s.segs[i+1:])
	s.segs[len(s.segs)-1] = nil
	s.segs = s.segs[:len(s.segs)-1]
}

// Insert adds seg to the store, splitting the segment it starts inside and
// deleting or truncating the segments it overlaps. It returns the lowest
// document index whose layout may have changed.
func (s *Store) Insert(seg *Segment) int {
	if seg.End <= seg.Start && len(s.segs) > 0 {
		return seg.Start
	}
	if len(s.segs) == 1 && s.segs[0].Start == s.segs[0].End {
		// The placeholder of an empty document.
		s.segs = s.segs[:0]
	}
	i := s.FindContaining(seg.Start)
	if i == len(s.segs) {
		s.segs = append(s.segs, seg)
		return seg.Start
	}

	cur := s.segs[i]
	reflow := cur.Start
	if cur.Start < seg.Start {
		// Split cur around seg. Until the loop below runs, seg and
		// rest both own [seg.Start, min(seg.End, cur.End)).
		rest := cur.remainder(seg.Start)
		cur.End = seg.Start
		s.insertAt(i+1, seg)
		s.insertAt(i+2, rest)
		i += 2
	} else {
		s.insertAt(i, seg)
		i++
	}

	for i < len(s.segs) {
		c := s.segs[i]
		if c.End <= seg.End {
			s.removeAt(i)
			continue
		}
		if c.Start < seg.End {
			c.Start = seg.End
		}
		break
	}
	return reflow
}

// ShiftRange adds delta to the range of every segment starting at or after
// from.
func (s *Store) ShiftRange(from, delta int) {
	i := sort.Search(len(s.segs), func(i int) bool {
		return s.segs[i].Start >= from
	})
	s.shiftFrom(i, delta)
}

func (s *Store) shiftFrom(i, delta int) {
	for _, seg := range s.segs[i:] {
		seg.Start += delta
		seg.End += delta
	}
}

// Extend grows the i-th segment by n characters and shifts the segments
// after it.
func (s *Store) Extend(i, n int) {
	s.segs[i].End += n
	s.shiftFrom(i+1, n)
}

// Remove adjusts the store for the deletion of length characters at pos.
// Segments inside the deleted range go away; a segment overlapping its
// start or end is truncated; a segment enclosing it shrinks. No segment is
// split.
func (s *Store) Remove(pos, length int) {
	if length <= 0 {
		return
	}
	end := pos + length
	out := s.segs[:0]
	for _, seg := range s.segs {
		switch {
		case seg.Start == seg.End:
			if seg.Start >= pos && seg.Start <= end {
				continue
			}
			if seg.Start > end {
				seg.Start -= length
				seg.End -= length
			}
		case seg.End <= pos:
		case seg.Start >= end:
			seg.Start -= length
			seg.End -= length
		case seg.Start >= pos && seg.End <= end:
			continue
		case seg.Start < pos && seg.End > end:
			seg.End -= length
		case seg.Start < pos:
			seg.End = pos
		default:
			seg.Start = pos
			seg.End -= length
		}
		out = append(out, seg)
	}
	for i := len(out); i < len(s.segs); i++ {
		s.segs[i] = nil
	}
	s.segs = out
}

// Coalesce merges neighbouring plain segments with equal styles that meet
// at index.
func (s *Store) Coalesce(index int) {
	i := s.FindContaining(index)
	if i == 0 || i == len(s.segs) {
		return
	}
	a, b := s.segs[i-1], s.segs[i]
	if a.Kind == Plain && b.Kind == Plain && a.End == b.Start && b.Start == index && a.Style.Equal(b.Style) {
		a.End = b.End
		s.removeAt(i)
	}
}

// EnsureNonEmpty adds a default segment of style st spanning [0, docLen)
// if the store is empty. It reports whether it did so.
func (s *Store) EnsureNonEmpty(docLen int, st Style) bool {
	if len(s.segs) > 0 {
		return false
	}
	s.segs = append(s.segs, NewPlain(0, docLen, st))
	return true
}

// InRange returns copies of the segments intersecting [start, end),
// clipped to it.
func (s *Store) InRange(start, end int) []*Segment {
	var out []*Segment
	for i := s.FindContaining(start); i < len(s.segs); i++ {
		seg := s.segs[i]
		if seg.Start >= end {
			break
		}
		c := seg.Clone()
		if c.Start < start {
			c.Start = start
		}
		if c.End > end {
			c.End = end
		}
		out = append(out, c)
	}
	return out
}

// Validate checks that the segments exactly cover [0, docLen) in order.
func (s *Store) Validate(docLen int) error {
	if len(s.segs) == 0 {
		if docLen == 0 {
			return nil
		}
		return fmt.Errorf("no segments for %d characters", docLen)
	}
	at := 0
	for i, seg := range s.segs {
		if seg.Start != at {
			return fmt.Errorf("segment %d %v starts at %d, want %d", i, seg, seg.Start, at)
		}
		if seg.End < seg.Start {
			return fmt.Errorf("segment %d %v has negative length", i, seg)
		}
		if seg.Start == seg.End && !(docLen == 0 && len(s.segs) == 1) {
			return fmt.Errorf("segment %d %v is empty", i, seg)
		}
		at = seg.End
	}
	if at != docLen {
		return fmt.Errorf("segments end at %d, document has %d characters", at, docLen)
	}
	return nil
}

// Logsegments writes the store to the log, prefixed by the formatted
// message.
func (s *Store) Logsegments(format string, args ...interface{}) {
	log.Printf(format, args...)
	for i, seg := range s.segs {
		log.Printf("	%d	%v %+v", i, seg, seg.Style)
	}
}
