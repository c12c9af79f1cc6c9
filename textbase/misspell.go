package textbase

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Checker decides whether a word is spelled correctly.
type Checker interface {
	Check(word string) bool
}

// CheckerFunc adapts a function to a Checker.
type CheckerFunc func(word string) bool

func (f CheckerFunc) Check(word string) bool { return f(word) }

// Misspellings returns the ranges marked as misspelled, in order.
func (d *Document) Misspellings() []Range { return d.misspelled }

// SetMisspellings replaces the misspelled ranges. Ranges outside the
// document or empty are dropped.
func (d *Document) SetMisspellings(rs []Range) {
	d.misspelled = d.misspelled[:0]
	for _, r := range rs {
		if r.Start >= 0 && r.Start < r.End && r.End <= d.Len() {
			d.misspelled = append(d.misspelled, r)
		}
	}
	sort.Slice(d.misspelled, func(i, j int) bool {
		return d.misspelled[i].Start < d.misspelled[j].Start
	})
}

// CheckSpelling marks every word of the document that c rejects. Words
// are found with the Unicode word boundary rules; runs without a letter
// are not words.
func (d *Document) CheckSpelling(c Checker) []Range {
	var rs []Range
	s := d.text.String()
	pos, state := 0, -1
	for s != "" {
		var word string
		word, s, state = uniseg.FirstWordInString(s, state)
		n := utf8.RuneCountInString(word)
		if hasLetter(word) && !c.Check(word) {
			rs = append(rs, Range{pos, pos + n})
		}
		pos += n
	}
	d.misspelled = rs
	return rs
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// MisspelledAt returns the misspelled range containing pos.
func (d *Document) MisspelledAt(pos int) (Range, bool) {
	i := sort.Search(len(d.misspelled), func(i int) bool {
		return d.misspelled[i].End > pos
	})
	if i < len(d.misspelled) && d.misspelled[i].Start <= pos {
		return d.misspelled[i], true
	}
	return Range{}, false
}

// shiftRanges adjusts rs for an edit replacing [start, end) and moving
// the text after it by delta. Ranges touching the edit are dropped.
func shiftRanges(rs []Range, start, end, delta int) []Range {
	out := rs[:0]
	for _, r := range rs {
		switch {
		case r.End < start:
		case r.Start > end:
			r.Start += delta
			r.End += delta
		default:
			continue
		}
		out = append(out, r)
	}
	return out
}

// dropTouching removes the ranges touching [start, end).
func dropTouching(rs []Range, start, end int) []Range {
	return shiftRanges(rs, start, end, 0)
}
