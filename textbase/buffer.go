package textbase

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// buffer holds the characters of a document and keeps their UTF-8 size
// current so the length limit can be checked without a scan.
type buffer struct {
	runes  []rune
	nbytes int
}

func runesSize(rs []rune) int {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	return n
}

// len returns the number of characters.
func (b *buffer) len() int { return len(b.runes) }

// size returns the UTF-8 length of the text in bytes.
func (b *buffer) size() int { return b.nbytes }

// at returns the character at i.
func (b *buffer) at(i int) rune { return b.runes[i] }

// all returns the whole text without copying.
func (b *buffer) all() []rune { return b.runes }

// slice returns the characters in [start, end) without copying.
func (b *buffer) slice(start, end int) []rune { return b.runes[start:end] }

func (b *buffer) String() string { return string(b.runes) }

func (b *buffer) insert(pos int, rs []rune) {
	if pos < 0 || pos > len(b.runes) {
		panic(fmt.Sprintf("textbase: insert at %d into %d characters", pos, len(b.runes)))
	}
	b.runes = slices.Insert(b.runes, pos, rs...)
	b.nbytes += runesSize(rs)
}

func (b *buffer) delete(start, end int) {
	if start < 0 || start > end || end > len(b.runes) {
		panic(fmt.Sprintf("textbase: delete [%d,%d) from %d characters", start, end, len(b.runes)))
	}
	b.nbytes -= runesSize(b.runes[start:end])
	b.runes = slices.Delete(b.runes, start, end)
}

// set replaces the character at i with r and returns the old one.
func (b *buffer) set(i int, r rune) rune {
	old := b.runes[i]
	b.runes[i] = r
	b.nbytes += utf8.RuneLen(r) - utf8.RuneLen(old)
	return old
}

// index returns the index of the first r at or after from, or -1.
func (b *buffer) index(from int, r rune) int {
	if i := slices.Index(b.runes[from:], r); i >= 0 {
		return from + i
	}
	return -1
}

func (b *buffer) clear() {
	b.runes = b.runes[:0]
	b.nbytes = 0
}
