// Package undo records changes to a text so they can be undone and
// redone.
//
// Every change is a replacement: at an offset, old text is swapped out
// and new text swapped in. An insertion has no old text, a removal no new
// text, and an overwrite the same amount of both. Changes are gathered
// into actions. Undo and Redo work on whole actions, and an action stays
// open, collecting changes, until Commit is called.
//
// A change that continues the previous change of the open action, such as
// typing the next character or deleting the character before the last
// deletion, is merged into it.
package undo

import (
	"errors"
	"fmt"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Target is the text a History changes.
type Target interface {
	Insert(pos int, text []rune) (int, error)
	Remove(pos, length int) (int, error)
	OverwriteChar(pos int, r rune) (rune, error)
	Runes(start, end int) ([]rune, error)
}

// History is the undo and redo list of one text. The zero value is an
// empty history.
type History struct {
	actions []*action
	head    int     // actions[:head] are applied
	current *action // open action, or nil
	saved   *action // last applied action when marked pristine
}

// action is a list of changes undone and redone together.
type action struct {
	changes []*change
}

// change swaps old for new at pos.
type change struct {
	pos int
	old []rune
	new []rune
}

func (c *change) String() string {
	return fmt.Sprintf("%d: %q -> %q", c.pos, string(c.old), string(c.new))
}

func (c *change) isInsert() bool    { return len(c.old) == 0 && len(c.new) > 0 }
func (c *change) isRemove() bool    { return len(c.old) > 0 && len(c.new) == 0 }
func (c *change) isOverwrite() bool { return len(c.old) > 0 && len(c.old) == len(c.new) }

// Insert inserts text into t at pos and records it.
func (h *History) Insert(t Target, pos int, text []rune) (int, error) {
	n, err := t.Insert(pos, text)
	if err != nil {
		return n, err
	}
	if n > 0 {
		h.record(&change{pos: pos, new: append([]rune(nil), text[:n]...)})
	}
	return n, nil
}

// Remove removes length characters of t at pos and records them.
func (h *History) Remove(t Target, pos, length int) (int, error) {
	old, err := t.Runes(pos, pos+length)
	if err != nil {
		return 0, err
	}
	n, err := t.Remove(pos, length)
	if err != nil {
		return n, err
	}
	if length > 0 {
		h.record(&change{pos: pos, old: old})
	}
	return n, nil
}

// OverwriteChar replaces the character of t at pos with r and records
// the replacement.
func (h *History) OverwriteChar(t Target, pos int, r rune) (rune, error) {
	prev, err := t.OverwriteChar(pos, r)
	if err != nil {
		return prev, err
	}
	h.record(&change{pos: pos, old: []rune{prev}, new: []rune{r}})
	return prev, nil
}

// record adds c to the open action, merging it into the action's last
// change when c continues it. It opens an action if none is open,
// dropping everything that could have been redone.
func (h *History) record(c *change) {
	if h.current == nil {
		h.actions = append(h.actions[:h.head], &action{})
		h.current = h.actions[h.head]
		h.head++
	}
	a := h.current
	if n := len(a.changes); n > 0 && merge(a.changes[n-1], c) {
		return
	}
	a.changes = append(a.changes, c)
}

// merge folds c into last if c continues it and reports whether it did.
func merge(last, c *change) bool {
	switch {
	case last.isInsert() && c.isInsert() && c.pos == last.pos+len(last.new):
		last.new = append(last.new, c.new...)
	case last.isOverwrite() && c.isOverwrite() && c.pos == last.pos+len(last.new):
		last.old = append(last.old, c.old...)
		last.new = append(last.new, c.new...)
	case last.isRemove() && c.isRemove() && c.pos+len(c.old) == last.pos:
		// Backspacing.
		last.old = append(c.old, last.old...)
		last.pos = c.pos
	case last.isRemove() && c.isRemove() && c.pos == last.pos:
		// Deleting forward.
		last.old = append(last.old, c.old...)
	default:
		return false
	}
	return true
}

// Commit closes the open action. The next change starts a new one.
func (h *History) Commit() {
	h.current = nil
}

// CanUndo reports whether there is an action to undo.
func (h *History) CanUndo() bool { return h.head > 0 }

// CanRedo reports whether there is an undone action to redo.
func (h *History) CanRedo() bool { return h.head < len(h.actions) }

// Undo reverts the last applied action on t. It returns the position
// just after the earliest change reverted, where a caret belongs.
func (h *History) Undo(t Target) (int, error) {
	h.Commit()
	if h.head == 0 {
		return 0, ErrNothingToUndo
	}
	h.head--
	a := h.actions[h.head]
	pos := 0
	for i := len(a.changes) - 1; i >= 0; i-- {
		c := a.changes[i]
		if err := swap(t, c.pos, c.new, c.old); err != nil {
			return c.pos, fmt.Errorf("undo %v: %w", c, err)
		}
		pos = c.pos + len(c.old)
	}
	return pos, nil
}

// Redo repeats the last undone action on t. It returns the position just
// after the last change repeated.
func (h *History) Redo(t Target) (int, error) {
	h.Commit()
	if h.head == len(h.actions) {
		return 0, ErrNothingToRedo
	}
	a := h.actions[h.head]
	h.head++
	pos := 0
	for _, c := range a.changes {
		if err := swap(t, c.pos, c.old, c.new); err != nil {
			return c.pos, fmt.Errorf("redo %v: %w", c, err)
		}
		pos = c.pos + len(c.new)
	}
	return pos, nil
}

// swap replaces from, which t holds at pos, with to.
func swap(t Target, pos int, from, to []rune) error {
	if len(from) > 0 && len(from) == len(to) {
		for i, r := range to {
			if _, err := t.OverwriteChar(pos+i, r); err != nil {
				return err
			}
		}
		return nil
	}
	if len(from) > 0 {
		if _, err := t.Remove(pos, len(from)); err != nil {
			return err
		}
	}
	if len(to) > 0 {
		if _, err := t.Insert(pos, to); err != nil {
			return err
		}
	}
	return nil
}

// MarkPristine records the current state as the unmodified one, for
// example after saving.
func (h *History) MarkPristine() {
	h.Commit()
	if h.head > 0 {
		h.saved = h.actions[h.head-1]
	} else {
		h.saved = nil
	}
}

// IsPristine reports whether the text is in the state recorded by the
// last MarkPristine, or in its initial state if there was none.
func (h *History) IsPristine() bool {
	if h.head == 0 {
		return h.saved == nil
	}
	return h.saved == h.actions[h.head-1]
}

// Reset forgets every action.
func (h *History) Reset() {
	*h = History{}
}
