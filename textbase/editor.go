package textbase

import (
	"image"

	"github.com/rjkroege/textflow/segment"
	"github.com/rjkroege/textflow/undo"
)

// opKind classifies Editor operations for merging in the undo history.
type opKind int

const (
	opOther opKind = iota
	opType
	opBackspace
)

// Editor is a Document whose edits can be undone. Consecutive typed
// characters, and consecutive backspaces, undo as one step.
type Editor struct {
	*Document
	history undo.History
	group   int
	last    opKind
}

// NewEditor returns an empty Editor measured by m.
func NewEditor(m segment.Metrics, opts ...Option) *Editor {
	return &Editor{Document: New(m, opts...)}
}

// target adapts a Document to undo.Target.
type target struct {
	*Document
}

func (t target) Insert(pos int, text []rune) (int, error) {
	return t.Document.Insert(pos, text)
}

func (e *Editor) target() target { return target{e.Document} }

// begin starts an operation of kind k, closing the open undo step unless
// k continues it.
func (e *Editor) begin(k opKind) {
	if e.group == 0 && (k == opOther || k != e.last) {
		e.history.Commit()
	}
	e.last = k
}

func (e *Editor) end() {
	if e.group == 0 && e.last == opOther {
		e.history.Commit()
	}
}

// Insert inserts text at pos, leaves the caret after it and returns the
// number of characters inserted.
func (e *Editor) Insert(pos int, text []rune) (int, error) {
	if err := e.checkIndex(pos); err != nil {
		return 0, err
	}
	pos = e.EditableIndex(pos, true)
	e.begin(opOther)
	defer e.end()
	n, err := e.history.Insert(e.target(), pos, text)
	if err != nil {
		return n, err
	}
	return n, e.SetCursorPos(pos+n, true)
}

// Remove deletes length characters at pos and leaves the caret there.
func (e *Editor) Remove(pos, length int) (int, error) {
	e.begin(opOther)
	defer e.end()
	n, err := e.history.Remove(e.target(), pos, length)
	if err != nil {
		return n, err
	}
	return n, e.SetCursorPos(pos, false)
}

// OverwriteChar replaces the character at pos with r.
func (e *Editor) OverwriteChar(pos int, r rune) (rune, error) {
	e.begin(opOther)
	defer e.end()
	return e.history.OverwriteChar(e.target(), pos, r)
}

// AddChar types r at the caret, replacing the selection if there is one.
func (e *Editor) AddChar(r rune) error {
	if e.ReadOnly() {
		return ErrReadOnly
	}
	if e.HasSelection() {
		if err := e.DeleteSelection(); err != nil {
			return err
		}
	}
	e.begin(opType)
	pos := e.EditableIndex(e.Cursor(), true)
	n, err := e.history.Insert(e.target(), pos, []rune{r})
	if err != nil {
		return err
	}
	return e.SetCursorPos(pos+n, true)
}

// Backspace deletes the selection, or else the character before the
// caret.
func (e *Editor) Backspace() error {
	if e.HasSelection() {
		return e.DeleteSelection()
	}
	if e.Cursor() == 0 {
		return nil
	}
	e.begin(opBackspace)
	pos := e.Cursor() - 1
	if _, err := e.history.Remove(e.target(), pos, 1); err != nil {
		return err
	}
	return e.SetCursorPos(pos, false)
}

// DeleteSelection removes the selected text.
func (e *Editor) DeleteSelection() error {
	s := e.Selection()
	if s.Start == s.End {
		return nil
	}
	if _, err := e.Remove(s.Start, s.End-s.Start); err != nil {
		return err
	}
	e.ClearSelection()
	return nil
}

// Group runs fn so that the edits it makes through e undo as one step.
func (e *Editor) Group(fn func() error) error {
	if e.group == 0 {
		e.history.Commit()
	}
	e.group++
	err := fn()
	e.group--
	if e.group == 0 {
		e.history.Commit()
		e.last = opOther
	}
	return err
}

// BlockExtensions ends the current undo step: the next edit is undone
// separately even if it continues the last one.
func (e *Editor) BlockExtensions() {
	e.history.Commit()
	e.last = opOther
}

// SetText replaces the text and forgets the undo history.
func (e *Editor) SetText(s string) {
	e.Document.SetText(s)
	e.forget()
}

// Clear empties the document and forgets the undo history.
func (e *Editor) Clear() {
	e.Document.Clear()
	e.forget()
}

// RemoveFirstLine drops the first line of text. The undo history refers
// to positions the removal moved, so it is forgotten.
func (e *Editor) RemoveFirstLine() int {
	n := e.Document.RemoveFirstLine()
	if n > 0 {
		e.forget()
	}
	return n
}

// AppendText adds s at the end of the text. Appends cannot be undone;
// recorded steps lie before the appended text and stay valid.
func (e *Editor) AppendText(s string, prependNewline bool, st segment.Style) int {
	e.BlockExtensions()
	return e.Document.AppendText(s, prependNewline, st)
}

// AppendLineBreak adds a hard line break at the end of the text.
func (e *Editor) AppendLineBreak(st segment.Style) {
	e.BlockExtensions()
	e.Document.AppendLineBreak(st)
}

// AppendImage adds an image at the end of the text.
func (e *Editor) AppendImage(st segment.Style, size image.Point) {
	e.BlockExtensions()
	e.Document.AppendImage(st, size)
}

// AppendWidget adds an inline widget at the end of the text.
func (e *Editor) AppendWidget(w segment.Widget, text string, pad segment.Padding, forceNewline bool) {
	e.BlockExtensions()
	e.Document.AppendWidget(w, text, pad, forceNewline)
}

func (e *Editor) forget() {
	e.history.Reset()
	e.last = opOther
}

// Undo reverts the last undo step and puts the caret where it happened.
func (e *Editor) Undo() error {
	return e.replay(e.history.Undo)
}

// Redo repeats the last undone step.
func (e *Editor) Redo() error {
	return e.replay(e.history.Redo)
}

func (e *Editor) replay(fn func(undo.Target) (int, error)) error {
	if e.ReadOnly() {
		return ErrReadOnly
	}
	e.last = opOther
	pos, err := fn(e.target())
	if err != nil {
		return err
	}
	e.ClearSelection()
	return e.SetCursorPos(min(pos, e.Len()), false)
}

// CanUndo reports whether Undo has anything to revert.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo has anything to repeat.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// MarkPristine records the current text as unmodified.
func (e *Editor) MarkPristine() { e.history.MarkPristine() }

// IsPristine reports whether the text is as it was at the last
// MarkPristine.
func (e *Editor) IsPristine() bool { return e.history.IsPristine() }
