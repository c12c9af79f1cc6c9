package textbase

import (
	"testing"

	"github.com/rjkroege/textflow/segment"
)

func TestSetCursorPosSkipsLockedText(t *testing.T) {
	d := newDoc(t, "")
	d.AppendText("abc", false, segment.DefaultStyle())
	d.AppendText("XYZ", false, segment.StyleReadOnly)
	d.AppendText("def", false, segment.DefaultStyle())

	tests := []struct {
		pos        int
		increasing bool
		want       int
	}{
		{4, true, 6},
		{4, false, 3},
		{5, true, 6},
		{3, true, 3},
		{6, false, 6},
		{7, false, 7},
	}
	for _, tc := range tests {
		if err := d.SetCursorPos(tc.pos, tc.increasing); err != nil {
			t.Fatal(err)
		}
		if got := d.Cursor(); got != tc.want {
			t.Errorf("SetCursorPos(%d, %v): cursor %d, want %d", tc.pos, tc.increasing, got, tc.want)
		}
	}
}

func TestCursorMovement(t *testing.T) {
	d := newDoc(t, "hello\nhi\nworld", WithSize(100, 0))

	d.SetCursorPos(4, true)
	if err := d.ChangeLine(1); err != nil {
		t.Fatalf("ChangeLine: %v", err)
	}
	if got := d.Cursor(); got != 8 {
		t.Errorf("down onto a short line: cursor %d, want 8", got)
	}
	if err := d.ChangeLine(1); err != nil {
		t.Fatalf("ChangeLine: %v", err)
	}
	if got := d.Cursor(); got != 13 {
		t.Errorf("down keeps the column: cursor %d, want 13", got)
	}
	if err := d.ChangeLine(5); err != nil {
		t.Fatalf("ChangeLine: %v", err)
	}
	if got := d.Cursor(); got != 13 {
		t.Errorf("down past the last line: cursor %d, want 13", got)
	}
	if err := d.ChangeLine(-2); err != nil {
		t.Fatalf("ChangeLine: %v", err)
	}
	if got := d.Cursor(); got != 4 {
		t.Errorf("up two lines: cursor %d, want 4", got)
	}

	d.SetCursorPos(7, true)
	if err := d.StartOfLine(); err != nil {
		t.Fatalf("StartOfLine: %v", err)
	}
	if got := d.Cursor(); got != 6 {
		t.Errorf("StartOfLine: cursor %d, want 6", got)
	}
	if err := d.EndOfLine(); err != nil {
		t.Fatalf("EndOfLine: %v", err)
	}
	if got := d.Cursor(); got != 8 {
		t.Errorf("EndOfLine: cursor %d, want 8", got)
	}
	if err := d.EndOfDoc(); err != nil {
		t.Fatalf("EndOfDoc: %v", err)
	}
	if got := d.Cursor(); got != d.Len() {
		t.Errorf("EndOfDoc: cursor %d, want %d", got, d.Len())
	}
	if err := d.StartOfDoc(); err != nil {
		t.Fatalf("StartOfDoc: %v", err)
	}
	if got := d.Cursor(); got != 0 {
		t.Errorf("StartOfDoc: cursor %d, want 0", got)
	}

	for _, tc := range []struct{ row, col, want int }{
		{2, 3, 12},
		{1, 10, 8},
		{0, 0, 0},
	} {
		if err := d.SetCursor(tc.row, tc.col); err != nil {
			t.Fatal(err)
		}
		if got := d.Cursor(); got != tc.want {
			t.Errorf("SetCursor(%d, %d): cursor %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
	if err := d.SetCursor(3, 0); err == nil {
		t.Error("SetCursor past the last line succeeded")
	}
}

func TestChangePage(t *testing.T) {
	d := tenLines(t, WithSize(100, 3*ch))
	if err := d.ChangePage(1); err != nil {
		t.Fatalf("ChangePage: %v", err)
	}
	if got := d.Scroll().Y; got != 3*ch {
		t.Errorf("scroll %d, want %d", got, 3*ch)
	}
	if got, _ := d.LineNumFromDocIndex(d.Cursor(), true); got != 3 {
		t.Errorf("cursor on line %d, want 3", got)
	}
	if err := d.ChangePage(-1); err != nil {
		t.Fatalf("ChangePage: %v", err)
	}
	if got := d.Scroll().Y; got != 0 || d.Cursor() != 0 {
		t.Errorf("back up: scroll %d cursor %d, want 0 and 0", got, d.Cursor())
	}
}

func TestCursorFollowsEdits(t *testing.T) {
	d := newDoc(t, "hello world")
	d.SetCursorPos(8, true)
	d.InsertString(0, ">> ")
	if got := d.Cursor(); got != 11 {
		t.Errorf("after insert before it: cursor %d, want 11", got)
	}
	d.InsertString(11, "!")
	if got := d.Cursor(); got != 11 {
		t.Errorf("after insert at it: cursor %d, want 11", got)
	}
	d.Remove(9, 4)
	if got := d.Cursor(); got != 9 {
		t.Errorf("after removal around it: cursor %d, want 9", got)
	}
	d.Remove(0, 3)
	if got := d.Cursor(); got != 6 {
		t.Errorf("after removal before it: cursor %d, want 6", got)
	}
}
