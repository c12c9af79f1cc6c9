package segment_test

import (
	"image"
	"testing"

	"github.com/rjkroege/textflow/metrics"
	"github.com/rjkroege/textflow/segment"
	"github.com/rjkroege/textflow/textflowtest"
)

func context(text string) *segment.Context {
	return &segment.Context{
		Text:    []rune(text),
		Metrics: metrics.NewFixed(10, 12),
		Width:   100,
	}
}

func TestNumChars(t *testing.T) {
	for _, tc := range []struct {
		name       string
		text       string
		seg        *segment.Segment
		pixels     int
		segOffset  int
		lineOffset int
		want       int
	}{
		{
			name:   "fits",
			text:   "hello",
			seg:    segment.NewPlain(0, 5, segment.DefaultStyle()),
			pixels: 100,
			want:   5,
		},
		{
			name:   "wraps after space",
			text:   "hello world",
			seg:    segment.NewPlain(0, 11, segment.DefaultStyle()),
			pixels: 50,
			want:   6,
		},
		{
			name:   "forces one character on an empty line",
			text:   "hello",
			seg:    segment.NewPlain(0, 5, segment.DefaultStyle()),
			pixels: 3,
			want:   1,
		},
		{
			name:       "nothing when the line has content",
			text:       "xxhello",
			seg:        segment.NewPlain(2, 7, segment.DefaultStyle()),
			pixels:     3,
			lineOffset: 2,
			want:       0,
		},
		{
			name:   "includes newline",
			text:   "ab\ncd",
			seg:    segment.NewPlain(0, 5, segment.DefaultStyle()),
			pixels: 100,
			want:   3,
		},
		{
			name:   "forced character absorbs newline",
			text:   "a\nb",
			seg:    segment.NewPlain(0, 3, segment.DefaultStyle()),
			pixels: 0,
			want:   2,
		},
		{
			name:      "lone newline",
			text:      "a\n\nb",
			seg:       segment.NewPlain(0, 4, segment.DefaultStyle()),
			pixels:    100,
			segOffset: 2,
			want:      1,
		},
		{
			name:   "line break",
			text:   "\n",
			seg:    segment.NewLineBreak(0, segment.DefaultStyle()),
			pixels: 0,
			want:   1,
		},
		{
			name:       "image wraps when it does not fit",
			text:       "ab\uFFFC",
			seg:        segment.NewImage(2, segment.DefaultStyle(), image.Pt(40, 20)),
			pixels:     30,
			lineOffset: 2,
			want:       0,
		},
		{
			name:   "image at line start always fits",
			text:   "\uFFFC",
			seg:    segment.NewImage(0, segment.DefaultStyle(), image.Pt(40, 20)),
			pixels: 30,
			want:   1,
		},
		{
			name:       "widget forcing a new line",
			text:       "ab\uFFFC",
			seg:        segment.NewWidget(2, 3, textflowtest.Box{W: 5, H: 5}, segment.Padding{}, true),
			pixels:     100,
			lineOffset: 2,
			want:       0,
		},
		{
			name:       "widget inline",
			text:       "abwid",
			seg:        segment.NewWidget(2, 5, textflowtest.Box{W: 5, H: 5}, segment.Padding{Left: 2}, false),
			pixels:     100,
			lineOffset: 2,
			want:       3,
		},
		{
			name:      "consumed segment",
			text:      "abc",
			seg:       segment.NewPlain(0, 3, segment.DefaultStyle()),
			pixels:    100,
			segOffset: 3,
			want:      0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context(tc.text)
			got := tc.seg.NumChars(ctx, tc.pixels, tc.segOffset, tc.lineOffset, 1<<30)
			if got != tc.want {
				t.Errorf("NumChars got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	ctx := context("ab\n\uFFFCw")
	for _, tc := range []struct {
		name          string
		seg           *segment.Segment
		first, n      int
		width, height int
		breaks        bool
	}{
		{"plain", segment.NewPlain(0, 3, segment.DefaultStyle()), 0, 2, 20, 12, false},
		{"plain with newline", segment.NewPlain(0, 3, segment.DefaultStyle()), 0, 3, 20, 12, true},
		{"empty plain keeps height", segment.NewPlain(0, 3, segment.DefaultStyle()), 3, 0, 0, 12, false},
		{"line break", segment.NewLineBreak(2, segment.DefaultStyle()), 0, 1, 0, 12, true},
		{"image", segment.NewImage(3, segment.DefaultStyle(), image.Pt(30, 40)), 0, 1, 30, 40, false},
		{"image not placed", segment.NewImage(3, segment.DefaultStyle(), image.Pt(30, 40)), 0, 0, 0, 0, false},
		{
			"padded widget",
			segment.NewWidget(4, 5, textflowtest.Box{W: 7, H: 9}, segment.Padding{Left: 1, Right: 2, Top: 3, Bottom: 4}, false),
			0, 1, 10, 16, false,
		},
		{
			"widget not placed",
			segment.NewWidget(4, 5, textflowtest.Box{W: 7, H: 9}, segment.Padding{}, false),
			0, 0, 0, 0, false,
		},
	} {
		w, h, br := tc.seg.Dimensions(ctx, tc.first, tc.n)
		if w != tc.width || h != tc.height || br != tc.breaks {
			t.Errorf("%s: Dimensions got (%d, %d, %v), want (%d, %d, %v)", tc.name, w, h, br, tc.width, tc.height, tc.breaks)
		}
	}
}

func TestOffset(t *testing.T) {
	ctx := context("hello")
	seg := segment.NewPlain(0, 5, segment.DefaultStyle())
	if got, want := seg.Offset(ctx, 25, 0, 5, false), 2; got != want {
		t.Errorf("Offset got %d, want %d", got, want)
	}
	if got, want := seg.Offset(ctx, 25, 0, 5, true), 3; got != want {
		t.Errorf("Offset rounded got %d, want %d", got, want)
	}
	if got, want := seg.Offset(ctx, 5, 2, 3, true), 1; got != want {
		t.Errorf("Offset from inside got %d, want %d", got, want)
	}
	img := segment.NewImage(0, segment.DefaultStyle(), image.Pt(10, 10))
	if got := img.Offset(ctx, 8, 0, 1, true); got != 0 {
		t.Errorf("image Offset got %d, want 0", got)
	}
}

func TestEditable(t *testing.T) {
	for _, tc := range []struct {
		seg  *segment.Segment
		want bool
	}{
		{segment.NewPlain(0, 1, segment.DefaultStyle()), true},
		{segment.NewPlain(0, 1, segment.StyleReadOnly), false},
		{segment.NewHover(0, 1, segment.DefaultStyle(), segment.LinkStyle("x")), true},
		{segment.NewLineBreak(0, segment.DefaultStyle()), false},
		{segment.NewImage(0, segment.DefaultStyle(), image.Pt(1, 1)), false},
		{segment.NewWidget(0, 1, textflowtest.Box{}, segment.Padding{}, false), false},
	} {
		if got := tc.seg.Editable(); got != tc.want {
			t.Errorf("%v Editable got %v, want %v", tc.seg, got, tc.want)
		}
	}
}

func TestHoverStyle(t *testing.T) {
	ctx := &segment.Context{
		Text:    []rune("link"),
		Metrics: metrics.NewFonts(textflowtest.NewFont(2, 10), metrics.WithBold(textflowtest.NewFont(4, 10))),
	}
	seg := segment.NewHover(0, 4, segment.DefaultStyle(), segment.StyleBold)
	if w, _, _ := seg.Dimensions(ctx, 0, 4); w != 8 {
		t.Errorf("unhovered width got %d, want 8", w)
	}
	seg.Hovered = true
	if w, _, _ := seg.Dimensions(ctx, 0, 4); w != 16 {
		t.Errorf("hovered width got %d, want 16", w)
	}
}
