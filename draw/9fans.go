//go:build !windows
// +build !windows

package draw

import (
	"fmt"

	draw "9fans.net/go/draw"
)

type (
	drawDisplay = draw.Display
	drawFont    = draw.Font
)

type fontImpl struct {
	*drawFont
}

var _ = Font((*fontImpl)(nil))

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }

// WrapFont returns f as a Font.
func WrapFont(f *draw.Font) Font {
	return &fontImpl{f}
}

// OpenFont connects to the draw device and loads the named font. Errors
// reported asynchronously by the device are sent on errch.
func OpenFont(errch chan<- error, fontname string) (Font, error) {
	d, err := draw.Init(errch, fontname, "textflow", "")
	if err != nil {
		return nil, fmt.Errorf("can't open display: %v", err)
	}
	return openFont(d, fontname)
}

func openFont(d *drawDisplay, fontname string) (Font, error) {
	f, err := d.OpenFont(fontname)
	if err != nil {
		return nil, fmt.Errorf("can't open font %q: %v", fontname, err)
	}
	return WrapFont(f), nil
}
