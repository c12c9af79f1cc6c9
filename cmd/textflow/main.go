// Textflow lays text out at a given width and prints the result. It
// reads the named file, or standard input.
//
// Usage:
//
//	textflow [-w width] [-wrap] [-lines] [-ellipses] [-metrics cells|face|font] [-font name] [file]
//
// The width is in terminal cells for -metrics cells and in pixels
// otherwise. It defaults to the width of the terminal, or 80 cells.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/term"

	"github.com/rjkroege/textflow/layout"
	"github.com/rjkroege/textflow/metrics"
	"github.com/rjkroege/textflow/segment"
	"github.com/rjkroege/textflow/textbase"
)

const defaultColumns = 80

type config struct {
	width    int
	wrap     bool
	lines    bool
	ellipses bool
	metrics  string
	font     string
	file     string

	// columns is the terminal width, used when width is unset.
	columns int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("textflow: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	cfg.columns = terminalColumns()

	in := io.Reader(os.Stdin)
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	if err := run(cfg, in, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("textflow", flag.ContinueOnError)
	cfg := &config{}
	fs.IntVar(&cfg.width, "w", 0, "layout `width`, in cells or pixels")
	fs.BoolVar(&cfg.wrap, "wrap", true, "wrap long lines")
	fs.BoolVar(&cfg.lines, "lines", false, "print the line table instead of the text")
	fs.BoolVar(&cfg.ellipses, "ellipses", false, "elide long lines when not wrapping")
	fs.StringVar(&cfg.metrics, "metrics", "cells", "measure in terminal `cells`, a built-in face, or a plan9 font")
	fs.StringVar(&cfg.font, "font", os.Getenv("font"), "plan9 `font` file for -metrics font")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return nil, fmt.Errorf("too many arguments")
	}
	cfg.file = fs.Arg(0)
	return cfg, nil
}

func terminalColumns() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultColumns
	}
	return w
}

// measurer returns the metrics named by cfg and the advance of one
// terminal column in its units.
func measurer(cfg *config) (segment.Metrics, int, error) {
	var m segment.Metrics
	switch cfg.metrics {
	case "cells":
		return metrics.NewCells(false), 1, nil
	case "face":
		m = metrics.NewFaces(basicfont.Face7x13)
	case "font":
		f, err := openFont(cfg.font)
		if err != nil {
			return nil, 0, err
		}
		m = metrics.NewFonts(f)
	default:
		return nil, 0, fmt.Errorf("unknown metrics %q", cfg.metrics)
	}
	w, _, _ := m.Measure([]rune{'0'}, 0, 1, segment.DefaultStyle())
	return m, w, nil
}

func run(cfg *config, in io.Reader, out io.Writer) error {
	b, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	m, column, err := measurer(cfg)
	if err != nil {
		return err
	}
	width := cfg.width
	if width <= 0 {
		width = cfg.columns * column
	}

	d := textbase.New(m,
		textbase.WithSize(width, 0),
		textbase.WithWordWrap(cfg.wrap),
		textbase.WithEllipses(cfg.ellipses),
		textbase.WithPlainText(true),
	)
	d.SetText(string(b))
	if cfg.lines {
		return printLines(d, out)
	}
	return printText(d, out)
}

func printLines(d *textbase.Document, out io.Writer) error {
	for _, l := range d.Lines() {
		if _, err := fmt.Fprintf(out, "%d %d %d %v\n", l.Start, l.End, l.Num, l.Rect); err != nil {
			return err
		}
	}
	return nil
}

func printText(d *textbase.Document, out io.Writer) error {
	lines := d.Lines()
	for i, l := range lines {
		// The empty line after a final newline has nothing to print.
		if i == len(lines)-1 && l.Start == l.End && i > 0 {
			break
		}
		text, err := d.Runes(l.Start, l.Elided)
		if err != nil {
			return err
		}
		s := strings.TrimSuffix(string(text), "\n")
		if l.Elided < l.End {
			s += string(layout.Ellipsis)
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	return nil
}
