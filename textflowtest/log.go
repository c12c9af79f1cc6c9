package textflowtest

import (
	"bytes"
	"log"
	"strings"
)

// LogRecorder collects the output of a *log.Logger for inspection.
type LogRecorder struct {
	buf bytes.Buffer
}

// NewLogger returns a logger writing to a new LogRecorder.
func NewLogger() (*log.Logger, *LogRecorder) {
	r := &LogRecorder{}
	return log.New(&r.buf, "", 0), r
}

// Lines returns the logged lines.
func (r *LogRecorder) Lines() []string {
	s := strings.TrimRight(r.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Contains reports whether any logged line contains sub.
func (r *LogRecorder) Contains(sub string) bool {
	return strings.Contains(r.buf.String(), sub)
}
