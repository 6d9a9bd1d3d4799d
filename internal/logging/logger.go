// Package logging writes timestamped debug lines for --debug runs.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Logger appends timestamped lines to a writer, normally stderr.
// A nil *Logger discards everything, so callers never need to check.
type Logger struct {
	w   io.Writer
	now func() time.Time
}

// New creates a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	timestamp := l.now().Format(time.RFC3339)
	fmt.Fprintf(l.w, "[%s] %s\n", timestamp, line)
}
