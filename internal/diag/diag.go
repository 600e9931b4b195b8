// Package diag is the core's diagnostic channel, written to stderr:
// progress notices, gated by Configuration.Verbose, and skip/ignore
// warnings, which are always printed.
// No third-party structured-logging library appears anywhere in the
// retrieval pack (the teacher's own diagnostics are bare fmt.Fprintln to
// os.Stderr); this package keeps that idiom rather than introducing one.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Logger is the diagnostic channel. The zero value writes to os.Stderr with
// verbose output disabled.
type Logger struct {
	Out     io.Writer
	Verbose bool
}

// New returns a Logger writing to os.Stderr.
func New(verbose bool) *Logger {
	return &Logger{Out: os.Stderr, Verbose: verbose}
}

// Warn always prints, regardless of verbosity: used for the EmptyModel and
// BadFacet skip notices (§7), which a caller should see even without -v.
func (l *Logger) Warn(format string, args ...interface{}) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "warning: "+format+"\n", args...)
}

// Progress prints only when Verbose is set: per-stage progress, mirroring
// original_source/slicer.py's "processing <model>" notices.
func (l *Logger) Progress(format string, args ...interface{}) {
	if !l.Verbose {
		return
	}
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, format+"\n", args...)
}
