// Package logger prints the search pipeline's diagnostic narration on
// stderr. Warnings always print: they mark degraded behaviour (storage
// gone, catalog fetch failed) the user would otherwise never see. The
// narration proper (Debug, Info, Section) stays silent unless the
// --verbose flag turns it on, so stdout remains clean for piped output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// sink serialises all writes so interleaved goroutines (catalog watcher,
// HTTP handlers) cannot shear lines.
type sink struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

var std = sink{w: os.Stderr}

// SetVerbose turns the verbose narration on or off.
func SetVerbose(on bool) {
	std.mu.Lock()
	std.verbose = on
	std.mu.Unlock()
}

// IsVerbose reports whether the verbose narration is on.
func IsVerbose() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.verbose
}

// SetOutput redirects all output, warnings included. Tests use this to
// capture the stream; everything else leaves it on stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	std.w = w
	std.mu.Unlock()
}

// Debug narrates a pipeline step. Verbose only.
func Debug(format string, args ...any) {
	std.emit(true, "debug: "+format, args...)
}

// Info narrates a pipeline milestone. Verbose only.
func Info(format string, args ...any) {
	std.emit(true, format, args...)
}

// Section opens a named block in the narration. Verbose only.
func Section(name string) {
	std.emit(true, "\n[%s]", name)
}

// Warn reports degraded behaviour. Always printed.
func Warn(format string, args ...any) {
	std.emit(false, "warning: "+format, args...)
}

func (s *sink) emit(verboseOnly bool, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if verboseOnly && !s.verbose {
		return
	}
	fmt.Fprintf(s.w, format+"\n", args...)
}
