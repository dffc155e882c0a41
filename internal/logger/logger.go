// Package logger prints progress and diagnostics for the CLI on
// stderr. Debug and Info lines appear only in verbose mode; warnings
// always print, because they signal degraded results (truncated pages,
// rejected filters, stale snapshots) the user should see even without
// the flag. Log output is advisory and never load-bearing.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables the debug and info lines.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput redirects the log output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func emit(level string, gated bool, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, level+" "+format+"\n", args...)
}

// Debug prints a message in verbose mode.
func Debug(format string, args ...any) {
	emit("[DEBUG]", true, format, args)
}

// Info prints an informational message in verbose mode.
func Info(format string, args ...any) {
	emit("[INFO]", true, format, args)
}

// Warn prints a warning. Warnings are not gated on verbose mode.
func Warn(format string, args ...any) {
	emit("[WARN]", false, format, args)
}
