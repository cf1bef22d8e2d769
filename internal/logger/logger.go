// Package logger prints pipeline progress to stderr. Debug, Info and
// Section output only appears with --verbose; warnings always print,
// a degraded run (unreachable LLM, failed persistence) should never
// be silent.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	out     io.Writer = os.Stderr
)

// SetVerbose toggles debug/info output. Wired to the root --verbose flag.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output, primarily for tests. Defaults to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

func emit(always bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !always && !verbose {
		return
	}
	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug prints a fine-grained progress message in verbose mode.
func Debug(format string, args ...any) {
	emit(false, "[DEBUG] ", format, args...)
}

// Info prints a progress message in verbose mode.
func Info(format string, args ...any) {
	emit(false, "[INFO] ", format, args...)
}

// Warn prints a warning. Warnings are not gated on verbose mode.
func Warn(format string, args ...any) {
	emit(true, "[WARN] ", format, args...)
}

// Section marks the start of a pipeline stage in verbose mode.
func Section(name string) {
	emit(false, "", "\n=== %s ===", name)
}
