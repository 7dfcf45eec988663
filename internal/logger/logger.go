// Package logger provides verbose logging for the Codify CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the matching and
// categorization pipeline.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}

// Dump logs a set of named attributes at debug level, formatting each
// value by its kind. Collections are summarised by size past ten
// elements so large datasets do not flood the log.
func Dump(title string, attrs map[string]any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(output, "[DEBUG] %s:\n", title)
	for _, name := range names {
		fmt.Fprintf(output, "  %s = %s\n", name, formatAttr(attrs[name]))
	}
}

// formatAttr renders one attribute value (caller must hold lock).
func formatAttr(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", val)
	case fmt.Stringer:
		return val.String()
	case []string:
		if len(val) > 10 {
			return fmt.Sprintf("[%d items]", len(val))
		}
		return fmt.Sprintf("%v", val)
	case map[string]int:
		if len(val) > 10 {
			return fmt.Sprintf("{%d keys}", len(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
