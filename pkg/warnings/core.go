// Package warnings writes user-facing warnings (pruned suppressions, skipped
// pre-releases, configuration warnings) to a swappable writer and counts them.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Prefix starts every warning line.
const Prefix = "Warning: "

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
	issued     int
)

// Warnf writes a formatted warning to the configured writer.
//
// It performs the following operations:
//   - Formats the message using the provided format string and arguments
//   - Appends a newline when the message does not already end in one
//   - Acquires the write lock and increments the warning count
//   - Writes the message, prefixed with Prefix, to the configured writer
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	mu.Lock()
	defer mu.Unlock()
	issued++
	_, _ = io.WriteString(warnWriter, Prefix+msg)
}

// Count returns the number of warnings written since the last Reset.
//
// Returns:
//   - int: Warnings issued through Warnf
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return issued
}

// Reset zeroes the warning count.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	issued = 0
}

// WarningWriter returns the currently configured warning writer.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the current warning writer value
//
// Returns:
//   - io.Writer: The currently configured writer for warning messages
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Saves the previous warning writer for restoration
//   - Sets the new warning writer (defaults to os.Stderr if nil)
//   - Returns a function that restores the previous writer when called
//
// Parameters:
//   - w: The new writer; nil selects os.Stderr
//
// Returns:
//   - func(): Restores the previous writer
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
