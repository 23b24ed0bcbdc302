// Package verbose provides debug logging for policy decisions.
//
// Messages are emitted through a logrus logger that stays silent until
// Enable is called, typically from the --verbose flag.
package verbose

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

// prefixFormatter renders entries as "[LEVEL] message key=value ...".
type prefixFormatter struct{}

// Format implements logrus.Formatter.
func (prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	buf.WriteString(strings.ToUpper(entry.Level.String()))
	buf.WriteString("] ")
	buf.WriteString(strings.TrimRight(entry.Message, "\n"))

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteString(fmt.Sprintf(" %s=%v", k, entry.Data[k]))
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(prefixFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Enable turns on verbose logging so debug and trace messages are printed.
func Enable() {
	logger.SetLevel(logrus.TraceLevel)
}

// Disable turns off verbose logging.
func Disable() {
	logger.SetLevel(logrus.InfoLevel)
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	if w != nil {
		logger.SetOutput(w)
	}
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Info prints an informational verbose message if enabled.
func Info(msg string) {
	logger.Debug(msg)
}

// Infof prints a formatted informational verbose message if enabled.
func Infof(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Tracef prints low-level parsing detail if enabled.
func Tracef(format string, args ...any) {
	logger.Tracef(format, args...)
}

// ConfigLoaded records which policy document was loaded and how many
// package rules it carried.
//
// Parameters:
//   - path: Path of the document, or "<embedded>" for the built-in default
//   - packageRules: Number of package rules in the document
func ConfigLoaded(path string, packageRules int) {
	logger.WithField("packageRules", packageRules).Debugf("Config loaded: %s", path)
}

// RuleMatched records the package rule chosen for a dependency.
func RuleMatched(pkg, pattern string) {
	logger.WithField("pattern", pattern).Debugf("Package '%s' matched rule", pkg)
}

// Decision records the outcome of evaluating one dependency.
//
// Parameters:
//   - pkg: The "<group>:<name>" identifier
//   - outcome: Short outcome label (e.g., "violation", "warning", "suppressed")
//   - fields: Additional context rendered as key=value pairs
func Decision(pkg, outcome string, fields map[string]any) {
	logger.WithFields(logrus.Fields(fields)).Debugf("Package '%s': %s", pkg, outcome)
}
