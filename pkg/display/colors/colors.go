// Package colors wraps terminal output in ANSI colour sequences. It has no
// vogue dependencies so that both rendering and the interactive workflow can
// use it.
package colors

import "os"

const (
	ansiCyan   = "\x1b[36m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// Palette wraps text in ANSI colour sequences. The zero value is a plain
// palette that returns text unchanged.
type Palette struct {
	Enabled bool
}

// NewPalette returns a palette that colours output when enabled is true.
func NewPalette(enabled bool) Palette {
	return Palette{Enabled: enabled}
}

// ColorEnabled reports whether coloured output should be used: not when
// --no-color was given and not when the NO_COLOR environment variable is set.
func ColorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}

func (p Palette) wrap(code, text string) string {
	if !p.Enabled {
		return text
	}
	return code + text + ansiReset
}

// Cyan colours section headings.
func (p Palette) Cyan(text string) string { return p.wrap(ansiCyan, text) }

// Red colours violations.
func (p Palette) Red(text string) string { return p.wrap(ansiRed, text) }

// Green colours versions and confirmations.
func (p Palette) Green(text string) string { return p.wrap(ansiGreen, text) }

// Yellow colours package identifiers in warnings and prompts.
func (p Palette) Yellow(text string) string { return p.wrap(ansiYellow, text) }
