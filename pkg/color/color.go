// Package color provides terminal color output.
// It respects the NO_COLOR environment variable (https://no-color.org/).
package color

import (
	"fmt"
	"os"
	"sync"
)

var state struct {
	once    sync.Once
	enabled bool
}

// Init initializes the color system based on environment and flags.
func Init(noColorFlag bool) {
	state.once.Do(func() {
		if _, exists := os.LookupEnv("NO_COLOR"); exists {
			return
		}
		if os.Getenv("TERM") == "dumb" {
			return
		}
		if noColorFlag {
			return
		}
		state.enabled = true
	})
}

// Enabled returns true if color output is enabled.
func Enabled() bool {
	Init(false)
	return state.enabled
}

func wrap(code, s string) string {
	if !Enabled() {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, s)
}

// Red colors deviations and errors.
func Red(s string) string { return wrap("31", s) }

// Green colors compliant output.
func Green(s string) string { return wrap("32", s) }

// Yellow colors warnings.
func Yellow(s string) string { return wrap("33", s) }

// Bold emphasizes headings.
func Bold(s string) string { return wrap("1", s) }
