// Package logging configures the leveled stderr logger shared by tutel's
// commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when neither a flag nor the config sets a level.
const DefaultLevel = log.WarnLevel

// Options controls logger construction.
type Options struct {
	// Level is a level name ("debug", "info", "warn", "error"). Empty means
	// DefaultLevel.
	Level string
	// Verbose forces debug level.
	Verbose bool
}

// New returns a text logger writing to w with the "tutel" prefix.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "tutel",
	}), nil
}

// ParseLevel maps a level name to a log.Level.
func ParseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultLevel, nil
	}
	if name == "warning" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q (use debug, info, warn or error)", name)
	}
	return level, nil
}
