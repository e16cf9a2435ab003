// Package output creates termenv.Output values with consistent color
// profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for the current environment.
// NO_COLOR forces plain ASCII output; otherwise the terminal's capabilities
// are detected automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output over w using the detected color profile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
