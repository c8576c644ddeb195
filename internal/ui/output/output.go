// Package output builds termenv outputs for the logger and the linear
// dashboard, honoring NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile detects the terminal's color support. NO_COLOR forces Ascii.
func ColorProfile() termenv.Profile {
	return unlessNoColor(termenv.EnvColorProfile)
}

// PipeProfile is the profile for watch output that is usually piped into a
// CI log viewer: plain ANSI, or Ascii under NO_COLOR.
func PipeProfile() termenv.Profile {
	return unlessNoColor(func() termenv.Profile { return termenv.ANSI })
}

func unlessNoColor(detect func() termenv.Profile) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return detect()
}

// New returns an output writing to w with the given profile. A nil w writes
// to stderr.
func New(w io.Writer, profile termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
