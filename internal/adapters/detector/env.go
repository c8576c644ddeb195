// Package detector decides whether the dashboard runs interactively or as a
// linear watch stream.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the dashboard.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive dashboard.
	ModeTUI
	// ModeLinear forces the line-oriented watch renderer.
	ModeLinear
)

func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// Environment is the part of the process environment detection looks at.
type Environment struct {
	IsTTY  func() bool
	Getenv func(string) string
}

// OSEnvironment inspects the real stdout and environment variables.
func OSEnvironment() Environment {
	return Environment{
		IsTTY:  func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		Getenv: os.Getenv,
	}
}

// Detect returns ModeLinear when stdout is not a terminal, when CI is set or
// when TERM is "dumb". Otherwise it returns ModeTUI.
func (e Environment) Detect() OutputMode {
	if e.IsTTY != nil && !e.IsTTY() {
		return ModeLinear
	}
	if e.Getenv != nil {
		ci := strings.ToLower(e.Getenv("CI"))
		if ci == "true" || ci == "1" {
			return ModeLinear
		}
		if e.Getenv("TERM") == "dumb" {
			return ModeLinear
		}
	}
	return ModeTUI
}

// DetectEnvironment runs Detect against the real process environment.
func DetectEnvironment() OutputMode {
	return OSEnvironment().Detect()
}

// ParseMode parses an --output-mode value. "ci" is an alias for "linear".
func ParseMode(flag string) (OutputMode, error) {
	switch strings.ToLower(flag) {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidConfig, "output-mode", flag)
	}
}

// ResolveMode applies a user override to auto-detection. ModeAuto defers to
// the detected mode.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
