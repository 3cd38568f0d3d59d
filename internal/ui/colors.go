package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// ColorMode selects whether output carries ANSI color codes.
type ColorMode int

const (
	ColorModeUndefined ColorMode = iota + 1
	ColorModeSuppressed
	ColorModeForced
)

// String returns the name accepted by ParseColorMode.
func (c ColorMode) String() string {
	switch c {
	case ColorModeSuppressed:
		return "never"
	case ColorModeForced:
		return "always"
	default:
		return "auto"
	}
}

// ParseColorMode accepts auto, always or never, plus the boolean spellings
// of the latter two.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorModeUndefined, nil
	case "always", "true", "1", "force":
		return ColorModeForced, nil
	case "never", "false", "0", "none":
		return ColorModeSuppressed, nil
	}
	return ColorModeUndefined, errors.Errorf("unknown color mode %q, expected auto, always or never", s)
}

// GetColorModeFromEnv reads FORCE_COLOR the way the supports-color npm
// package does: "0" or "false" disables color, "1" through "3" or "true"
// force it on. Support levels are not distinguished.
func GetColorModeFromEnv() ColorMode {
	switch forceColor := os.Getenv("FORCE_COLOR"); {
	case forceColor == "false" || forceColor == "0":
		return ColorModeSuppressed
	case forceColor == "true" || forceColor == "1" || forceColor == "2" || forceColor == "3":
		return ColorModeForced
	default:
		return ColorModeUndefined
	}
}

// applyColorMode resolves colorMode to either suppressed or forced,
// updating fatih/color's global switch to match.
func applyColorMode(colorMode ColorMode) ColorMode {
	switch colorMode {
	case ColorModeForced:
		color.NoColor = false
	case ColorModeSuppressed:
		color.NoColor = true
	default:
		// color.NoColor already defaults from the tty check and NO_COLOR.
	}
	if color.NoColor {
		return ColorModeSuppressed
	}
	return ColorModeForced
}
