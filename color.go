package clout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode expresses the caller's intent for colored output.
type ColorMode int

const (
	// ColorAuto uses color only when the output stream is an interactive
	// terminal. This is the default.
	ColorAuto ColorMode = iota
	// ColorNever disables color unconditionally.
	ColorNever
	// ColorAlways enables color even when output is redirected to a
	// file or pipe.
	ColorAlways
)

// String returns the lowercase name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	case ColorAlways:
		return "always"
	default:
		return fmt.Sprintf("colormode(%d)", int(m))
	}
}

// ParseColorMode parses a string into a ColorMode.
// Valid values are: "auto", "never", "always".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	case "always":
		return ColorAlways, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %s (valid options: auto, never, always)", s)
	}
}

// resolve converts the mode into a concrete decision for the given
// stream. The terminal probe happens here, once, at install time.
func (m ColorMode) resolve(w io.Writer) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// newStyles builds the per-level color palette with the resolved color
// decision baked in. LevelStatus maps to nil so status messages are
// written without any escape sequences. LevelSilent has no entry since
// it is never rendered.
func newStyles(colorize bool) map[Level]*color.Color {
	styles := map[Level]*color.Color{
		LevelError: color.New(color.FgRed, color.Bold),
		LevelWarn:  color.New(color.FgYellow, color.Bold),
		LevelInfo:  color.New(color.FgWhite),
		LevelDebug: color.New(color.FgCyan),
		LevelTrace: color.New(color.FgMagenta),
	}
	for _, c := range styles {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	styles[LevelStatus] = nil
	return styles
}
