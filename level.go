package clout

import (
	"fmt"
	"strings"
)

// Level represents the importance of a message. It doubles as the
// verbosity threshold: a message is shown iff the configured threshold
// is at least the message's level.
type Level int

const (
	// LevelSilent displays absolutely nothing. It is a threshold-only
	// value; no message is ever emitted at this level.
	LevelSilent Level = iota
	// LevelError is for messages indicating that an operation cannot proceed.
	LevelError
	// LevelWarn is for messages indicating that an operation will proceed
	// but may not do what the user wanted.
	LevelWarn
	// LevelStatus is for the usual messages that indicate what an
	// operation is doing. This is the default threshold.
	LevelStatus
	// LevelInfo is for messages the user might find useful but are not essential.
	LevelInfo
	// LevelDebug is for messages useful to developers or bug reports,
	// but not for general use.
	LevelDebug
	// LevelTrace is for low-level messages about what an operation is
	// doing. Usually too noisy even for a bug report.
	LevelTrace
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelSilent:
		return "silent"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelStatus:
		return "status"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel parses a string into a Level.
// Valid values are: "silent", "error", "warn", "warning", "status",
// "info", "debug", "trace".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "silent":
		return LevelSilent, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "status":
		return LevelStatus, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelStatus, fmt.Errorf("invalid level: %s (valid options: silent, error, warn, status, info, debug, trace)", s)
	}
}
