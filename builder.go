package clout

import (
	"io"
	"os"
)

// Builder accumulates output configuration. The zero value is not
// usable; obtain one from Init. Setters are chainable and operate on a
// value, so a Builder can be copied and reused before Done is called.
//
// Field updates are last-write-wins, with one deliberate exception:
// WithQuiet(false) and WithSilent(false) are no-ops rather than resets,
// so they can be fed raw flag values after WithVerbosity without
// clobbering it.
type Builder struct {
	threshold Level
	colorMode ColorMode
	out       io.Writer
}

// Init returns a Builder with the default configuration:
// status-level threshold, automatic color detection, standard output.
//
//	err := clout.Init().
//		WithVerbosity(verbose).
//		WithQuiet(quiet).
//		Done()
func Init() Builder {
	return Builder{
		threshold: LevelStatus,
		colorMode: ColorAuto,
		out:       os.Stdout,
	}
}

// WithLevel sets the threshold level directly.
func (b Builder) WithLevel(level Level) Builder {
	b.threshold = level
	return b
}

// WithVerbosity sets the threshold from a counted verbosity flag,
// supporting the common -v, -vv, -vvv convention:
//
//	0 => Status (the default)
//	1 => Info
//	2 => Debug
//	3 or more => Trace
func (b Builder) WithVerbosity(verbosity int) Builder {
	switch {
	case verbosity <= 0:
		b.threshold = LevelStatus
	case verbosity == 1:
		b.threshold = LevelInfo
	case verbosity == 2:
		b.threshold = LevelDebug
	default:
		b.threshold = LevelTrace
	}
	return b
}

// WithQuiet forces the threshold to errors only when quiet is true, and
// does nothing otherwise. Useful for a -q flag; call it after
// WithVerbosity.
func (b Builder) WithQuiet(quiet bool) Builder {
	if quiet {
		b.threshold = LevelError
	}
	return b
}

// WithSilent disables all messages, even errors, when silent is true,
// and does nothing otherwise. Useful for a --silent flag; call it after
// WithVerbosity and WithQuiet.
func (b Builder) WithSilent(silent bool) Builder {
	if silent {
		b.threshold = LevelSilent
	}
	return b
}

// WithColorMode sets the color usage mode.
func (b Builder) WithColorMode(mode ColorMode) Builder {
	b.colorMode = mode
	return b
}

// WithWriter rebinds output from os.Stdout to w. The color mode is
// resolved against w, so ColorAuto on a non-file writer yields plain
// text. This is primarily useful for tests and output redirection.
func (b Builder) WithWriter(w io.Writer) Builder {
	b.out = w
	return b
}

// Done finishes configuration and installs it as the process-wide
// output state. The color mode is resolved to a concrete decision here,
// exactly once. No messages may be emitted before Done has been called.
//
// Returns ErrAlreadyInitialized if output is already installed; the
// existing state remains active and unchanged.
func (b Builder) Done() error {
	st := &state{
		threshold: b.threshold,
		out:       b.out,
		styles:    newStyles(b.colorMode.resolve(b.out)),
	}

	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return ErrAlreadyInitialized
	}
	current = st
	lastWrite = nil
	return nil
}
