package clout

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Lifecycle errors returned by Done and Shutdown.
var (
	// ErrAlreadyInitialized is returned by Builder.Done when output has
	// already been installed without an intervening Shutdown.
	ErrAlreadyInitialized = errors.New("clout already initialized")
	// ErrAlreadyShutdown is returned by Shutdown when no output is installed.
	ErrAlreadyShutdown = errors.New("clout already shutdown")
	// ErrWriteFailed wraps I/O errors from the underlying write. Leveled
	// calls are fire-and-forget, so write errors are parked where
	// LastWriteError can retrieve them instead of being returned.
	ErrWriteFailed = errors.New("clout write failed")
)

// state is the installed output configuration: the threshold plus the
// writer and its resolved per-level palette. It is immutable after
// install aside from writer I/O.
type state struct {
	threshold Level
	out       io.Writer
	styles    map[Level]*color.Color
}

// The process-wide singleton slot. mu guards the whole slot for the
// duration of every install, shutdown, and emit, so a message's
// style/write/reset sequence cannot interleave with another goroutine's.
var (
	mu        sync.Mutex
	current   *state
	lastWrite error
)

// Active reports whether output is currently installed. It allows
// optional consumers, such as log bridges, to decline to emit instead
// of panicking.
func Active() bool {
	mu.Lock()
	defer mu.Unlock()
	return current != nil
}

// Shutdown uninstalls the output state. Not strictly necessary before
// process exit, but required before reconfiguring with a new Init chain.
// Returns ErrAlreadyShutdown if output is not installed.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return ErrAlreadyShutdown
	}
	current = nil
	return nil
}

// LastWriteError returns the most recent write failure, wrapped in
// ErrWriteFailed, or nil. The slot is cleared by the next successful
// Done.
func LastWriteError() error {
	mu.Lock()
	defer mu.Unlock()
	return lastWrite
}

// Emit renders a message at the given level, applying the threshold
// filter and the level's style. Prefer the leveled functions; Emit is
// exported for bridges that dispatch on a computed level.
//
// Emit panics if called before Init().Done(): emitting without
// installed output is an initialization-order bug in the caller, and
// silently dropping the message would mask it. Messages above the
// threshold are discarded without I/O. LevelSilent is threshold-only
// and never renders.
func Emit(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		panic("clout: attempt to emit before Init().Done()")
	}
	emitLocked(level, format, args...)
}

// TryEmit is Emit for optional consumers such as log bridges: it
// renders the message if output is installed and reports whether it
// was. Unlike Emit it never panics, so it can safely race Shutdown.
func TryEmit(level Level, format string, args ...any) bool {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return false
	}
	emitLocked(level, format, args...)
	return true
}

// emitLocked does the filter/render work. Caller must hold mu with
// current non-nil.
func emitLocked(level Level, format string, args ...any) {
	if level == LevelSilent || current.threshold < level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	var err error
	if c := current.styles[level]; c != nil {
		_, err = c.Fprintln(current.out, msg)
	} else {
		_, err = fmt.Fprintln(current.out, msg)
	}
	if err != nil {
		lastWrite = fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
}

// Error emits an error message.
func Error(format string, args ...any) {
	Emit(LevelError, format, args...)
}

// Warn emits a warning message.
func Warn(format string, args ...any) {
	Emit(LevelWarn, format, args...)
}

// Status emits a status message.
func Status(format string, args ...any) {
	Emit(LevelStatus, format, args...)
}

// Info emits an info message.
func Info(format string, args ...any) {
	Emit(LevelInfo, format, args...)
}

// Debug emits a debug message.
func Debug(format string, args ...any) {
	Emit(LevelDebug, format, args...)
}

// Trace emits a trace message.
func Trace(format string, args ...any) {
	Emit(LevelTrace, format, args...)
}
