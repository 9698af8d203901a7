package clout

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/clout/testutil"
)

// resetOutput tears down any installed state before and after a test so
// the process-wide singleton never leaks between tests.
func resetOutput(t *testing.T) {
	t.Helper()
	_ = Shutdown()
	t.Cleanup(func() { _ = Shutdown() })
}

func TestDoneInstalls(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().WithWriter(&buf).Done())
	assert.True(t, Active())

	Status("hello")
	assert.Equal(t, "hello\n", buf.String())
}

func TestDoneBindsStdoutByDefault(t *testing.T) {
	resetOutput(t)

	output := testutil.CaptureOutput(t, func() error {
		if err := Init().WithColorMode(ColorNever).Done(); err != nil {
			return err
		}
		Status("bound to stdout")
		return Shutdown()
	})

	assert.Equal(t, "bound to stdout\n", output)
}

func TestDoneTwiceFails(t *testing.T) {
	resetOutput(t)

	var first, second bytes.Buffer
	require.NoError(t, Init().WithVerbosity(1).WithWriter(&first).Done())

	err := Init().WithWriter(&second).Done()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	// the first-installed state must remain active
	Info("still here")
	assert.Equal(t, "still here\n", first.String())
	assert.Empty(t, second.String())
}

func TestShutdown(t *testing.T) {
	resetOutput(t)

	require.NoError(t, Init().WithWriter(&bytes.Buffer{}).Done())
	require.NoError(t, Shutdown())
	assert.False(t, Active())

	err := Shutdown()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyShutdown)
}

func TestShutdownBeforeInit(t *testing.T) {
	resetOutput(t)

	assert.ErrorIs(t, Shutdown(), ErrAlreadyShutdown)
}

func TestEmitBeforeInitPanics(t *testing.T) {
	resetOutput(t)

	assert.PanicsWithValue(t, "clout: attempt to emit before Init().Done()", func() {
		Status("too early")
	})
}

func TestTryEmit(t *testing.T) {
	resetOutput(t)

	assert.False(t, TryEmit(LevelError, "nowhere to go"))

	var buf bytes.Buffer
	require.NoError(t, Init().WithWriter(&buf).Done())

	assert.True(t, TryEmit(LevelStatus, "shown"))
	assert.True(t, TryEmit(LevelDebug, "filtered, but output is installed"))
	assert.Equal(t, "shown\n", buf.String())
}

func TestThresholdFiltering(t *testing.T) {
	levels := []Level{LevelError, LevelWarn, LevelStatus, LevelInfo, LevelDebug, LevelTrace}
	thresholds := []Level{LevelSilent, LevelError, LevelWarn, LevelStatus, LevelInfo, LevelDebug, LevelTrace}

	for _, threshold := range thresholds {
		t.Run(threshold.String(), func(t *testing.T) {
			resetOutput(t)

			var buf bytes.Buffer
			require.NoError(t, Init().WithLevel(threshold).WithWriter(&buf).Done())

			for _, level := range levels {
				buf.Reset()
				Emit(level, "message at %s", level)
				if threshold >= level {
					assert.Equal(t, fmt.Sprintf("message at %s\n", level), buf.String())
				} else {
					assert.Empty(t, buf.String(), "%s should be filtered at threshold %s", level, threshold)
				}
			}
		})
	}
}

func TestEmitSilentLevelNeverRenders(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().WithLevel(LevelTrace).WithWriter(&buf).Done())

	Emit(LevelSilent, "should not appear")
	assert.Empty(t, buf.String())
}

func TestSilentSuppressesAllLeveledCalls(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().WithSilent(true).WithWriter(&buf).Done())

	Error("e")
	Warn("w")
	Status("s")
	Info("i")
	Debug("d")
	Trace("t")
	assert.Empty(t, buf.String())
}

func TestLeveledCallsFormat(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().WithLevel(LevelTrace).WithWriter(&buf).Done())

	Error("an error: %d", 1)
	Warn("a warning: %d", 1+1)
	Status("a normal message")
	Info("useful %s", "info")
	Debug("debug info")
	Trace("tracing")

	want := "an error: 1\na warning: 2\na normal message\nuseful info\ndebug info\ntracing\n"
	assert.Equal(t, want, buf.String())
}

func TestColorNeverEmitsNoEscapes(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().
		WithLevel(LevelTrace).
		WithColorMode(ColorNever).
		WithWriter(&buf).
		Done())

	Error("e")
	Debug("d")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestColorAlwaysEmitsEscapesToNonTerminal(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().
		WithLevel(LevelTrace).
		WithColorMode(ColorAlways).
		WithWriter(&buf).
		Done())

	Error("boom")
	Warn("careful")
	Status("plain")
	Info("fyi")
	Debug("dbg")
	Trace("trc")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "\x1b[31;1mboom\x1b[0m", lines[0])
	assert.Equal(t, "\x1b[33;1mcareful\x1b[0m", lines[1])
	assert.Equal(t, "plain", lines[2]) // status is never styled
	assert.Equal(t, "\x1b[37mfyi\x1b[0m", lines[3])
	assert.Equal(t, "\x1b[36mdbg\x1b[0m", lines[4])
	assert.Equal(t, "\x1b[35mtrc\x1b[0m", lines[5])
}

func TestColorAutoOnBufferIsPlain(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().WithLevel(LevelTrace).WithWriter(&buf).Done())

	Error("e")
	assert.Equal(t, "e\n", buf.String())
}

func TestConcurrentEmitsDoNotInterleave(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().
		WithLevel(LevelTrace).
		WithColorMode(ColorAlways).
		WithWriter(&buf).
		Done())

	const goroutines = 8
	const messages = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < messages; i++ {
				Trace("goroutine %d message %d", g, i)
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, goroutines*messages)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "\x1b[35mgoroutine "),
			"corrupted line: %q", line)
		assert.True(t, strings.HasSuffix(line, "\x1b[0m"),
			"corrupted line: %q", line)
	}
}

func TestConcurrentLifecycleAndEmit(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().WithWriter(&buf).Done())

	// Racing installs against emits must never panic or corrupt the
	// slot: every Done here loses to the already-active state.
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				assert.ErrorIs(t, Init().WithWriter(&bytes.Buffer{}).Done(), ErrAlreadyInitialized)
				Status("still alive")
			}
		}()
	}
	wg.Wait()

	assert.True(t, Active())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteFailureParkedNotPropagated(t *testing.T) {
	resetOutput(t)

	require.NoError(t, Init().WithWriter(failingWriter{}).Done())
	require.NoError(t, LastWriteError())

	Status("going nowhere")

	err := LastWriteError()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Contains(t, err.Error(), "broken pipe")

	// the singleton must not be poisoned by the failure
	Status("still fire-and-forget")
	assert.True(t, Active())
	require.NoError(t, Shutdown())

	// a fresh install clears the parked error
	var buf bytes.Buffer
	require.NoError(t, Init().WithWriter(&buf).Done())
	assert.NoError(t, LastWriteError())
}

func TestReinitAfterShutdown(t *testing.T) {
	resetOutput(t)

	var buf bytes.Buffer
	require.NoError(t, Init().WithVerbosity(0).WithWriter(&buf).Done())
	Status("x")
	Debug("y")
	assert.Equal(t, "x\n", buf.String())

	require.NoError(t, Shutdown())

	buf.Reset()
	require.NoError(t, Init().
		WithVerbosity(2).
		WithColorMode(ColorAlways).
		WithWriter(&buf).
		Done())
	Status("x")
	Debug("y")
	assert.Equal(t, "x\n\x1b[36my\x1b[0m\n", buf.String())
}
