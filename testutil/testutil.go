// Package testutil provides common testing helpers, chiefly capturing
// what a function writes to the process's standard output.
package testutil

import (
	"os"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns
// the captured output. The original stdout is restored afterwards.
// This is useful for testing code paths that bind to os.Stdout itself
// rather than accepting a writer.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered to avoid goroutine leak if reading outlives the test
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	_ = w.Close()
	os.Stdout = origStdout
	captured := <-outCh
	_ = r.Close()

	if fnErr != nil {
		t.Fatalf("Captured function returned error: %v", fnErr)
	}
	return captured
}
