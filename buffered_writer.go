package argparse

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// BufferedWriter implements Writer and captures all output in buffers for testing
type BufferedWriter struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	mu     sync.RWMutex
}

// Verify BufferedWriter implements Writer interface
var _ Writer = (*BufferedWriter)(nil)

func NewBufferedWriter() *BufferedWriter {
	return &BufferedWriter{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
}

// Printf writes formatted output to the stdout buffer
func (w *BufferedWriter) Printf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.stdout, format, args...)
}

// Errorf writes formatted output to the stderr buffer
func (w *BufferedWriter) Errorf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.stderr, format, flattenErrs(args)...)
}

// Writer returns the stdout buffer. Writes through it bypass the mutex.
func (w *BufferedWriter) Writer() io.Writer {
	return w.stdout
}

// ErrWriter returns the stderr buffer. Writes through it bypass the mutex.
func (w *BufferedWriter) ErrWriter() io.Writer {
	return w.stderr
}

// Testing helper methods

func (w *BufferedWriter) GetStdout() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stdout.String()
}

func (w *BufferedWriter) GetStderr() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stderr.String()
}

// ContainsStderr returns true if the stderr buffer contains s
func (w *BufferedWriter) ContainsStderr(s string) bool {
	return strings.Contains(w.GetStderr(), s)
}

// ContainsStdout returns true if the stdout buffer contains s
func (w *BufferedWriter) ContainsStdout(s string) bool {
	return strings.Contains(w.GetStdout(), s)
}

// Reset clears both buffers
func (w *BufferedWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stdout.Reset()
	w.stderr.Reset()
}

// GetStdoutLines returns stdout split into lines, excluding empty ones
func (w *BufferedWriter) GetStdoutLines() []string {
	return nonEmptyLines(w.GetStdout())
}

// GetStderrLines returns stderr split into lines, excluding empty ones
func (w *BufferedWriter) GetStderrLines() []string {
	return nonEmptyLines(w.GetStderr())
}

func nonEmptyLines(content string) (lines []string) {
	lines = []string{}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
