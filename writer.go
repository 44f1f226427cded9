package argparse

import (
	"io"
	"os"
	"strings"
)

// Writer defines the interface for user-facing output: help and results go
// to Printf, diagnostics to Errorf.
type Writer interface {
	Printf(string, ...any)
	Errorf(string, ...any)
	Writer() io.Writer
	ErrWriter() io.Writer
}

var _ Writer = (*cliWriter)(nil)

// cliWriter writes to stdout/stderr for normal CLI usage
type cliWriter struct {
	writer    io.Writer
	errWriter io.Writer
}

func (w *cliWriter) Writer() io.Writer {
	return w.writer
}

func (w *cliWriter) ErrWriter() io.Writer {
	return w.errWriter
}

type WriterArgs struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewWriter creates a console writer; nil args or nil streams mean
// os.Stdout and os.Stderr.
func NewWriter(args *WriterArgs) Writer {
	if args == nil {
		args = &WriterArgs{}
	}
	return &cliWriter{
		writer:    valueOrDefault[io.Writer](args.Stdout, os.Stdout),
		errWriter: valueOrDefault[io.Writer](args.Stderr, os.Stderr),
	}
}

// Printf writes formatted output to stdout
func (w *cliWriter) Printf(format string, args ...any) {
	Stdiof(w.writer, format, args...)
}

// Errorf writes formatted output to stderr
func (w *cliWriter) Errorf(format string, args ...any) {
	Stdiof(w.errWriter, format, flattenErrs(args)...)
}

// flattenErrs replaces newlines in error arguments with semicolons so a
// joined error stays on one diagnostic line.
func flattenErrs(args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		err, ok := arg.(error)
		if !ok {
			out[i] = arg
			continue
		}
		out[i] = strings.ReplaceAll(err.Error(), "\n", "; ")
	}
	return out
}
