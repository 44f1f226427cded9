package argparse

import (
	"fmt"
	"io"
	"os"

	"github.com/mikeschinkel/go-dt"
)

// Stdoutf and Stderrf are for output that happens before a Parser exists,
// e.g. reporting a registration error from main.
func Stdoutf(format string, args ...any) {
	Stdiof(os.Stdout, format, args...)
}

func Stderrf(format string, args ...any) {
	Stdiof(os.Stderr, format, args...)
}

// Stdiof writes to w; a failed write is logged rather than returned.
func Stdiof(w io.Writer, format string, args ...any) {
	_, err := fmt.Fprintf(w, format, args...)
	dt.LogOnError(err)
}
