package argparse_test

import (
	"testing"

	"github.com/mikeschinkel/go-argparse"
)

// exitRecorder stands in for os.Exit.
type exitRecorder struct {
	called bool
	code   int
}

func (r *exitRecorder) exit(code int) {
	r.called = true
	r.code = code
}

func newTestParser(t *testing.T, tokens ...string) (*argparse.Parser, *argparse.BufferedWriter, *exitRecorder) {
	t.Helper()
	w := argparse.NewBufferedWriter()
	rec := &exitRecorder{}
	p := argparse.NewParser(argparse.ParserArgs{
		Args:   append([]string{"/usr/local/bin/prog"}, tokens...),
		Writer: w,
		Exit:   rec.exit,
	})
	return p, w, rec
}

// counter returns a NoValue handler and a pointer to its call count.
func counter() (argparse.NoValue, *int) {
	n := new(int)
	return func() error {
		*n++
		return nil
	}, n
}
