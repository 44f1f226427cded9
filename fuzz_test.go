package argparse_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/mikeschinkel/go-argparse"
)

// FuzzIntValue checks that integer coercion never panics and only accepts
// digit-only values.
func FuzzIntValue(f *testing.F) {
	seeds := []string{"0", "42", "-1", "1.5", "", "12a", "99999999999999999999"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, value string) {
		p, _, _ := newTestParser(t, "-n", value)
		called := false
		err := p.AddArgument("n", "number", argparse.IntValue(func(n int) error {
			called = true
			if strconv.Itoa(n) != strings.TrimLeft(value, "0") && n != 0 {
				t.Errorf("value %q parsed as %d", value, n)
			}
			return nil
		}))
		if err != nil {
			t.Fatal(err)
		}
		err = p.HandleArguments()
		if called == (err != nil) {
			t.Errorf("value %q: called=%v err=%v", value, called, err)
		}
		if strings.ContainsFunc(value, func(r rune) bool { return r < '0' || r > '9' }) && called {
			t.Errorf("value %q accepted with a non-digit", value)
		}
	})
}

// FuzzHandleArguments runs arbitrary token streams against a mixed registry
// to ensure dispatch doesn't panic.
func FuzzHandleArguments(f *testing.F) {
	seeds := []string{
		"-a -f_n 4 -s_n 2 -ex",
		"--help -a",
		"-f_n",
		"-b yes",
		"-r 3.1.4",
		"--name= -n=x",
	}
	for _, seed := range seeds {
		f.Add(seed, false)
		f.Add(seed, true)
	}

	f.Fuzz(func(t *testing.T, line string, joined bool) {
		p := argparse.NewParser(argparse.ParserArgs{
			Args:         append([]string{"prog"}, strings.Fields(line)...),
			Writer:       argparse.NewBufferedWriter(),
			JoinedValues: joined,
		})
		noop := argparse.NoValue(func() error { return nil })
		_ = p.AddArgument("a", "add", noop)
		_ = p.AddArgument("ex", "execute", noop)
		_ = p.AddArgument("f_n", "first_number", argparse.IntValue(func(int) error { return nil }))
		_ = p.AddArgument("r", "ratio", argparse.FloatValue(func(float64) error { return nil }))
		_ = p.AddArgument("b", "bool", argparse.BoolValue(func(bool) error { return nil }))
		_ = p.AddArgument("n", "name", argparse.StringValue(func(string) error { return nil }))

		err := p.HandleArguments()
		code := argparse.ExitCode(err)
		if code != argparse.ExitSuccess && code != argparse.ExitFailure {
			t.Errorf("unexpected exit code %d for %q", code, line)
		}
	})
}
