package argparse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mikeschinkel/go-argparse"
)

func TestHelpText_Synthesized(t *testing.T) {
	p, _, _ := newTestParser(t)
	h, _ := counter()
	require.NoError(t, p.AddArgument("a", "add", h))
	require.NoError(t, p.AddArgument("f_n", "first_number", argparse.IntValue(func(int) error { return nil })))
	require.NoError(t, p.AddArgument("dr", "dry-run", h))
	require.NoError(t, p.AddArgumentWithHelp("e", "echo", "echoes the value back",
		argparse.StringValue(func(string) error { return nil })))

	want := "Usage: prog [-h | --help] [-a | --add] [-f_n <value> | --first_number <value>] [-dr | --dry-run] [-e <value> | --echo <value>]\n" +
		"Options:\n" +
		"  -h, --help : Prints the help text.\n" +
		"  -a, --add : ADD\n" +
		"  -f_n <value>, --first_number <value> : FIRST NUMBER\n" +
		"  -dr, --dry-run : DRY RUN\n" +
		"  -e <value>, --echo <value> : echoes the value back\n"
	if diff := cmp.Diff(want, p.HelpText()); diff != "" {
		t.Errorf("HelpText() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpText_SetHelpReplacesBody(t *testing.T) {
	p, _, _ := newTestParser(t)
	h, _ := counter()
	require.NoError(t, p.AddArgument("a", "add", h))
	p.SetHelp("Adds things.\nSee the manual.\n")
	require.NoError(t, p.AddArgument("s", "sub", h))

	want := "Usage: prog [-h | --help] [-a | --add] [-s | --sub]\n" +
		"Options:\n" +
		"  Adds things.\n" +
		"  See the manual.\n"
	if diff := cmp.Diff(want, p.HelpText()); diff != "" {
		t.Errorf("HelpText() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpText_EmptySetHelp(t *testing.T) {
	p, _, _ := newTestParser(t)
	p.SetHelp("")
	require.Equal(t, "Usage: prog [-h | --help]\nOptions:\n", p.HelpText())
}

func TestHelpText_CustomPrefix(t *testing.T) {
	p := argparse.NewParser(argparse.ParserArgs{
		Args:   []string{"tool"},
		Prefix: "+",
		Writer: argparse.NewBufferedWriter(),
	})
	require.NoError(t, p.AddArgument("n", "name", argparse.StringValue(func(string) error { return nil })))

	want := "Usage: tool [+h | ++help] [+n <value> | ++name <value>]\n" +
		"Options:\n" +
		"  +h, ++help : Prints the help text.\n" +
		"  +n <value>, ++name <value> : NAME\n"
	if diff := cmp.Diff(want, p.HelpText()); diff != "" {
		t.Errorf("HelpText() mismatch (-want +got):\n%s", diff)
	}
}

func TestHelp_WritesStdout(t *testing.T) {
	p, w, rec := newTestParser(t)

	err := p.Help()
	require.ErrorIs(t, err, argparse.ErrHelpShown)
	require.Equal(t, argparse.ExitSuccess, argparse.ExitCode(err))
	require.Equal(t, p.HelpText(), w.GetStdout())
	require.Empty(t, w.GetStderr())
	require.False(t, rec.called, "Help leaves termination to the caller")
}

func TestHelp_PrefixedHelpTokenOnly(t *testing.T) {
	// "help" and "-help" are not help requests.
	p, w, _ := newTestParser(t, "help", "-help", "---help")
	require.NoError(t, p.HandleArguments())
	require.Empty(t, w.GetStdout())
}
