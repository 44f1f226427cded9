package argparse

import (
	"bytes"
	"strings"
)

const valuePlaceholder = "<value>"

// helpModel accumulates the usage line and help body in registration order.
type helpModel struct {
	usage        []string // one bracketed alternative per argument
	lines        []string // one line per argument, or the literal body
	defaultLines bool     // false once SetHelp has been called
}

// HelpData is passed to the help template.
type HelpData struct {
	ProgramName string
	Usage       string
	Lines       []string
}

func (hm *helpModel) addUsage(prefix string, spec *argSpec) {
	short, long := flagForms(prefix, spec)
	hm.usage = append(hm.usage, "["+short+" | "+long+"]")
}

func (hm *helpModel) addLine(prefix string, spec *argSpec, help string) {
	if !hm.defaultLines {
		return
	}
	if help == "" {
		help = helpFromLongKey(spec.long)
	}
	short, long := flagForms(prefix, spec)
	hm.lines = append(hm.lines, short+", "+long+" : "+help)
}

func (hm *helpModel) setLiteral(text string) {
	hm.defaultLines = false
	hm.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	if text == "" {
		hm.lines = nil
	}
}

// flagForms returns how the short and long form of spec appear in help, with a
// value placeholder for arguments that take one.
func flagForms(prefix string, spec *argSpec) (short, long string) {
	short = prefix + spec.short
	long = prefix + prefix + spec.long
	if spec.takesValue() {
		short += " " + valuePlaceholder
		long += " " + valuePlaceholder
	}
	return short, long
}

// helpFromLongKey upper-cases key and renders '-' and '_' as spaces.
func helpFromLongKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '-', '_':
			sb.WriteByte(' ')
		default:
			sb.WriteString(strings.ToUpper(string(r)))
		}
	}
	return sb.String()
}

// HelpText renders the usage line and help body.
func (p *Parser) HelpText() string {
	var buf bytes.Buffer
	err := HelpTemplate.Execute(&buf, HelpData{
		ProgramName: string(p.programName),
		Usage:       strings.Join(p.help.usage, " "),
		Lines:       p.help.lines,
	})
	must(p.logger, err)
	return buf.String()
}

// Help writes the help text to standard output and returns an error carrying
// exit code 0, so that dispatch stops and Run terminates successfully.
func (p *Parser) Help() error {
	p.writer.Printf("%s", p.HelpText())
	return newExitError(ExitSuccess, ErrHelpShown, ErrHelpShown.Error())
}
