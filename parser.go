// Package argparse declares command-line flags with typed handlers, dispatches
// an argument vector against them, and synthesizes usage/help text.
//
// A program builds one Parser, registers its arguments and calls Run:
//
//	p := argparse.NewParser(argparse.ParserArgs{Args: os.Args})
//	err := p.AddArgument("n", "name", argparse.StringValue(func(s string) error {
//		name = s
//		return nil
//	}))
//	...
//	p.Run()
package argparse

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mikeschinkel/go-dt"
	"github.com/mikeschinkel/go-dt/appinfo"
)

const (
	DefaultPrefix = "-"

	helpShort = "h"
	helpLong  = "help"
	helpDescr = "Prints the help text."
)

// Parser is the argument registry and dispatcher. It is not safe for
// concurrent use.
type Parser struct {
	prefix       string
	programName  dt.Filename
	args         []string
	specs        []*argSpec
	help         helpModel
	texts        errorTexts
	joinedValues bool
	dispatching  bool
	writer       Writer
	logger       *slog.Logger
	exit         func(int)
}

type ParserArgs struct {
	// Args is the full argument vector; Args[0] is the program path.
	Args []string

	// Prefix is the precedence string; defaults to "-".
	Prefix string

	// AppInfo, when set, names the program in the usage line.
	AppInfo appinfo.AppInfo

	Writer Writer
	Logger *slog.Logger

	// Exit terminates the process from Run; defaults to os.Exit.
	Exit func(int)

	// JoinedValues enables -k=value and --key=value for value arguments.
	JoinedValues bool
}

// NewParser creates a parser and registers the built-in -h/--help argument.
func NewParser(args ParserArgs) *Parser {
	var err error

	p := &Parser{
		prefix:       valueOrDefault(args.Prefix, DefaultPrefix),
		programName:  programName(args),
		texts:        defaultErrorTexts(),
		joinedValues: args.JoinedValues,
		writer:       args.Writer,
		logger:       args.Logger,
		exit:         args.Exit,
	}
	if len(args.Args) > 1 {
		p.args = append([]string(nil), args.Args[1:]...)
	}
	if p.writer == nil {
		p.writer = NewWriter(nil)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if p.exit == nil {
		p.exit = os.Exit
	}
	p.help.defaultLines = true

	err = p.AddArgumentWithHelp(helpShort, helpLong, helpDescr, NoValue(p.Help))
	must(p.logger, err)

	return p
}

func programName(args ParserArgs) (name dt.Filename) {
	switch {
	case args.AppInfo != nil:
		name = args.AppInfo.ExeName()
	case len(args.Args) > 0:
		name = dt.Filename(filepath.Base(args.Args[0]))
	}
	return name
}

// Prefix returns the precedence string flags are activated with.
func (p *Parser) Prefix() string {
	return p.prefix
}

// ProgramName returns the name shown in the usage line.
func (p *Parser) ProgramName() dt.Filename {
	return p.programName
}

// Tokens returns the arguments that HandleArguments scans.
func (p *Parser) Tokens() []string {
	return append([]string(nil), p.args...)
}

// SetHelp replaces the help body with text. Arguments registered afterwards
// no longer add help lines; usage fragments are unaffected.
func (p *Parser) SetHelp(text string) {
	p.help.setLiteral(text)
}

// SetErrorText overrides the message used for the given kind of error.
func (p *Parser) SetErrorText(kind ErrorKind, msg string) (err error) {
	switch kind {
	case MissingValue:
		p.texts.missingValue = msg
	case KeyExists:
		p.texts.keyExists = msg
	default:
		err = NewErr(ErrUnknownErrorKind, "error_kind", int(kind))
	}
	return err
}

// AddArgument registers an argument whose help line is synthesized from the
// long key, e.g. "first_number" becomes "FIRST NUMBER".
func (p *Parser) AddArgument(short, long string, h Handler) error {
	return p.AddArgDef(ArgDef{
		Short:   short,
		Long:    long,
		Handler: h,
	})
}

// AddArgumentWithHelp registers an argument with a verbatim help line.
func (p *Parser) AddArgumentWithHelp(short, long, help string, h Handler) error {
	return p.AddArgDef(ArgDef{
		Short:   short,
		Long:    long,
		Help:    help,
		Handler: h,
	})
}

// AddArgDef validates def and appends it to the registry, the usage line and
// the help body.
func (p *Parser) AddArgDef(def ArgDef) (err error) {
	var errs []error
	var spec *argSpec

	if def.Short == "" {
		errs = append(errs, NewErr(dt.ErrEmpty, "empty_property", "Short"))
	}
	if def.Long == "" {
		errs = append(errs, NewErr(dt.ErrEmpty, "empty_property", "Long"))
	}
	if isNilHandler(def.Handler) {
		errs = append(errs, NewErr(ErrNilHandler))
	}
	err = CombineErrs(errs)
	if err != nil {
		err = WithErr(err, dt.ErrFlagValidationFailed, "short", def.Short, "long", def.Long)
		goto end
	}

	err = p.failIfExists(def.Short, def.Long)
	if err != nil {
		goto end
	}

	spec = &argSpec{
		short:   def.Short,
		long:    def.Long,
		handler: def.Handler,
	}
	p.specs = append(p.specs, spec)
	p.help.addUsage(p.prefix, spec)
	p.help.addLine(p.prefix, spec, def.Help)

	p.logger.Debug("Argument registered",
		"short", def.Short,
		"long", def.Long,
		"value_type", def.Handler.ValueType().String(),
	)

end:
	if err != nil {
		p.logger.Debug("Argument registration failed", "error", err)
	}
	return err
}

// failIfExists reports the first registered spec sharing either key. A short
// key collision is reported before a long key collision.
func (p *Parser) failIfExists(short, long string) (err error) {
	var key string

	for _, spec := range p.specs {
		switch {
		case spec.short == short:
			key = short
		case spec.long == long:
			key = long
		default:
			continue
		}
		err = &messageError{
			msg: key + p.texts.keyExists,
			err: NewErr(ErrKeyExists, dt.ErrInvalidDuplicateFlag, "key", key),
		}
		break
	}
	return err
}
