package argparse

import (
	"errors"
	"strings"
)

// match is the per-token result of matching against the registry.
type match struct {
	spec   *argSpec
	alias  string // the short or long key that matched, without prefix
	value  string
	joined bool // value came from a -k=value token
}

// HandleArguments scans the tokens once for help and once for dispatch,
// calling the handler of every matching argument in token order.
//
// Help short-circuits all other processing and returns an error for which
// ExitCode reports 0. Tokens that match no argument are ignored. The first
// coercion failure or handler error stops the scan and is returned.
func (p *Parser) HandleArguments() (err error) {
	var m match
	var ok bool

	if p.dispatching {
		err = ErrReentrantDispatch
		goto end
	}
	if len(p.args) == 0 {
		goto end
	}
	p.dispatching = true
	defer func() { p.dispatching = false }()

	if p.helpRequested() {
		p.logger.Debug("Help requested")
		err = p.Help()
		goto end
	}

	for i := 0; i < len(p.args); i++ {
		m, ok, err = p.matchToken(p.args[i])
		if err != nil {
			goto end
		}
		if !ok {
			continue
		}
		if m.spec.takesValue() && !m.joined {
			if i+1 >= len(p.args) {
				err = p.missingValue(m.alias)
				goto end
			}
			i++
			m.value = p.args[i]
		}
		p.logger.Debug("Invoking argument handler",
			"alias", m.alias,
			"value_type", m.spec.handler.ValueType().String(),
		)
		err = invoke(m.spec.handler, m.alias, m.value)
		if err != nil {
			goto end
		}
	}

end:
	if err != nil && !errors.Is(err, ErrHelpShown) {
		p.logger.Debug("Argument handling failed", "error", err)
	}
	return err
}

// Run handles the arguments and applies the default exit policy: on error the
// message goes to standard error (help excepted) and the process exits with
// ExitCode(err). Run returns normally when every handler succeeded.
func (p *Parser) Run() {
	err := p.HandleArguments()
	if err == nil {
		return
	}
	if !errors.Is(err, ErrHelpShown) {
		p.logger.Error("Argument handling failed", append([]any{"error", err}, errAttrs(err)...)...)
		p.writer.Errorf("%s\n", err)
	}
	p.exit(ExitCode(err))
}

func (p *Parser) helpRequested() bool {
	for _, token := range p.args {
		if token == p.prefix+helpShort || token == p.prefix+p.prefix+helpLong {
			return true
		}
	}
	return false
}

// matchToken finds the first registered spec that token activates.
func (p *Parser) matchToken(token string) (m match, ok bool, err error) {
	var key, value string

	for _, spec := range p.specs {
		m.alias, ok = spec.match(token, p.prefix)
		if ok {
			m.spec = spec
			goto end
		}
	}
	if !p.joinedValues || !strings.Contains(token, "=") {
		goto end
	}
	key, value, err = p.splitKeyValue(token)
	if err != nil {
		goto end
	}
	for _, spec := range p.specs {
		if !spec.takesValue() {
			continue
		}
		m.alias, ok = spec.match(key, p.prefix)
		if ok {
			m.spec = spec
			m.value = value
			m.joined = true
			if value == "" {
				err = p.missingValue(m.alias)
			}
			goto end
		}
	}
end:
	return m, ok, err
}

// splitKeyValue splits token at its first '='.
func (p *Parser) splitKeyValue(token string) (key, value string, err error) {
	var found bool
	key, value, found = strings.Cut(token, "=")
	if !found {
		err = p.missingValue(token)
	}
	return key, value, err
}

func (p *Parser) missingValue(alias string) error {
	return &ExitError{
		Code:    ExitFailure,
		Message: p.texts.missingValue,
		Err:     NewErr(ErrMissingValue, "alias", alias),
	}
}
