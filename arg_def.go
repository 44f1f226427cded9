package argparse

// ArgDef defines an argument declaratively
type ArgDef struct {
	Short   string  // Activated as <prefix><Short>, e.g. -v
	Long    string  // Activated as <prefix><prefix><Long>, e.g. --version
	Help    string  // OPTIONAL: help line text; synthesized from Long when empty
	Handler Handler // Called once per matching token
}

// TakesValue reports whether the token after the flag is consumed as its value.
func (ad ArgDef) TakesValue() bool {
	return ad.Handler != nil && ad.Handler.ValueType() != NoValueType
}

// argSpec is a registered ArgDef. It is never mutated after registration.
type argSpec struct {
	short   string
	long    string
	handler Handler
}

func (s *argSpec) takesValue() bool {
	return s.handler.ValueType() != NoValueType
}

// match returns the alias that token activates, without its prefix.
func (s *argSpec) match(token, prefix string) (alias string, ok bool) {
	switch token {
	case prefix + s.short:
		alias, ok = s.short, true
	case prefix + prefix + s.long:
		alias, ok = s.long, true
	}
	return alias, ok
}
