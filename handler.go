package argparse

// ValueType is the declared type of the value an argument takes.
type ValueType int

const (
	NoValueType ValueType = iota
	StringType
	IntType
	FloatType
	BoolType
)

func (vt ValueType) String() (s string) {
	switch vt {
	case NoValueType:
		s = "none"
	case StringType:
		s = "string"
	case IntType:
		s = "int"
	case FloatType:
		s = "float"
	case BoolType:
		s = "bool"
	default:
		s = "unknown"
	}
	return s
}

// Handler is the callback bound to an argument. The set of implementations is
// closed; the concrete type selects how the argument's value is coerced.
//
//	p.AddArgument("v", "version", argparse.NoValue(func() error { ... }))
//	p.AddArgument("n", "count", argparse.IntValue(func(n int) error { ... }))
type Handler interface {
	ValueType() ValueType
	isHandler()
}

var (
	_ Handler = NoValue(nil)
	_ Handler = StringValue(nil)
	_ Handler = IntValue(nil)
	_ Handler = FloatValue(nil)
	_ Handler = BoolValue(nil)
)

// NoValue handles a flag that takes no value.
type NoValue func() error

// StringValue receives the raw token following the flag.
type StringValue func(string) error

// IntValue receives a base-10 integer made of digits only.
type IntValue func(int) error

// FloatValue receives a decimal number with at most one point.
type FloatValue func(float64) error

// BoolValue receives true for true/on/1 and false for false/off/0.
type BoolValue func(bool) error

func (NoValue) ValueType() ValueType     { return NoValueType }
func (StringValue) ValueType() ValueType { return StringType }
func (IntValue) ValueType() ValueType    { return IntType }
func (FloatValue) ValueType() ValueType  { return FloatType }
func (BoolValue) ValueType() ValueType   { return BoolType }

func (NoValue) isHandler()     {}
func (StringValue) isHandler() {}
func (IntValue) isHandler()    {}
func (FloatValue) isHandler()  {}
func (BoolValue) isHandler()   {}

// isNilHandler reports whether h or the func it wraps is nil.
func isNilHandler(h Handler) (isNil bool) {
	switch fn := h.(type) {
	case nil:
		isNil = true
	case NoValue:
		isNil = fn == nil
	case StringValue:
		isNil = fn == nil
	case IntValue:
		isNil = fn == nil
	case FloatValue:
		isNil = fn == nil
	case BoolValue:
		isNil = fn == nil
	}
	return isNil
}
