package argparse

import (
	"fmt"
	"strconv"
)

var (
	boolTrue  = []string{"true", "on", "1"}
	boolFalse = []string{"false", "off", "0"}
)

// invalidValue builds the diagnostic for a value that failed coercion for
// the argument activated as alias.
func invalidValue(alias, expected string) error {
	msg := fmt.Sprintf("For given argument \"%s\" expected value type was %s", alias, expected)
	return newExitError(ExitFailure, ErrInvalidValue, msg)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// parseInt accepts only ASCII digits, so signs are rejected.
func parseInt(alias, value string) (n int, err error) {
	if value == "" {
		goto fail
	}
	for i := 0; i < len(value); i++ {
		if !isDigit(value[i]) {
			goto fail
		}
	}
	n, err = strconv.Atoi(value)
	if err != nil {
		goto fail
	}
	goto end
fail:
	err = invalidValue(alias, "integer.")
end:
	return n, err
}

// parseFloat accepts ASCII digits with at most one decimal point.
func parseFloat(alias, value string) (f float64, err error) {
	var dotFound bool
	var digits int

	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case isDigit(ch):
			digits++
		case ch == '.' && dotFound:
			err = invalidValue(alias, "float. But found multiple points.")
			goto end
		case ch == '.':
			dotFound = true
		default:
			err = invalidValue(alias, "float.")
			goto end
		}
	}
	if digits == 0 {
		err = invalidValue(alias, "float.")
		goto end
	}
	f, err = strconv.ParseFloat(value, 64)
	if err != nil {
		err = invalidValue(alias, "float.")
	}
end:
	return f, err
}

// parseBool matches value case-sensitively against true/on/1 and false/off/0.
func parseBool(alias, value string) (b bool, err error) {
	for _, s := range boolTrue {
		if value == s {
			b = true
			goto end
		}
	}
	for _, s := range boolFalse {
		if value == s {
			goto end
		}
	}
	err = invalidValue(alias, "boolean (accepted: true/false, on/off, 1/0)")
end:
	return b, err
}

// invoke coerces value for h's declared type and calls it. Coercion failures
// are returned without calling h.
func invoke(h Handler, alias, value string) (err error) {
	var n int
	var f float64
	var b bool

	switch fn := h.(type) {
	case NoValue:
		err = fn()
	case StringValue:
		err = fn(value)
	case IntValue:
		n, err = parseInt(alias, value)
		if err != nil {
			goto end
		}
		err = fn(n)
	case FloatValue:
		f, err = parseFloat(alias, value)
		if err != nil {
			goto end
		}
		err = fn(f)
	case BoolValue:
		b, err = parseBool(alias, value)
		if err != nil {
			goto end
		}
		err = fn(b)
	}
end:
	return err
}
