package argparse

import (
	"errors"
)

var (
	ErrKeyExists         = errors.New("argument key already exists")
	ErrMissingValue      = errors.New("argument value is missing")
	ErrInvalidValue      = errors.New("argument value has the wrong type")
	ErrHelpShown         = errors.New("help text was shown")
	ErrNilHandler        = errors.New("argument handler is nil")
	ErrReentrantDispatch = errors.New("arguments are already being handled")
	ErrUnknownErrorKind  = errors.New("unknown error kind")
)

// ErrorKind selects a message in the parser's error text catalogue.
type ErrorKind int

const (
	MissingValue ErrorKind = iota
	KeyExists
)

func (k ErrorKind) String() (s string) {
	switch k {
	case MissingValue:
		s = "MissingValue"
	case KeyExists:
		s = "KeyExists"
	default:
		s = "Unknown"
	}
	return s
}

const (
	DefaultMissingValueText = "A value must be supplied."
	DefaultKeyExistsText    = " already exists."
)

// errorTexts holds the user-facing text for each ErrorKind. The KeyExists
// text is appended to the colliding key.
type errorTexts struct {
	missingValue string
	keyExists    string
}

func defaultErrorTexts() errorTexts {
	return errorTexts{
		missingValue: DefaultMissingValueText,
		keyExists:    DefaultKeyExistsText,
	}
}

// ExitError is returned by dispatch when the process should stop. Message is
// what a user sees; Err carries the sentinel for errors.Is.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newExitError(code int, err error, msg string) *ExitError {
	return &ExitError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// messageError keeps a configurable user-facing message while still matching
// its sentinels with errors.Is.
type messageError struct {
	msg string
	err error
}

func (e *messageError) Error() string {
	return e.msg
}

func (e *messageError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by HandleArguments to a process exit code.
func ExitCode(err error) (code int) {
	var ee *ExitError

	switch {
	case err == nil:
		code = ExitSuccess
	case errors.As(err, &ee):
		code = ee.Code
	case errors.Is(err, ErrHelpShown):
		code = ExitSuccess
	default:
		code = ExitFailure
	}
	return code
}
