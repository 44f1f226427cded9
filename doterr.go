package argparse

import (
	"errors"
	"fmt"
	"strings"
)

// kvError is an error built from one or more causes plus key/value metadata.
// Metadata is rendered after the causes so log lines stay greppable.
type kvError struct {
	errs []error
	kvs  []any
}

func (e *kvError) Error() string {
	var sb strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	if len(e.kvs) == 0 {
		goto end
	}
	sb.WriteString(" [")
	for i := 0; i+1 < len(e.kvs); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%v=%v", e.kvs[i], e.kvs[i+1]))
	}
	sb.WriteByte(']')
end:
	return sb.String()
}

func (e *kvError) Unwrap() []error {
	return e.errs
}

// Attrs returns the metadata as slog-compatible key/value pairs.
func (e *kvError) Attrs() []any {
	return e.kvs
}

// NewErr builds an error from leading error values followed by key/value
// pairs, e.g. NewErr(ErrFoo, cause, "key", key).
func NewErr(parts ...any) error {
	var e kvError
	var i int

	for i = 0; i < len(parts); i++ {
		err, ok := parts[i].(error)
		if !ok {
			break
		}
		if err != nil {
			e.errs = append(e.errs, err)
		}
	}
	e.kvs = append(e.kvs, parts[i:]...)
	if len(e.kvs)%2 == 1 {
		e.kvs = append(e.kvs, "(MISSING)")
	}
	return &e
}

// WithErr wraps err with additional sentinels and metadata. The wrapped error
// is listed last so the outer sentinel reads first.
func WithErr(err error, parts ...any) error {
	var head []any
	var i int

	for i = 0; i < len(parts); i++ {
		if _, ok := parts[i].(error); !ok {
			break
		}
	}
	head = append(head, parts[:i]...)
	head = append(head, err)
	head = append(head, parts[i:]...)
	return NewErr(head...)
}

func AppendErr(errs []error, err error) []error {
	if err == nil {
		return errs
	}
	return append(errs, err)
}

func CombineErrs(errs []error) (err error) {
	switch len(errs) {
	case 0:
	case 1:
		err = errs[0]
	default:
		err = errors.Join(errs...)
	}
	return err
}

// errAttrs returns the metadata attached anywhere in err's chain.
func errAttrs(err error) (attrs []any) {
	var kv *kvError
	if errors.As(err, &kv) {
		attrs = kv.Attrs()
	}
	return attrs
}
