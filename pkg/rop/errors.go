package rop

import (
	"fmt"
	"strings"
)

// Errors is an ordered collection of errors of one aggregate type.
// The combinators never hand out an empty Errors on a failure path.
type Errors[E any] []E

func (e Errors[E]) Error() string {
	if len(e) == 1 {
		return message(e[0])
	}

	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(message(err))
	}
	return b.String()
}

// Unwrap exposes the elements that are errors to errors.Is and errors.As.
func (e Errors[E]) Unwrap() []error {
	out := make([]error, 0, len(e))
	for _, err := range e {
		if asErr, ok := any(err).(error); ok && !IsNil(asErr) {
			out = append(out, asErr)
		}
	}
	return out
}

func (e Errors[E]) Len() int {
	return len(e)
}

func (e *Errors[E]) Add(err E) {
	*e = append(*e, err)
}

// Err returns e as an error, or a nil interface when e is empty.
func (e Errors[E]) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func message(v any) string {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err.Error()
	}
	return fmt.Sprint(v)
}
