package rop

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an error built with errors.Join (or any error with
// Unwrap() []error) into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Same is the identity conversion, for bindings whose error type already is
// the aggregated one.
func Same[E any](e E) E {
	return e
}

// AsError converts a concrete error type to the error interface.
func AsError[S error](s S) error {
	return s
}
