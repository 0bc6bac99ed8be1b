// Package rop defines the Result[T, E] value shared by every combinator in this
// module and the Errors[E] collection the combinators report failures with.
//
// Highlights:
// - Success/Fail/Of: construct Result[T, E] (Of lifts a Go (T, error) pair)
// - Errors[E]: ordered aggregate of caller errors, usable as an error
// - Same/AsError: total conversions for the common error-type cases
// - GetErrors: flatten errors built with errors.Join
//
// The combinators live in subpackages:
// - collect: drain a sequence of Results into all values or all errors
// - failall: if any Result failed, turn every Result into an error
// - bind: bind several heterogeneous Results and resolve them at once
package rop
