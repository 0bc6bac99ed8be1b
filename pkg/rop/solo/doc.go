// Package solo contains single-value, synchronous helpers that build and
// transform Result[T, E] values, typically to feed the collect, failall and
// bind combinators.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Try: call a function (Out, error) and convert its error to a failure
// - Validate/AndValidate: apply validation producing failure on invalid input
// - ValidateAll: run every validator and report all of their errors
// - Switch/Map/MapErr: move or transform the success or the error side
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/error handlers
package solo
