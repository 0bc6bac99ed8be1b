// Package failall turns a collection of Result[T, E1] into one outcome: if at
// least one element failed, every element (successes included) is converted
// into an error of type E2; otherwise every element is unwrapped.
//
// - FailAll: lazy form over a re-iterable sequence, returns iter.Seq branches
// - FailAllSlice: materialized form over a slice
// - FailAllOnce: lazy form for single-use iterators (buffers the input first)
// - ErrOr: builds a conversion that maps successes to a placeholder error
//
// The conversion receives the whole Result, so a caller can tell positions that
// succeeded apart from positions that failed.
package failall
