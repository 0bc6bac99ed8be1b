// Package collect drains a sequence of Result[T, E] values into a single
// Result holding either every success value or every error.
//
// Unlike stopping at the first failure, the sequence is always consumed to the
// end, so every error is reported and side effects of producing later
// elements still happen.
//
// - Partitioned/PartitionedSlice: Result[T, E] sequence -> Result[[]T, []E]
// - Partitioned2: Go (T, error) pairs -> Result[[]T, []error]
// - Errors: only the error branch, as rop.Errors[E]
package collect
