package collect

import (
	"iter"
	"slices"

	"github.com/ib-77/roperrs/pkg/rop"
)

// Partitioned consumes results exactly once, in order. It succeeds with all
// values when no element failed, otherwise it fails with all errors.
// Success values are not retained once a failure has been seen.
func Partitioned[T, E any](results iter.Seq[rop.Result[T, E]]) rop.Result[[]T, []E] {
	oks := make([]T, 0)
	var errs []E

	for r := range results {
		if r.IsFailure() {
			if len(errs) == 0 {
				oks = nil
			}
			errs = append(errs, r.Err())
			continue
		}
		if len(errs) == 0 {
			oks = append(oks, r.Result())
		}
	}

	if len(errs) > 0 {
		return rop.Fail[[]T](errs)
	}
	return rop.Success[[]T, []E](oks)
}

func PartitionedSlice[T, E any](results []rop.Result[T, E]) rop.Result[[]T, []E] {
	return Partitioned(slices.Values(results))
}

// Partitioned2 is Partitioned over value/error pairs; a pair with a nil error
// counts as a success.
func Partitioned2[T any](pairs iter.Seq2[T, error]) rop.Result[[]T, []error] {
	return Partitioned[T, error](func(yield func(rop.Result[T, error]) bool) {
		for v, err := range pairs {
			if !yield(rop.Of(v, err)) {
				return
			}
		}
	})
}

// Errors drains results and returns every error, or nil when all succeeded.
func Errors[T, E any](results iter.Seq[rop.Result[T, E]]) rop.Errors[E] {
	p := Partitioned(results)
	if p.IsSuccess() {
		return nil
	}
	return rop.Errors[E](p.Err())
}
