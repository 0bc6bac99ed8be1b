package failall

import (
	"iter"
	"slices"

	"github.com/ib-77/roperrs/pkg/rop"
)

// FailAll scans results for a failure and returns a lazy sequence for the
// matching branch. results is traversed again when the returned sequence is
// consumed, so it must be re-iterable and must not change in between.
// Neither convert nor unwrapping runs before the caller ranges over the output.
//
// The success branch panics if it meets a failure, which only happens when
// results yielded something different on its second traversal.
func FailAll[T, E1, E2 any](results iter.Seq[rop.Result[T, E1]],
	convert func(rop.Result[T, E1]) E2) rop.Result[iter.Seq[T], iter.Seq[E2]] {

	if anyFailed(results) {
		return rop.Fail[iter.Seq[T]](iter.Seq[E2](func(yield func(E2) bool) {
			for r := range results {
				if !yield(convert(r)) {
					return
				}
			}
		}))
	}

	return rop.Success[iter.Seq[T], iter.Seq[E2]](func(yield func(T) bool) {
		for r := range results {
			if r.IsFailure() {
				panic("failall: errors should be handled in the failure branch; input changed between traversals")
			}
			if !yield(r.Result()) {
				return
			}
		}
	})
}

// FailAllSlice is FailAll over a slice with both branches collected eagerly.
// convert is never called when every element succeeded.
func FailAllSlice[T, E1, E2 any](results []rop.Result[T, E1],
	convert func(rop.Result[T, E1]) E2) rop.Result[[]T, []E2] {

	res := FailAll(slices.Values(results), convert)
	if res.IsFailure() {
		return rop.Fail[[]T](collect(res.Err(), len(results)))
	}
	return rop.Success[[]T, []E2](collect(res.Result(), len(results)))
}

// FailAllOnce buffers a single-use sequence before handing it to FailAll.
func FailAllOnce[T, E1, E2 any](results iter.Seq[rop.Result[T, E1]],
	convert func(rop.Result[T, E1]) E2) rop.Result[iter.Seq[T], iter.Seq[E2]] {

	return FailAll(slices.Values(slices.Collect(results)), convert)
}

// ErrOr returns a conversion for FailAll that converts failures with convert
// and maps every success to placeholder.
func ErrOr[T, E1, E2 any](convert func(E1) E2, placeholder E2) func(rop.Result[T, E1]) E2 {
	return func(r rop.Result[T, E1]) E2 {
		if r.IsFailure() {
			return convert(r.Err())
		}
		return placeholder
	}
}

func anyFailed[T, E any](results iter.Seq[rop.Result[T, E]]) bool {
	for r := range results {
		if r.IsFailure() {
			return true
		}
	}
	return false
}

func collect[V any](seq iter.Seq[V], size int) []V {
	out := make([]V, 0, size)
	for v := range seq {
		out = append(out, v)
	}
	return out
}
