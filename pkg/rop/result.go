package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is either a success carrying a value of type T or a failure carrying
// an error of type E. E is not constrained to error: any caller error type works.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of lifts a Go (value, error) pair into a Result. A nil err is a success.
//
//	n := rop.Of(strconv.Atoi(s))
func Of[T any](r T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Success[T, error](r)
}

// FailFrom carries the failure of one Result over to a Result of another value type.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the value and whether the Result is a success.
func (r Result[T, E]) Get() (T, bool) {
	return r.result, r.isSuccess
}

func (r Result[T, E]) Unpack() (T, E) {
	return r.result, r.err
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result that was never built by a constructor.
func (r Result[T, E]) IsEmpty() bool {
	return r.id == uuid.Nil && !r.isSuccess
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
