package solo

import (
	"context"
	"errors"
	"slices"

	"github.com/ib-77/roperrs/pkg/rop"
	"github.com/ib-77/roperrs/pkg/rop/collect"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Try[Out any](ctx context.Context, onTryExecute func(ctx context.Context) (Out, error)) rop.Result[Out, error] {
	return rop.Of(onTryExecute(ctx))
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T, error] {
	return AndValidate(ctx, Succeed[T, error](input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T, error] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against input, also after one has failed,
// and fails with all of their errors in validator order.
func ValidateAll[T any](ctx context.Context, input T,
	validators ...func(ctx context.Context, in T) rop.Result[T, error]) rop.Result[T, rop.Errors[error]] {

	results := make([]rop.Result[T, error], 0, len(validators))
	for _, validate := range validators {
		results = append(results, validate(ctx, input))
	}

	if errs := collect.Errors(slices.Values(results)); errs != nil {
		return rop.Fail[T](errs)
	}
	return rop.Success[T, rop.Errors[error]](input)
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

// MapErr converts the error of a failed Result, e.g. into an aggregate error type.
func MapErr[T, E1, E2 any](ctx context.Context,
	input rop.Result[T, E1],
	onError func(ctx context.Context, err E1) E2) rop.Result[T, E2] {

	if input.IsSuccess() {
		return rop.Success[T, E2](input.Result())
	}
	return rop.Fail[T](onError(ctx, input.Err()))
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}

	return input
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
