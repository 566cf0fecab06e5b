package res

import (
	"errors"

	"github.com/ib-77/fam3/pkg/fam"
)

// Succeed lifts a bare value into a successful Result (monad unit).
func Succeed[T any](v T) fam.Result[T] {
	return fam.Success(v)
}

// Wrap is the unit under its algebraic name; identical to Succeed.
func Wrap[T any](v T) fam.Result[T] {
	return fam.Success(v)
}

// FailWith lifts an error into a failed Result.
func FailWith[T any](err error) fam.Result[T] {
	return fam.Fail[T](err)
}

// Map transforms the success value; on failure the transform is never
// invoked and the error value passes through unchanged.
func Map[In, Out any](input fam.Result[In], transform func(In) Out) fam.Result[Out] {
	if input.IsSuccess() {
		return fam.Success(transform(input.Value()))
	}
	return fam.FailFrom[In, Out](input)
}

// Flatten collapses one level of nesting: Success(inner) becomes inner,
// a failure passes through unchanged.
func Flatten[T any](input fam.Result[fam.Result[T]]) fam.Result[T] {
	if input.IsSuccess() {
		return input.Value()
	}
	return fam.FailFrom[fam.Result[T], T](input)
}

// FlatMap chains a fallible operation onto a previous outcome. The first
// failure short-circuits the chain: the transform is never invoked and the
// original error value becomes the final result.
func FlatMap[In, Out any](input fam.Result[In], transform func(In) fam.Result[Out]) fam.Result[Out] {
	if input.IsSuccess() {
		return transform(input.Value())
	}
	return fam.FailFrom[In, Out](input)
}

// Try runs a conventional (value, error) function against the success value
// and converts a non-nil error into a failure.
func Try[In, Out any](input fam.Result[In], onTryExecute func(In) (Out, error)) fam.Result[Out] {
	if input.IsSuccess() {
		out, err := onTryExecute(input.Value())
		if err != nil {
			return fam.Fail[Out](err)
		}
		return fam.Success(out)
	}
	return fam.FailFrom[In, Out](input)
}

// Validate checks a bare value and produces Success when valid, otherwise a
// failure carrying errMsg.
func Validate[T any](input T, validate func(in T) (valid bool, errMsg string)) fam.Result[T] {
	return AndValidate(Succeed(input), validate)
}

// AndValidate checks the success value of a previous outcome; a failed input
// passes through unchanged.
func AndValidate[T any](input fam.Result[T], validate func(in T) (valid bool, errMsg string)) fam.Result[T] {
	if input.IsSuccess() {
		if valid, errMsg := validate(input.Value()); !valid {
			return fam.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// Tee invokes a side effect with the success value and returns the input
// untouched; nothing runs on the failure path.
func Tee[T any](input fam.Result[T], onSuccess func(v T)) fam.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// Finally collapses the result into a final value via the matching handler.
func Finally[In, Out any](input fam.Result[In], onSuccess func(v In) Out, onFailure func(err error) Out) Out {
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}

// Collect gathers a sequence of results into a result of a sequence. The
// first failure wins and is returned unchanged; when every element succeeds
// the values keep their original order.
func Collect[T any](s fam.Sequence[fam.Result[T]]) fam.Result[fam.Sequence[T]] {
	values := make([]T, 0, s.Len())
	for _, r := range s.All() {
		if r.IsFailure() {
			return fam.FailFrom[T, fam.Sequence[T]](r)
		}
		values = append(values, r.Value())
	}
	return fam.Success(fam.SeqFrom(values))
}
