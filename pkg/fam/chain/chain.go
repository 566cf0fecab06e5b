package chain

import (
	"github.com/ib-77/fam3/pkg/fam"
	"github.com/ib-77/fam3/pkg/fam/res"
)

// Chain wraps a fam.Result to enable fluent left-to-right chaining.
type Chain[T any] struct {
	result fam.Result[T]
}

// Start creates a new chain from a fam.Result.
func Start[T any](result fam.Result[T]) Chain[T] {
	return Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{result: fam.Success(value)}
}

// Result returns the underlying fam.Result.
func (c Chain[T]) Result() fam.Result[T] {
	return c.result
}

// Then chains a fallible step that returns fam.Result[U]. Semantically
// identical to res.FlatMap: a failed chain skips the step and carries the
// original error forward.
func Then[T, U any](c Chain[T], onSuccess func(T) fam.Result[U]) Chain[U] {
	return Chain[U]{result: res.FlatMap(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error), converting a non-nil
// error into a failure.
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{result: res.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation of the successful value.
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{result: res.Map(c.result, onSuccess)}
}

// Ensure performs a side effect on success without changing the result.
func (c Chain[T]) Ensure(onSuccess func(T)) Chain[T] {
	return Chain[T]{result: res.Tee(c.result, onSuccess)}
}

// Or returns the receiver when it succeeded, otherwise the alternative.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	return alternative
}

// And returns the receiver when it failed, otherwise the required chain, so
// the first failure wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain into a final value using res.Finally.
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return res.Finally(c.result, onSuccess, onFailure)
}
