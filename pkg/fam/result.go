package fam

import (
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of a fallible computation: either a success value
// or a failure error, never both. Each instance carries a uuid identity and a
// UTC creation timestamp for pipeline traceability.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// Success constructs a successful Result carrying v.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail constructs a failed Result carrying err. The error value is stored
// as-is and forwarded unchanged by every operation on the failure path.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom rebuilds a failure of a different value type from an existing
// failed Result, preserving its error, identity and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value (zero value on the failure path).
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error if the computation failed.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess reports whether the Result holds a success value.
func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports whether the Result holds an error.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt returns the creation time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id returns the uuid assigned at construction.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Map applies a same-type transform to the success value. Implements Functor.
func (r Result[T]) Map(transform func(T) T) Functor[T] {
	if r.isSuccess {
		return Success(transform(r.value))
	}
	return r
}

// Wrap lifts v into a successful Result. Implements Monad.
func (Result[T]) Wrap(v T) Monad[T] {
	return Success(v)
}

// FlatMap applies a Result-producing same-type transform to the success
// value. The transform must return a Result[T]. Implements Monad.
func (r Result[T]) FlatMap(transform func(T) Monad[T]) Monad[T] {
	if r.IsFailure() {
		return r
	}
	out, ok := transform(r.value).(Result[T])
	if !ok {
		panic("fam: FlatMap transform on Result must return Result of the same type")
	}
	return out
}
