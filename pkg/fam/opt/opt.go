package opt

import (
	"github.com/ib-77/fam3/pkg/fam"
)

// Wrap lifts a bare value into a Present optional (monad unit).
func Wrap[T any](v T) fam.Optional[T] {
	return fam.Present(v)
}

// FromPtr converts a possibly-nil pointer into an Optional, copying the
// pointee when present.
func FromPtr[T any](p *T) fam.Optional[T] {
	if p == nil {
		return fam.Absent[T]()
	}
	return fam.Present(*p)
}

// Map transforms the value when present; on Absent the transform is never
// invoked and Absent is returned.
func Map[In, Out any](o fam.Optional[In], transform func(In) Out) fam.Optional[Out] {
	if v, ok := o.Get(); ok {
		return fam.Present(transform(v))
	}
	return fam.Absent[Out]()
}

// Apply applies an optional transform to an optional value. The outcome is
// Present only when both operands are Present; when exactly one operand is
// absent there is no fallback to the present side.
func Apply[In, Out any](o fam.Optional[In], transform fam.Optional[func(In) Out]) fam.Optional[Out] {
	v, okV := o.Get()
	f, okF := transform.Get()
	if okV && okF {
		return fam.Present(f(v))
	}
	return fam.Absent[Out]()
}

// FlatMap chains a computation that may itself fail to produce a value; on
// Absent the transform is never invoked.
func FlatMap[In, Out any](o fam.Optional[In], transform func(In) fam.Optional[Out]) fam.Optional[Out] {
	if v, ok := o.Get(); ok {
		return transform(v)
	}
	return fam.Absent[Out]()
}

// Finally folds the optional into a concrete value via the matching handler.
func Finally[In, Out any](o fam.Optional[In], onPresent func(In) Out, onAbsent func() Out) Out {
	if v, ok := o.Get(); ok {
		return onPresent(v)
	}
	return onAbsent()
}

// ToResult converts presence to Success and absence to a failure carrying
// onAbsent.
func ToResult[T any](o fam.Optional[T], onAbsent error) fam.Result[T] {
	if v, ok := o.Get(); ok {
		return fam.Success(v)
	}
	return fam.Fail[T](onAbsent)
}

// FromResult converts Success to Present and Failure to Absent, dropping
// the error value.
func FromResult[T any](r fam.Result[T]) fam.Optional[T] {
	if r.IsSuccess() {
		return fam.Present(r.Value())
	}
	return fam.Absent[T]()
}
