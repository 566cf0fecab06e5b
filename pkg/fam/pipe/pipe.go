package pipe

import (
	"github.com/ib-77/fam3/pkg/fam"
	"github.com/ib-77/fam3/pkg/fam/res"
)

// Step is a fallible collaborator: it consumes an input and reports its
// outcome through a Result.
type Step[In, Out any] func(In) fam.Result[Out]

// Two composes two steps left-to-right. The returned step runs g only when f
// succeeded; the first failure is the final outcome.
func Two[A, B, C any](f Step[A, B], g Step[B, C]) Step[A, C] {
	return func(a A) fam.Result[C] {
		return res.FlatMap(f(a), g)
	}
}

// Three composes three steps left-to-right.
func Three[A, B, C, D any](f Step[A, B], g Step[B, C], h Step[C, D]) Step[A, D] {
	return Two(Two(f, g), h)
}

// Lift adapts a conventional (Out, error) function into a step.
func Lift[In, Out any](f func(In) (Out, error)) Step[In, Out] {
	return func(in In) fam.Result[Out] {
		return res.Try(res.Succeed(in), f)
	}
}
