package seq

import (
	"github.com/ib-77/fam3/pkg/fam"
)

// Wrap lifts a bare value into a one-element sequence (monad unit).
func Wrap[T any](v T) fam.Sequence[T] {
	return fam.Seq(v)
}

// Map returns a new sequence of the same length where element i is
// transform(input element i). The transform is invoked exactly once per
// element, in order; an empty input yields an empty output.
func Map[In, Out any](s fam.Sequence[In], transform func(In) Out) fam.Sequence[Out] {
	items := make([]Out, s.Len())
	for i, v := range s.All() {
		items[i] = transform(v)
	}
	return fam.SeqFrom(items)
}

// Flatten concatenates the inner sequences in order, preserving both
// intra-group and inter-group ordering.
func Flatten[T any](s fam.Sequence[fam.Sequence[T]]) fam.Sequence[T] {
	items := make([]T, 0, s.Len())
	s.Each(func(inner fam.Sequence[T]) {
		items = append(items, inner.All()...)
	})
	return fam.SeqFrom(items)
}

// FlatMap maps every element to a sequence and flattens the outcome one
// level. Equivalent to Flatten(Map(s, transform)).
func FlatMap[In, Out any](s fam.Sequence[In], transform func(In) fam.Sequence[Out]) fam.Sequence[Out] {
	return Flatten(Map(s, transform))
}

// Filter returns the elements for which keep reports true, in order.
func Filter[T any](s fam.Sequence[T], keep func(T) bool) fam.Sequence[T] {
	items := make([]T, 0, s.Len())
	s.Each(func(v T) {
		if keep(v) {
			items = append(items, v)
		}
	})
	return fam.SeqFrom(items)
}

// Reduce folds the sequence left-to-right into a single value, starting
// from seed.
func Reduce[In, Out any](s fam.Sequence[In], seed Out, fold func(Out, In) Out) Out {
	acc := seed
	s.Each(func(v In) {
		acc = fold(acc, v)
	})
	return acc
}
