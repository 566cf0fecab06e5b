package fam

// Sequence is an ordered collection of zero or more values. The backing slice
// is never shared with callers: constructors copy in, All copies out, and
// every operation builds a fresh Sequence, so relative element order is
// preserved and no instance is ever mutated.
type Sequence[T any] struct {
	items []T
}

// Seq constructs a Sequence from the given values.
func Seq[T any](values ...T) Sequence[T] {
	return SeqFrom(values)
}

// SeqFrom constructs a Sequence by copying the given slice.
func SeqFrom[T any](values []T) Sequence[T] {
	items := make([]T, len(values))
	copy(items, values)
	return Sequence[T]{items: items}
}

// All returns a copy of the elements as a plain slice.
func (s Sequence[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of elements.
func (s Sequence[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s Sequence[T]) At(i int) T {
	return s.items[i]
}

// IsEmpty reports whether the sequence contains no elements.
func (s Sequence[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Each calls fn for every element in order.
func (s Sequence[T]) Each(fn func(T)) {
	for _, v := range s.items {
		fn(v)
	}
}

// Map applies a same-type transform to every element in order, yielding a new
// Sequence of the same length. Implements Functor.
func (s Sequence[T]) Map(transform func(T) T) Functor[T] {
	items := make([]T, len(s.items))
	for i, v := range s.items {
		items[i] = transform(v)
	}
	return Sequence[T]{items: items}
}

// Wrap lifts v into a one-element Sequence. Implements Monad.
func (Sequence[T]) Wrap(v T) Monad[T] {
	return Seq(v)
}

// FlatMap applies a Sequence-producing same-type transform to every element
// and concatenates the results in order. The transform must return a
// Sequence[T]. Implements Monad.
func (s Sequence[T]) FlatMap(transform func(T) Monad[T]) Monad[T] {
	items := make([]T, 0, len(s.items))
	for _, v := range s.items {
		inner, ok := transform(v).(Sequence[T])
		if !ok {
			panic("fam: FlatMap transform on Sequence must return Sequence of the same type")
		}
		items = append(items, inner.items...)
	}
	return Sequence[T]{items: items}
}
