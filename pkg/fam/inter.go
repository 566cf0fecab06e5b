package fam

// The capability interfaces cover the same-type (endomorphic) transforms, so
// every container shape answers to one calling convention. Go methods cannot
// introduce type parameters, so the type-changing forms are the package-level
// generic functions of the seq, opt, and res subpackages.

// Functor is a container that can map a transform over its contents without
// changing the container's shape.
type Functor[T any] interface {
	// Map applies transform to the contained value(s) and returns a fresh
	// container; containers on their empty/failure path return themselves
	// without invoking transform.
	Map(transform func(T) T) Functor[T]
}

// Applicative is a Functor whose transform may itself be carried by a
// container of the same shape.
type Applicative[T any] interface {
	Functor[T]
	// Apply unwraps a contained transform and applies it to the contained
	// value. The transform argument must have the receiver's shape.
	Apply(transform Applicative[func(T) T]) Applicative[T]
}

// Monad is a Functor that can chain container-producing transforms without
// nesting containers.
type Monad[T any] interface {
	Functor[T]
	// Wrap lifts a bare value into the container's minimal success form:
	// Present, Success, or a one-element sequence. Only the receiver's shape
	// is used, never its contents.
	Wrap(value T) Monad[T]
	// FlatMap applies a container-producing transform and flattens the
	// outcome one level. The transform must return the receiver's shape.
	FlatMap(transform func(T) Monad[T]) Monad[T]
}
