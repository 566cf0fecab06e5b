package fam

// Optional holds zero or one value of type T: Present carries a value,
// Absent carries nothing. Exactly one variant is active; instances are
// immutable after construction.
type Optional[T any] struct {
	value   T
	present bool
}

// Present constructs an Optional carrying v.
func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Absent constructs an empty Optional.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Value returns the contained value (zero value when absent).
func (o Optional[T]) Value() T {
	return o.value
}

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsAbsent reports whether the Optional is empty.
func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// OrElse returns the contained value when present, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Map applies a same-type transform to the value when present; on Absent the
// transform is never invoked. Implements Functor.
func (o Optional[T]) Map(transform func(T) T) Functor[T] {
	if o.present {
		return Present(transform(o.value))
	}
	return o
}

// Apply applies a transform that is itself optional. The outcome is Present
// only when both the receiver and the transform are Present; there is no
// preference for either side when exactly one is absent. Implements
// Applicative.
func (o Optional[T]) Apply(transform Applicative[func(T) T]) Applicative[T] {
	f, ok := transform.(Optional[func(T) T])
	if !ok {
		panic("fam: Apply transform on Optional must be Optional")
	}
	if o.present && f.present {
		return Present(f.value(o.value))
	}
	return Absent[T]()
}

// Wrap lifts v into a Present Optional. Implements Monad.
func (Optional[T]) Wrap(v T) Monad[T] {
	return Present(v)
}

// FlatMap applies an Optional-producing same-type transform to the value when
// present; on Absent the transform is never invoked. The transform must
// return an Optional[T]. Implements Monad.
func (o Optional[T]) FlatMap(transform func(T) Monad[T]) Monad[T] {
	if !o.present {
		return o
	}
	out, ok := transform(o.value).(Optional[T])
	if !ok {
		panic("fam: FlatMap transform on Optional must return Optional of the same type")
	}
	return out
}
