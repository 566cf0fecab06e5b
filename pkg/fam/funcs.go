package fam

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that always produces v.
func Const[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Compose returns the left-to-right composition of f and g: the transform
// v -> g(f(v)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
