// Package fam defines the container types of the library: Sequence[T] for
// ordered collections, Optional[T] for zero-or-one values, and Result[T] for
// success-or-failure outcomes. All three are immutable after construction;
// every transformation produces a fresh instance, so containers can be shared
// across goroutines without synchronization.
//
// The package also declares the Functor, Applicative, and Monad capability
// interfaces that give all containers an identical calling convention for
// same-type transforms. Type-changing transforms live in the verb subpackages:
// - seq: Map/Flatten/FlatMap over Sequence
// - opt: Map/Apply/FlatMap over Optional
// - res: Map/Flatten/FlatMap/Try/Finally over Result
// - chain: fluent left-to-right chaining of fallible steps
// - pipe: function-level (Kleisli) composition of fallible steps
// - bulk: worker-based mapping of a Sequence through a fallible stage
package fam
