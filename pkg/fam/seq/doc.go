// Package seq contains the type-changing operations over fam.Sequence[T]:
// Map, Flatten, FlatMap, and the Wrap unit, plus Filter and Reduce helpers.
//
// Every operation is a single synchronous pass that preserves element order
// and returns a fresh sequence; inputs are never mutated. There is no error
// channel here: a transform that fails does so through the ambient mechanism
// and is neither caught nor translated.
package seq
