// Package chain provides a fluent wrapper around fam.Result[T] for building
// left-to-right pipelines of fallible steps using res primitives.
//
// A chain is a left-associative sequencing operator: Then is semantically
// identical to res.FlatMap, so `Start(a).Then(f).Then(g)` behaves exactly
// like nested FlatMap calls. The first failure short-circuits every later
// step and its error value becomes the final outcome.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a bare value
// - Then: switch to a new Result[U] via a fallible step
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map: transform the successful value (T -> U)
// - Ensure: run a side effect on success without changing the result
// - Or/And: pick between alternative chains by success or failure
// - Finally: collapse the chain into a final value via handlers
package chain
