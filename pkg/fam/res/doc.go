// Package res contains the single-value, synchronous operations over
// fam.Result[T]. These functions form the building blocks for error-aware
// pipelines.
//
// Highlights:
// - Succeed/FailWith/Wrap: lifted constructors
// - Map: transform the success value, failure passes through untouched
// - Flatten: collapse one level of Result nesting
// - FlatMap: the composition primitive for chaining fallible operations;
//   the chain short-circuits at the first failure and the original error
//   value is forwarded unchanged
// - Try: call a function (Out, error) and convert the error to a failure
// - Validate/AndValidate: turn a failed predicate into a failure
// - Tee: side-effect helper that leaves the result untouched
// - Finally: reduce to a concrete value via success/failure handlers
// - Collect: gather a sequence of results into a result of a sequence
package res
