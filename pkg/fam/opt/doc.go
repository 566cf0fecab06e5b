// Package opt contains the type-changing operations over fam.Optional[T]:
// Map, Apply, FlatMap, and the Wrap unit, plus fold and bridge helpers.
//
// The defining contract of this package is that no transform is ever invoked
// on an Absent operand: Map and FlatMap pass absence through untouched, and
// Apply requires both the value and the transform to be present.
package opt
