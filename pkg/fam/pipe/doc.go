// Package pipe composes fallible collaborator functions before any value
// flows through them. It is the function-level counterpart of package chain:
// Two(f, g) builds a single step equivalent to chaining f then g, so
// pipelines can be assembled once and reused.
//
// Key operations:
// - Two/Three: left-to-right composition of Result-returning steps
// - Lift: adapt a conventional (Out, error) function into a step
package pipe
