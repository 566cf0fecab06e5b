// Package bulk applies a fallible stage to every element of a sequence on a
// fixed number of worker goroutines. It is the only concurrent layer of the
// library; the containers themselves stay pure, and the output sequence
// preserves the input order regardless of worker scheduling.
//
// A context already cancelled when an element is picked up turns that element
// into a failure carrying ctx.Err(); elements never disappear from the
// output.
package bulk
