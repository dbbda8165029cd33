// Package operator provides the two reusable parallel primitives horde
// algorithms are composed from: Filter (predicate-driven compaction of a
// frontier) and ParallelFor (side-effecting per-element application).
//
// What
//
//   - Filter applies a boolean predicate to every element of the input
//     frontier in parallel and writes exactly the elements the predicate
//     kept into the output frontier ("remove" semantics: false drops the
//     element). Relative order of survivors is not preserved; winners land
//     in cursor order, not input order. Input and output may be the same
//     frontier; the pass then compacts through a scratch buffer.
//   - ParallelFor applies an operation to every element of a frontier
//     without changing its membership.
//
// Both primitives issue all device work through the launch kernels (no
// algorithm ever launches raw goroutines), and both resolve the stream
// before sampling the input size, so a pass always observes the frontier
// its predecessor finished writing.
//
// Failure semantics
//
//	The primitives perform no algorithm-level validation. An operation
//	that indexes out of bounds, or writes contended state without the
//	atomics package, is a programming defect surfacing as a runtime panic
//	or a silent race, not a recoverable error; guard bounds inside the
//	operation.
package operator
