// Package atomics provides the shared-write primitives horde kernels use on
// contended Problem-state arrays: atomic min, max, add, and exchange over
// plain Go slices of int32 and float64.
//
// What
//
//	Every helper takes the address of one slice element, applies its
//	operation atomically, and returns the value that was stored there
//	before the call, matching the accelerator convention where the old
//	value tells a thread whether its write "won".
//
// Why
//
//	Within one kernel launch thousands of goroutine-scheduled threads may
//	update the same per-component cell (minimum incident weight, canonical
//	neighbor edge, the super-vertex counter). Locks would serialize work
//	that is otherwise embarrassingly parallel; CAS loops keep contention
//	cost proportional to actual collisions.
//
// Memory ordering
//
//	The contract is deliberately relaxed. Callers only require that all
//	writes of one launch are visible after the stream barrier that ends the
//	iteration; no happens-before edge between two threads of the same
//	launch is promised or needed. Plain reads of concurrently written cells
//	are permitted exactly where the algorithm tolerates a stale view.
//
// float64 cells have no native atomic support, so MinFloat64 and AddFloat64
// reinterpret the element as its IEEE-754 bit pattern and CAS on that.
package atomics
