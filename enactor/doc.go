// Package enactor drives a frontier-based graph algorithm to convergence
// with a bulk-synchronous-parallel loop.
//
// What
//
//   - Problem: the capability set an algorithm implements: Init (allocate
//     and seed device state), PrepareFrontier (seed the initial active
//     set), Loop (one iteration's operator sequence), IsConverged (the
//     termination predicate).
//   - Enactor: the generic driver. It owns the double-buffered frontier
//     pair, seeds it through the Problem, then alternates Loop with a
//     stream barrier until IsConverged holds, returning elapsed wall time.
//
// Schedule
//
//	The host side of the loop is strictly sequential: every iteration's
//	launches are issued in order, and the convergence predicate is only
//	evaluated after the barrier that ends the iteration, so each iteration
//	observes a fully resolved view of the previous one's state.
//
// Guard rails
//
//	The reference execution model imposes no iteration cap and can spin
//	forever when an algorithm's progress guarantee is violated. Enact
//	bounds the loop (WithMaxIterations, default DefaultMaxIterations) and
//	reports ErrNoConvergence instead of hanging.
//
// Problems are composed into the driver by value. There is no base type
// to inherit from; anything implementing the four methods enacts.
package enactor
