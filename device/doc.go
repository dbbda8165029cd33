// Package device models the execution substrate every horde kernel runs on:
// a Context of one or more logical device slots, each slot owning a Stream
// that executes submitted work in strict submission order.
//
// What
//
//   - Arch: a bit-flag identifying the compute-target generation the binary
//     was compiled for. Exactly one flag is active per build; it is selected
//     by build constraints, never at run time.
//   - Context: a bundle of Streams plus the worker budget kernels may spend.
//   - Stream: a serial task queue backed by a single dispatcher goroutine,
//     mirroring an accelerator command stream. Work submitted to one Stream
//     never reorders; work on distinct Streams may overlap freely.
//
// Why
//
//	Iterative graph algorithms alternate parallel phases with global
//	barriers (bulk-synchronous execution). The Stream provides the ordering
//	half of that contract, Sync provides the barrier half, and the Context
//	worker budget bounds how many goroutine "blocks" a kernel may keep
//	resident at once.
//
// Concurrency
//
//	Submit and Sync are safe for concurrent use. Tasks submitted to the same
//	Stream are executed one at a time by the dispatcher; any parallelism
//	happens inside a task (kernels fan out their own block goroutines and
//	join them before returning).
//
// Usage
//
//	ctx := device.New(device.WithSlots(1))
//	defer ctx.Close()
//	s := ctx.Stream(0)
//	s.Submit(func() { /* one kernel launch */ })
//	s.Sync() // barrier: all submitted work has completed
package device
