// Package frontier holds the active working set a bulk-synchronous graph
// iteration operates over: an ordered buffer of vertex or edge indices
// with a logical size tracked separately from its fixed capacity.
//
// What
//
//   - Frontier[T]: a fixed-capacity buffer of element ids. Sequence seeds
//     it with a consecutive index range in parallel; Len/Slice expose the
//     active prefix; Raw/SetLen let compaction kernels publish a freshly
//     written prefix.
//   - Pair[T]: the in/out double buffer. Compaction reads the in side while
//     writing the out side, so no filter pass ever races with its own
//     input; Swap flips the roles between passes.
//
// Ownership
//
//	A Pair is owned by exactly one enactor run. Frontier methods are not
//	synchronized: the bulk-synchronous schedule (kernels serialized on one
//	stream, host reads only after a barrier) is the concurrency contract.
//
// The element type parameter mirrors the split between vertex-indexed and
// edge-indexed working sets; both are small integers.
package frontier
