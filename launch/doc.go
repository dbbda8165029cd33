// Package launch selects kernel launch configurations per compile target
// and provides the two bounded-parallel kernels every horde operator is
// built from.
//
// What
//
//   - Params: one launch-parameter descriptor, the (target mask,
//     threads-per-block, items-per-thread, shared-memory bytes) tuple
//     governing one kernel shape.
//   - Box: an ordered list of Params candidates for one algorithm. Pick
//     filters the list down to the descriptors whose Arch mask intersects
//     the generation this binary was compiled for and takes the leading
//     survivor. An empty survivor set is a fatal misconfiguration: Pick
//     panics with a stack trace, so a Box resolved in a package var block
//     fails at program start, the closest Go rendering of a build error.
//   - Strided / BlockedStrided: generic kernels applying a caller-supplied
//     operation to every index in [0, bound) using a grid-stride loop.
//     BlockedStrided additionally walks ItemsPerThread stride-spaced
//     offsets per step, trading loop trips for per-thread working set.
//
// Multiple survivors
//
//	When several descriptors match the active target, all are retained in
//	declaration order and Pick takes the first: declaration order is the
//	author's preference order. Matches exposes the full set for callers
//	that disambiguate differently.
//
// Launch bounds
//
//	A kernel keeps at most Workers/ItemsPerThread block goroutines
//	resident, mirroring the strict launch bounds of the descriptor: a
//	heavier per-thread working set buys a narrower resident grid.
//
// The kernels are pure index-iteration harnesses. They carry no algorithm
// knowledge; bound checks inside the supplied operation are the caller's
// duty, and an out-of-range access is a defect, not a recoverable error.
package launch
