// Package horde runs iterative, frontier-driven graph algorithms across
// swarms of lightweight compute threads, with launch configurations
// selected per compile target.
//
// 🚀 What is horde?
//
//	A bulk-synchronous-parallel graph-processing framework that brings together:
//		• Launch selection: per-target launch-parameter boxes, resolved at
//		  compile/startup time, fatal when no descriptor matches
//		• Bounded kernels: grid-stride and blocked grid-stride apply-over-range
//		• Frontiers: double-buffered active sets with parallel compaction
//		• Operators: filter and parallel-for, the only two an algorithm needs
//		• Enactor: the convergence loop, with barrier discipline and an
//		  iteration guard
//		• Algorithms: Boruvka minimum spanning forest, connected components
//
// ✨ Why choose horde?
//
//   - Algorithms never launch goroutines; every parallel step goes through
//     the bounded kernels, so scheduling stays in one auditable place
//   - Contended writes go through explicit atomic primitives; every kernel
//     operation names its captured state as struct fields
//   - Deterministic structure, honest about races: the reference
//     tie-break races are documented and guarded, not hidden
//
// Package map:
//
//	atomics/   — atomic min/max/add/exchange over shared state arrays
//	ccomp/     — connected-component labeling
//	device/    — contexts, streams, compile-target masks
//	edgegraph/ — dense int32-indexed weighted arc store
//	enactor/   — Problem interface + BSP driver
//	frontier/  — double-buffered active sets
//	launch/    — launch boxes + bounded-parallel kernels
//	msf/       — minimum spanning forest (parallel Boruvka + sequential oracle)
//
// Quick ASCII picture of one iteration:
//
//	frontier ─filter→ frontier' ─filter→ … ─parallel-for→ state
//	     └──────────────── barrier, converged? ─────────────┘
//
// Start with msf.Run or ccomp.Run for end-to-end examples, and the
// enactor package to host an algorithm of your own.
package horde
