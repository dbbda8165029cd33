// Package ccomp labels connected components on the horde framework,
// exercising the same operator set as the spanning-forest computation
// with a different iteration body.
//
// What
//
//	Each iteration hooks components together along the surviving edge
//	frontier (atomic-min of root labels across every cross-component
//	edge), flattens root chains by pointer jumping, then narrows the
//	frontier to the edges that still straddle two components. The run
//	converges when that frontier is empty; every vertex then carries its
//	component's smallest vertex id as label.
//
// Why it is here
//
//	The framework contract promises to host algorithms beyond the
//	illustrated forest computation. ccomp is the second tenant: it shares
//	frontier, operators, enactor, and launch selection unchanged, and
//	differs only in problem state and loop body.
//
// Usage
//
//	labels := make([]int32, g.VertexCount())
//	count, elapsed, err := ccomp.Run(g, labels, ctx)
package ccomp
