package msf

import (
	"math"

	"github.com/katalvlaran/horde/atomics"
	"github.com/katalvlaran/horde/launch"
)

// The per-element operations are named structs rather than closures: every
// field below is shared mutable state visible to all threads of a launch,
// and the field list is the complete capture set.

// minWeightOp records, per component, the minimum weight of any incident
// cross-component arc. Keeping an arc means it lowered its component's
// minimum at the moment it executed.
type minWeightOp struct {
	g          Graph
	roots      []int32
	minWeights []float64
}

func (op minWeightOp) keep(e int32, _ *launch.Block) bool {
	src := op.g.SourceVertex(e)
	dst := op.g.DestinationVertex(e)
	// Arcs inside one super-vertex are no candidates.
	if op.roots[src] == op.roots[dst] {
		return false
	}
	w := op.g.EdgeWeight(e)
	old := atomics.MinFloat64(&op.minWeights[op.roots[src]], w)

	return w < old
}

// minNeighborOp elects one canonical arc per component among those
// matching the recorded minimum weight, by atomic max over arc ids.
// Under concurrent writes the min-then-max pair approximates, but does not
// guarantee, a unique winner; the loop's guard rails bound the fallout.
type minNeighborOp struct {
	g            Graph
	roots        []int32
	minWeights   []float64
	minNeighbors []int32
}

func (op minNeighborOp) keep(e int32, _ *launch.Block) bool {
	src := op.g.SourceVertex(e)
	if op.g.EdgeWeight(e) != op.minWeights[op.roots[src]] {
		return false
	}
	old := atomics.MaxInt32(&op.minNeighbors[op.roots[src]], e)

	return old < e
}

// dropTiesOp keeps exactly the arcs that won their component's election.
type dropTiesOp struct {
	g            Graph
	roots        []int32
	minNeighbors []int32
}

func (op dropTiesOp) keep(e int32, _ *launch.Block) bool {
	return e == op.minNeighbors[op.roots[op.g.SourceVertex(e)]]
}

// dropDupsOp removes the reciprocal twin of each undirected edge: when two
// components elected the same edge from both sides, only the src < dst arc
// survives, so each merging pair is committed once.
type dropDupsOp struct {
	g            Graph
	roots        []int32
	minNeighbors []int32
}

func (op dropDupsOp) keep(e int32, _ *launch.Block) bool {
	src := op.g.SourceVertex(e)
	dst := op.g.DestinationVertex(e)
	if src < dst {
		return true
	}
	twin := op.minNeighbors[op.roots[dst]]
	if twin == noNeighbor {
		return true
	}

	// The far component elected something else: e is no duplicate.
	return op.g.DestinationVertex(twin) != src || op.g.SourceVertex(twin) != dst
}

// commitOp runs per vertex. A vertex whose component recorded a canonical
// edge (only current roots did) commits it: weight into the result total,
// counters, and the root pointer redirected toward the neighbor component.
type commitOp struct {
	g             Graph
	roots         []int32
	newRoots      []int32
	minWeights    []float64
	minNeighbors  []int32
	total         *float64
	forestEdges   *int64
	superVertices *int64
}

func (op commitOp) apply(v int32, _ *launch.Block) {
	if op.minWeights[v] == math.MaxFloat64 {
		return
	}
	e := op.minNeighbors[v]
	if e == noNeighbor {
		return
	}
	src := op.g.SourceVertex(e)
	dst := op.g.DestinationVertex(e)

	// Same duplicate test as the filter, re-evaluated against possibly
	// newer elections: the losing side of a mutual pair stays put.
	twin := op.minNeighbors[op.roots[dst]]
	if src >= dst && twin != noNeighbor &&
		op.g.DestinationVertex(twin) == src && op.g.SourceVertex(twin) == dst {
		return
	}

	atomics.AddFloat64(op.total, op.minWeights[v])
	atomics.AddInt64(op.forestEdges, 1)
	atomics.AddInt64(op.superVertices, -1)
	// newRoots[dst] may be redirected concurrently by dst's own commit;
	// the stale read is part of the reference behavior, resolved by the
	// pointer-jumping rounds that follow.
	atomics.SwapInt32(&op.newRoots[v], atomics.LoadInt32(&op.newRoots[dst]))
}

// jumpOp flattens each vertex's root chain to its fixed point, writing the
// result into newRoots while reading the roots snapshot copied in before
// the launch.
type jumpOp struct {
	roots    []int32
	newRoots []int32
}

func (op jumpOp) apply(v int32, _ *launch.Block) {
	u := op.roots[v]
	for op.roots[u] != u {
		u = op.roots[u]
	}
	op.newRoots[v] = u
}
