package msf

import "sort"

// Sequential computes the minimum spanning forest of g with Kruskal's
// algorithm and a disjoint-set union (path compression plus union by
// rank). It is the single-threaded reference the parallel run is checked
// against; disconnected graphs yield the forest over every component.
//
// Returns the total forest weight and the number of edges in the forest.
// Reciprocal arc twins collapse naturally: the second arc of a pair never
// joins two distinct sets.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Sequential(g Graph) (float64, int, error) {
	if g == nil {
		return 0, 0, ErrNilGraph
	}

	n := int(g.VertexCount())
	m := int(g.EdgeCount())

	// 1. Collect arc ids, skipping self-loops: they never span.
	arcs := make([]int32, 0, m)
	for e := int32(0); e < int32(m); e++ {
		if g.SourceVertex(e) != g.DestinationVertex(e) {
			arcs = append(arcs, e)
		}
	}

	// 2. Sort by ascending weight; stable keeps arc-id order on ties for
	//    a deterministic forest.
	sort.SliceStable(arcs, func(i, j int) bool {
		return g.EdgeWeight(arcs[i]) < g.EdgeWeight(arcs[j])
	})

	// 3. Disjoint-set forest over the dense vertex range.
	parent := make([]int32, n)
	rank := make([]int8, n)
	for v := range parent {
		parent[v] = int32(v)
	}

	// Iterative find with path compression (grandparent shortcut).
	find := func(u int32) int32 {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// 4. Sweep sorted arcs, joining whenever endpoints are in different
	//    sets; stop early once the forest is maximal.
	var (
		total float64
		edges int
	)
	for _, e := range arcs {
		ru := find(g.SourceVertex(e))
		rv := find(g.DestinationVertex(e))
		if ru == rv {
			continue
		}
		// Union by rank: attach the shallower tree under the deeper root.
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		total += g.EdgeWeight(e)
		edges++
		if edges == n-1 {
			break
		}
	}

	return total, edges, nil
}
