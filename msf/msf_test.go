package msf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/edgegraph"
	"github.com/katalvlaran/horde/enactor"
	"github.com/katalvlaran/horde/msf"
)

// newCtx builds a context and registers teardown.
func newCtx(t testing.TB) *device.Context {
	t.Helper()
	ctx := device.New()
	t.Cleanup(ctx.Close)

	return ctx
}

// buildCycle constructs the 5-vertex cycle with distinct weights
//
//	0—1 (1), 1—2 (2), 2—3 (3), 3—4 (4), 4—0 (5).
//
// Its unique MST drops the heaviest cycle edge: total weight 10.
func buildCycle(t testing.TB) *edgegraph.Graph {
	t.Helper()
	g, err := edgegraph.New(5)
	require.NoError(t, err)
	for i, w := range []float64{1, 2, 3, 4, 5} {
		_, err = g.AddEdge(int32(i), int32((i+1)%5), w)
		require.NoError(t, err)
	}

	return g
}

// buildMediumGraph creates a connected graph with n vertices and extra
// random edges on top of a spanning chain. Every edge weight is unique
// (a shuffled permutation), so the minimum spanning tree is unique and
// the parallel result must match the sequential oracle exactly.
func buildMediumGraph(t testing.TB, n, extra int) *edgegraph.Graph {
	t.Helper()
	g, err := edgegraph.New(n)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	weights := r.Perm(n - 1 + extra)

	// 1. Spanning chain guarantees connectivity.
	k := 0
	for i := 1; i < n; i++ {
		_, err = g.AddEdge(int32(i-1), int32(i), float64(weights[k]+1))
		require.NoError(t, err)
		k++
	}
	// 2. Extra random edges (self-loops skipped; parallel edges fine).
	for added := 0; added < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, err = g.AddEdge(int32(u), int32(v), float64(weights[k]+1))
		require.NoError(t, err)
		k++
		added++
	}

	return g
}

// TestRun_CycleMatchesReference: a tie-free cycle must reproduce the
// sequential result exactly.
func TestRun_CycleMatchesReference(t *testing.T) {
	ctx := newCtx(t)
	g := buildCycle(t)

	var total float64
	_, err := msf.Run(g, &total, ctx)
	require.NoError(t, err)

	want, wantEdges, err := msf.Sequential(g)
	require.NoError(t, err)
	assert.Equal(t, 10.0, want)
	assert.Equal(t, 4, wantEdges)
	assert.Equal(t, want, total)
}

// TestRun_MediumGraphMatchesReference compares parallel and sequential
// totals on a seeded 200-vertex graph with unique weights.
func TestRun_MediumGraphMatchesReference(t *testing.T) {
	ctx := newCtx(t)
	g := buildMediumGraph(t, 200, 400)

	var total float64
	_, err := msf.Run(g, &total, ctx)
	require.NoError(t, err)

	want, _, err := msf.Sequential(g)
	require.NoError(t, err)
	assert.Equal(t, want, total)
}

// TestProblem_SuperVertexAccounting: a completed run decrements the
// super-vertex counter exactly V-C times and commits V-C forest edges.
func TestProblem_SuperVertexAccounting(t *testing.T) {
	ctx := newCtx(t)
	stream, err := ctx.Stream(0)
	require.NoError(t, err)

	// Two components: a 4-cycle and a 3-path. V=7, C=2.
	g, err := edgegraph.New(7)
	require.NoError(t, err)
	for i, w := range []float64{1, 2, 3, 4} {
		_, err = g.AddEdge(int32(i), int32((i+1)%4), w)
		require.NoError(t, err)
	}
	_, err = g.AddEdge(4, 5, 6)
	require.NoError(t, err)
	_, err = g.AddEdge(5, 6, 7)
	require.NoError(t, err)

	var total float64
	p, err := msf.NewProblem(g, &total, ctx, stream)
	require.NoError(t, err)
	require.NoError(t, p.Init())

	drv, err := enactor.New[int32](ctx, int(g.EdgeCount()))
	require.NoError(t, err)
	_, err = drv.Enact(p)
	require.NoError(t, err)

	assert.EqualValues(t, 2, p.SuperVertices())
	assert.EqualValues(t, 5, p.ForestEdges()) // V - C = 7 - 2

	want, _, err := msf.Sequential(g)
	require.NoError(t, err)
	assert.Equal(t, want, total)
}

// TestProblem_IsolatedVertexTerminates: one isolated vertex plus one
// connected component must finish with two super-vertices, without ever
// selecting an edge for the isolated one.
func TestProblem_IsolatedVertexTerminates(t *testing.T) {
	ctx := newCtx(t)
	stream, err := ctx.Stream(0)
	require.NoError(t, err)

	// Vertices 0..4 connected, vertex 5 isolated.
	g := func() *edgegraph.Graph {
		g, gerr := edgegraph.New(6)
		require.NoError(t, gerr)
		for i, w := range []float64{1, 2, 3, 4} {
			_, gerr = g.AddEdge(int32(i), int32(i+1), w)
			require.NoError(t, gerr)
		}

		return g
	}()

	var total float64
	p, err := msf.NewProblem(g, &total, ctx, stream)
	require.NoError(t, err)
	require.NoError(t, p.Init())

	drv, err := enactor.New[int32](ctx, int(g.EdgeCount()), enactor.WithMaxIterations(64))
	require.NoError(t, err)
	_, err = drv.Enact(p)
	require.NoError(t, err)

	assert.EqualValues(t, 2, p.SuperVertices())
	assert.EqualValues(t, 4, p.ForestEdges())
	assert.Equal(t, 10.0, total)
	// The isolated vertex stayed its own root.
	assert.EqualValues(t, 5, p.Roots()[5])
}

// TestProblem_RootsAreFlattened: at convergence the root array is a fixed
// point of pointer jumping: re-applying the flattening changes nothing.
func TestProblem_RootsAreFlattened(t *testing.T) {
	ctx := newCtx(t)
	stream, err := ctx.Stream(0)
	require.NoError(t, err)

	g := buildMediumGraph(t, 64, 100)
	var total float64
	p, err := msf.NewProblem(g, &total, ctx, stream)
	require.NoError(t, err)
	require.NoError(t, p.Init())

	drv, err := enactor.New[int32](ctx, int(g.EdgeCount()))
	require.NoError(t, err)
	_, err = drv.Enact(p)
	require.NoError(t, err)

	roots := p.Roots()
	for v, r := range roots {
		// Following the chain from r goes nowhere else.
		assert.Equal(t, r, roots[r], "vertex %d root chain not flat", v)
	}
}

// TestRun_TrivialGraphs: the degenerate vertex counts converge instantly.
func TestRun_TrivialGraphs(t *testing.T) {
	ctx := newCtx(t)

	for _, n := range []int{0, 1} {
		g, err := edgegraph.New(n)
		require.NoError(t, err)

		var total float64
		_, err = msf.Run(g, &total, ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	}
}

// TestRun_InputValidation covers the refusal paths.
func TestRun_InputValidation(t *testing.T) {
	ctx := newCtx(t)

	var total float64
	_, err := msf.Run(nil, &total, ctx)
	assert.ErrorIs(t, err, msf.ErrNilGraph)

	g, err := edgegraph.New(2)
	require.NoError(t, err)
	_, err = msf.Run(g, nil, ctx)
	assert.ErrorIs(t, err, msf.ErrNilResult)
}

// TestSequential_Triangle pins the oracle itself on a hand-checked case:
// A—B (1), B—C (2), A—C (3) has MST weight 3.
func TestSequential_Triangle(t *testing.T) {
	g, err := edgegraph.New(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, 3)
	require.NoError(t, err)

	total, edges, err := msf.Sequential(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, 2, edges)
}

// TestSequential_Forest: disconnected input yields the forest over every
// component, not an error.
func TestSequential_Forest(t *testing.T) {
	g, err := edgegraph.New(5)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 4, 2)
	require.NoError(t, err)

	total, edges, err := msf.Sequential(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, 2, edges)

	_, _, err = msf.Sequential(nil)
	assert.ErrorIs(t, err, msf.ErrNilGraph)
}
