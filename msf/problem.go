package msf

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/horde/atomics"
	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/frontier"
	"github.com/katalvlaran/horde/launch"
	"github.com/katalvlaran/horde/operator"
)

// Problem owns the device-resident state of one forest computation and
// implements enactor.Problem[int32] over an edge-id frontier.
//
// State lives for exactly one run: allocated and seeded by Init, mutated
// every iteration by the operator sequence in Loop, read by IsConverged,
// never resized.
type Problem struct {
	g      Graph
	ctx    *device.Context
	stream *device.Stream

	// Per-vertex arrays. minWeights and minNeighbors are indexed by
	// component root id, so only slots of current roots carry data.
	roots        []int32
	newRoots     []int32
	minWeights   []float64
	minNeighbors []int32

	// Scalar counters, all atomically updated inside kernels.
	superVertices int64
	forestEdges   int64
	total         *float64

	// vertices is the full-vertex working set the per-vertex passes run
	// over; its membership never changes after Init.
	vertices *frontier.Frontier[int32]

	// prevSuper backs the monotonicity guard; settled flips when an
	// iteration finds no cross-component arc anywhere.
	prevSuper int64
	settled   bool
}

// NewProblem binds a forest computation to g, writing the accumulated
// weight into total. All launches go through stream, which must be the
// same stream the driving enactor barriers on.
func NewProblem(g Graph, total *float64, ctx *device.Context, stream *device.Stream) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if total == nil {
		return nil, ErrNilResult
	}

	return &Problem{g: g, ctx: ctx, stream: stream, total: total}, nil
}

// Init allocates every state array at vertex count and seeds it:
// minimum weights saturate at the maximum representable weight, canonical
// neighbors at the no-neighbor sentinel, each vertex starts as its own
// component root, and the super-vertex counter starts at the vertex count.
// The result accumulator is zeroed.
func (p *Problem) Init() error {
	n := int(p.g.VertexCount())

	p.roots = make([]int32, n)
	p.newRoots = make([]int32, n)
	p.minWeights = make([]float64, n)
	p.minNeighbors = make([]int32, n)
	p.superVertices = int64(n)
	p.forestEdges = 0
	p.prevSuper = int64(n)
	p.settled = false
	*p.total = 0

	p.vertices = frontier.New[int32](n)
	if err := p.vertices.Sequence(p.ctx, p.stream, 0, n); err != nil {
		return errors.Wrap(err, "msf: seed vertex set")
	}
	if err := launch.Fill(p.ctx, p.stream, p.minWeights, math.MaxFloat64); err != nil {
		return errors.Wrap(err, "msf: init weights")
	}
	if err := launch.Fill(p.ctx, p.stream, p.minNeighbors, noNeighbor); err != nil {
		return errors.Wrap(err, "msf: init neighbors")
	}
	if err := launch.Sequence(p.ctx, p.stream, p.roots, 0); err != nil {
		return errors.Wrap(err, "msf: init roots")
	}
	if err := launch.Sequence(p.ctx, p.stream, p.newRoots, 0); err != nil {
		return errors.Wrap(err, "msf: init next roots")
	}

	return p.stream.Sync()
}

// PrepareFrontier seeds the full arc-id range [0, E) as the initial
// working set. The in-side keeps this full sequence for the whole run;
// every iteration re-narrows it into the out-side.
func (p *Problem) PrepareFrontier(f *frontier.Frontier[int32]) error {
	return f.Sequence(p.ctx, p.stream, 0, int(p.g.EdgeCount()))
}

// IsConverged holds when a single super-vertex remains, or when the last
// iteration found no cross-component arc (a multi-component forest is
// fully contracted).
func (p *Problem) IsConverged() bool {
	return p.settled || atomics.LoadInt64(&p.superVertices) <= 1
}

// SuperVertices reports the current component counter.
func (p *Problem) SuperVertices() int64 { return atomics.LoadInt64(&p.superVertices) }

// ForestEdges reports how many edges have been committed to the forest.
func (p *Problem) ForestEdges() int64 { return atomics.LoadInt64(&p.forestEdges) }

// Roots exposes the component-root array. Valid between iterations only;
// tests use it to check pointer-jumping idempotence.
func (p *Problem) Roots() []int32 { return p.roots }

// Loop issues one contraction round. See the package comment for the
// operator sequence; fs.In must hold the full arc range and is left
// untouched.
func (p *Problem) Loop(iteration int, fs *frontier.Pair[int32]) error {
	// Guard rail: contraction may stall on races, but the counter going
	// back up means state corruption, not a stall.
	super := atomics.LoadInt64(&p.superVertices)
	if super > p.prevSuper {
		return errors.Wrapf(ErrInvariant, "iteration %d: %d -> %d", iteration, p.prevSuper, super)
	}
	p.prevSuper = super

	// Reset the per-component election slate.
	if err := launch.Fill(p.ctx, p.stream, p.minWeights, math.MaxFloat64); err != nil {
		return errors.Wrap(err, "reset weights")
	}
	if err := launch.Fill(p.ctx, p.stream, p.minNeighbors, noNeighbor); err != nil {
		return errors.Wrap(err, "reset neighbors")
	}

	// (a) record per-component minimum incident weights.
	minW := minWeightOp{g: p.g, roots: p.roots, minWeights: p.minWeights}
	if err := operator.Filter(p.ctx, p.stream, kernelParams, fs.In, fs.Out, minW.keep); err != nil {
		return errors.Wrap(err, "min-weight filter")
	}
	if err := p.stream.Sync(); err != nil {
		return err
	}
	if fs.Out.Len() == 0 {
		// No component has a cross-component arc left: the remaining
		// super-vertices are final.
		p.settled = true

		return nil
	}

	// (b) elect one canonical arc per component.
	minN := minNeighborOp{g: p.g, roots: p.roots, minWeights: p.minWeights, minNeighbors: p.minNeighbors}
	if err := operator.Filter(p.ctx, p.stream, kernelParams, fs.Out, fs.Out, minN.keep); err != nil {
		return errors.Wrap(err, "min-neighbor filter")
	}

	// (c) narrow to exactly the elected arcs.
	ties := dropTiesOp{g: p.g, roots: p.roots, minNeighbors: p.minNeighbors}
	if err := operator.Filter(p.ctx, p.stream, kernelParams, fs.Out, fs.Out, ties.keep); err != nil {
		return errors.Wrap(err, "tie filter")
	}

	// (d) drop reciprocal duplicates so each merging pair commits once.
	dups := dropDupsOp{g: p.g, roots: p.roots, minNeighbors: p.minNeighbors}
	if err := operator.Filter(p.ctx, p.stream, kernelParams, fs.Out, fs.Out, dups.keep); err != nil {
		return errors.Wrap(err, "duplicate filter")
	}

	// (e) commit elected edges: result total, counters, root redirects.
	commit := commitOp{
		g: p.g, roots: p.roots, newRoots: p.newRoots,
		minWeights: p.minWeights, minNeighbors: p.minNeighbors,
		total: p.total, forestEdges: &p.forestEdges, superVertices: &p.superVertices,
	}
	if err := operator.ParallelFor(p.ctx, p.stream, kernelParams, p.vertices, commit.apply); err != nil {
		return errors.Wrap(err, "commit")
	}

	// (f) flatten root chains: adopt the redirected pointers, jump, adopt
	// the flattened result.
	if err := launch.Copy(p.ctx, p.stream, p.roots, p.newRoots); err != nil {
		return errors.Wrap(err, "adopt roots")
	}
	jump := jumpOp{roots: p.roots, newRoots: p.newRoots}
	if err := operator.ParallelFor(p.ctx, p.stream, kernelParams, p.vertices, jump.apply); err != nil {
		return errors.Wrap(err, "pointer jump")
	}
	if err := launch.Copy(p.ctx, p.stream, p.roots, p.newRoots); err != nil {
		return errors.Wrap(err, "adopt flattened roots")
	}

	return nil
}
