package ccomp

import (
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/horde/atomics"
	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/enactor"
	"github.com/katalvlaran/horde/frontier"
	"github.com/katalvlaran/horde/launch"
	"github.com/katalvlaran/horde/operator"
)

// problem implements enactor.Problem[int32] over an edge-id frontier.
type problem struct {
	g      Graph
	ctx    *device.Context
	stream *device.Stream

	roots    []int32
	newRoots []int32
	vertices *frontier.Frontier[int32]
	settled  bool
}

// hookOp pulls the larger of two root labels down to the smaller one for
// every cross-component arc, and keeps the arc in the frontier: it may
// straddle components again next iteration until labels stabilize.
type hookOp struct {
	roots    []int32
	newRoots []int32
	g        Graph
}

func (op hookOp) keep(e int32, _ *launch.Block) bool {
	ru := op.roots[op.g.SourceVertex(e)]
	rv := op.roots[op.g.DestinationVertex(e)]
	if ru == rv {
		return false
	}
	if ru > rv {
		ru, rv = rv, ru
	}
	atomics.MinInt32(&op.newRoots[rv], ru)

	return true
}

// publishOp copies final roots into the caller's label buffer and counts
// components (one root labels itself).
type publishOp struct {
	roots  []int32
	labels []int32
	count  *int64
}

func (op publishOp) apply(v int32, _ *launch.Block) {
	op.labels[v] = op.roots[v]
	if op.roots[v] == v {
		atomics.AddInt64(op.count, 1)
	}
}

// jumpOp flattens root chains exactly as the forest computation does.
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

func (p *problem) Init() error {
	n := int(p.g.VertexCount())
	p.roots = make([]int32, n)
	p.newRoots = make([]int32, n)
	p.settled = false

	p.vertices = frontier.New[int32](n)
	if err := p.vertices.Sequence(p.ctx, p.stream, 0, n); err != nil {
		return errors.Wrap(err, "ccomp: seed vertex set")
	}
	if err := launch.Sequence(p.ctx, p.stream, p.roots, 0); err != nil {
		return errors.Wrap(err, "ccomp: init roots")
	}
	if err := launch.Sequence(p.ctx, p.stream, p.newRoots, 0); err != nil {
		return errors.Wrap(err, "ccomp: init next roots")
	}

	return p.stream.Sync()
}

func (p *problem) PrepareFrontier(f *frontier.Frontier[int32]) error {
	return f.Sequence(p.ctx, p.stream, 0, int(p.g.EdgeCount()))
}

func (p *problem) IsConverged() bool { return p.settled }

// Loop hooks, flattens, and narrows. Unlike the forest loop, the frontier
// narrows monotonically: once both endpoints share a root they always
// will, so the surviving set becomes next iteration's input via Swap.
func (p *problem) Loop(_ int, fs *frontier.Pair[int32]) error {
	hook := hookOp{roots: p.roots, newRoots: p.newRoots, g: p.g}
	if err := operator.Filter(p.ctx, p.stream, kernelParams, fs.In, fs.Out, hook.keep); err != nil {
		return errors.Wrap(err, "hook filter")
	}
	if err := p.stream.Sync(); err != nil {
		return err
	}
	if fs.Out.Len() == 0 {
		p.settled = true

		return nil
	}

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

	fs.Swap()

	return nil
}

// Run labels connected components of g into labels (one slot per vertex)
// and returns the component count plus elapsed iteration time. Enactor
// options pass through.
func Run(g Graph, labels []int32, ctx *device.Context, opts ...enactor.Option) (int64, time.Duration, error) {
	if g == nil {
		return 0, 0, ErrNilGraph
	}
	if int32(len(labels)) < g.VertexCount() {
		return 0, 0, ErrLabelSize
	}

	o := enactor.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	stream, err := ctx.Stream(o.Slot)
	if err != nil {
		return 0, 0, errors.Wrap(err, "ccomp: resolve stream")
	}

	p := &problem{g: g, ctx: ctx, stream: stream}
	if err = p.Init(); err != nil {
		return 0, 0, err
	}

	drv, err := enactor.New[int32](ctx, int(g.EdgeCount()), append(opts, enactor.WithName("ccomp"))...)
	if err != nil {
		return 0, 0, err
	}
	elapsed, err := drv.Enact(p)
	if err != nil {
		return 0, elapsed, err
	}

	// Publish labels and count roots in one final pass.
	var count int64
	publish := publishOp{roots: p.roots, labels: labels, count: &count}
	if err = operator.ParallelFor(p.ctx, p.stream, kernelParams, p.vertices, publish.apply); err != nil {
		return 0, elapsed, errors.Wrap(err, "ccomp: publish labels")
	}
	if err = p.stream.Sync(); err != nil {
		return 0, elapsed, err
	}

	klog.V(1).Infof("ccomp: %d vertices, %d arcs -> %d components in %s",
		g.VertexCount(), g.EdgeCount(), count, elapsed)

	return count, elapsed, nil
}
