package msf

import (
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/enactor"
)

// Run computes the minimum spanning forest of g, accumulates its total
// weight into total, and returns the elapsed iteration time.
//
// The computation allocates a fresh Problem and a fresh enactor on ctx,
// runs to convergence, and leaves the result in *total. Enactor options
// (iteration limit, device slot) pass through; the run name is fixed.
func Run(g Graph, total *float64, ctx *device.Context, opts ...enactor.Option) (time.Duration, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if total == nil {
		return 0, ErrNilResult
	}

	// Resolve the slot choice the same way the enactor will, so the
	// problem launches on the stream the driver barriers on.
	o := enactor.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	stream, err := ctx.Stream(o.Slot)
	if err != nil {
		return 0, errors.Wrap(err, "msf: resolve stream")
	}

	problem, err := NewProblem(g, total, ctx, stream)
	if err != nil {
		return 0, err
	}
	if err = problem.Init(); err != nil {
		return 0, err
	}

	drv, err := enactor.New[int32](ctx, int(g.EdgeCount()), append(opts, enactor.WithName("msf"))...)
	if err != nil {
		return 0, err
	}

	elapsed, err := drv.Enact(problem)
	if err != nil {
		return elapsed, err
	}

	klog.V(1).Infof("msf: %d vertices, %d arcs -> %d forest edges, %d components, weight %g",
		g.VertexCount(), g.EdgeCount(), problem.ForestEdges(), problem.SuperVertices(), *total)

	return elapsed, nil
}
