package enactor

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/frontier"
)

// Enactor is the generic BSP driver. It owns one frontier pair sized to
// the problem's element range and runs every launch on a single stream of
// the supplied context.
type Enactor[T constraints.Integer] struct {
	ctx    *device.Context
	stream *device.Stream
	fronts *frontier.Pair[T]
	opts   Options
}

// New builds a driver whose frontiers hold up to capacity elements.
// Capacity is the problem's element-range size (edge count for edge
// frontiers); it is fixed for the lifetime of the driver.
func New[T constraints.Integer](ctx *device.Context, capacity int, opts ...Option) (*Enactor[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stream, err := ctx.Stream(o.Slot)
	if err != nil {
		return nil, errors.Wrapf(err, "enactor: slot %d", o.Slot)
	}

	return &Enactor[T]{
		ctx:    ctx,
		stream: stream,
		fronts: frontier.NewPair[T](capacity),
		opts:   o,
	}, nil
}

// Context returns the device context the driver launches on.
func (e *Enactor[T]) Context() *device.Context { return e.ctx }

// Stream returns the stream carrying the run's launches.
func (e *Enactor[T]) Stream() *device.Stream { return e.stream }

// Frontiers exposes the driver-owned pair, mainly for tests and for
// problems that seed auxiliary state from the initial active set.
func (e *Enactor[T]) Frontiers() *frontier.Pair[T] { return e.fronts }

// Enact runs p to convergence and returns the elapsed wall time of the
// iteration phase.
//
// Sequence: PrepareFrontier seeds the in-side, then each round barriers
// the stream, evaluates IsConverged, and either stops or runs Loop. The
// iteration guard converts a stuck run into ErrNoConvergence instead of
// spinning forever. The caller is responsible for having called Init.
func (e *Enactor[T]) Enact(p Problem[T]) (time.Duration, error) {
	if p == nil {
		return 0, ErrNilProblem
	}

	if err := p.PrepareFrontier(e.fronts.In); err != nil {
		return 0, errors.Wrapf(err, "enactor: %s: prepare frontier", e.opts.Name)
	}

	start := time.Now()
	iterations := 0
	for ; ; iterations++ {
		// Inter-iteration synchronization point: every launch of the
		// previous iteration has completed before the predicate runs.
		if err := e.stream.Sync(); err != nil {
			return time.Since(start), errors.Wrapf(err, "enactor: %s: barrier", e.opts.Name)
		}
		if p.IsConverged() {
			break
		}
		if iterations >= e.opts.MaxIterations {
			return time.Since(start), errors.Wrapf(ErrNoConvergence, "enactor: %s: after %d iterations", e.opts.Name, iterations)
		}

		if err := p.Loop(iterations, e.fronts); err != nil {
			return time.Since(start), errors.Wrapf(err, "enactor: %s: iteration %d", e.opts.Name, iterations)
		}
		if klog.V(2).Enabled() {
			klog.Infof("enactor: %s: iteration %d issued (in=%d out=%d)", e.opts.Name, iterations, e.fronts.In.Len(), e.fronts.Out.Len())
		}
	}
	elapsed := time.Since(start)

	klog.V(1).Infof("enactor: %s converged after %d iterations in %s", e.opts.Name, iterations, elapsed)

	return elapsed, nil
}
