package operator

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/frontier"
	"github.com/katalvlaran/horde/launch"
)

// Filter compacts in into out, keeping exactly the elements keep returned
// true for ("remove" semantics). The predicate is evaluated against the
// input snapshot taken at the head of the pass; survivor order is
// unspecified. in == out is allowed and compacts through scratch.
//
// The pass is asynchronous: out's contents and length are authoritative
// only after the next stream barrier, but a follow-up Filter or
// ParallelFor on the same stream may consume out immediately, since
// operators barrier internally before sampling sizes.
//
// Complexity: O(in.Len()) predicate evaluations plus one atomic cursor
// bump per survivor.
func Filter[T constraints.Integer](ctx *device.Context, stream *device.Stream, p launch.Params, in, out *frontier.Frontier[T], keep Predicate[T]) error {
	if keep == nil {
		return ErrNilOperation
	}
	// Resolve pending writes so the input snapshot is consistent.
	if err := stream.Sync(); err != nil {
		return err
	}

	n := in.Len()
	if out.Cap() < n {
		return ErrCapacity
	}
	src := in.Slice()

	// Compact into the output backing store, or into scratch when the
	// caller filters a frontier onto itself.
	dst := out.Raw()
	aliased := in == out
	if aliased {
		dst = make([]T, n)
	}

	var cursor int64
	err := launch.Launch(ctx, stream, p, n, func(i int, blk *launch.Block) {
		e := src[i]
		if keep(e, blk) {
			dst[atomic.AddInt64(&cursor, 1)-1] = e
		}
	})
	if err != nil {
		return err
	}

	// Publish the survivor count (and unstage scratch) strictly after the
	// compaction kernel: stream order is the only fence needed.
	return stream.Submit(func() {
		kept := int(cursor)
		if aliased {
			copy(out.Raw(), dst[:kept])
		}
		// Capacity was checked above; SetLen cannot fail here.
		_ = out.SetLen(kept)
	})
}
