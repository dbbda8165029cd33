package operator

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/frontier"
	"github.com/katalvlaran/horde/launch"
)

// ParallelFor applies apply to every element of f in parallel. Frontier
// membership is untouched; all effects happen through the state the
// operation captures. Like Filter, the pass barriers the stream first so
// it observes the frontier its predecessor finished writing.
//
// Complexity: O(f.Len()) applications.
func ParallelFor[T constraints.Integer](ctx *device.Context, stream *device.Stream, p launch.Params, f *frontier.Frontier[T], apply Apply[T]) error {
	if apply == nil {
		return ErrNilOperation
	}
	if err := stream.Sync(); err != nil {
		return err
	}

	src := f.Slice()

	return launch.Launch(ctx, stream, p, len(src), func(i int, blk *launch.Block) {
		apply(src[i], blk)
	})
}
