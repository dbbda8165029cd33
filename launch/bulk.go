package launch

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/horde/device"
)

// bulkParams shapes the array-maintenance kernels below. One portable
// descriptor suffices: bulk traffic is bandwidth bound, so no per-target
// tuning is declared.
var bulkParams = NewBox("bulk",
	Params{Arch: device.Any, ThreadsPerBlock: 256, ItemsPerThread: 1},
).Pick()

// Fill stores val into every element of dst in parallel on stream.
func Fill[E any](ctx *device.Context, stream *device.Stream, dst []E, val E) error {
	return Strided(ctx, stream, bulkParams, len(dst), func(i int, _ *Block) {
		dst[i] = val
	})
}

// Sequence stores start, start+1, … into dst in parallel on stream.
// Frontiers seed their initial index range through it.
func Sequence[T constraints.Integer](ctx *device.Context, stream *device.Stream, dst []T, start T) error {
	return Strided(ctx, stream, bulkParams, len(dst), func(i int, _ *Block) {
		dst[i] = start + T(i)
	})
}

// Copy copies src into dst in parallel on stream. The slices must have
// equal length and must not overlap; aliased copies belong to the caller's
// double-buffering discipline, not to this kernel.
func Copy[E any](ctx *device.Context, stream *device.Stream, dst, src []E) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	return Strided(ctx, stream, bulkParams, len(dst), func(i int, _ *Block) {
		dst[i] = src[i]
	})
}
