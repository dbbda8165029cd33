package launch

import (
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/horde/device"
)

// Block identifies the block executing an operation and carries the
// block's shared scratch memory. The same Block value is visible to every
// thread of the block; threads of one block run sequentially, so scratch
// use needs no synchronization.
type Block struct {
	// ID is the block's index within the launched grid.
	ID int

	// Shared is the per-block scratch allocation, sized by
	// Params.SharedBytes. Nil when SharedBytes is zero.
	Shared []byte
}

// Operation is the per-element body a kernel applies: it receives the
// element index and the owning block. Any further state the body needs is
// carried in the operation value itself (operators declare named structs
// with explicit captured fields rather than anonymous closures, keeping the
// shared-mutable surface auditable).
type Operation[T constraints.Integer] func(i T, blk *Block)

// gridFor sizes the resident grid for one launch: enough blocks to give
// every worker a block, shrunk by ItemsPerThread (the launch bound: heavier
// threads, narrower grid) and clamped so the grid never exceeds the bound.
func gridFor[T constraints.Integer](ctx *device.Context, p Params, bound T) (blocks, stride int) {
	blocks = ctx.Workers() / p.ItemsPerThread
	if blocks < 1 {
		blocks = 1
	}
	if worst := (int(bound) + p.ThreadsPerBlock - 1) / p.ThreadsPerBlock; blocks > worst {
		blocks = worst
	}
	stride = blocks * p.ThreadsPerBlock

	return blocks, stride
}

// Strided applies op to every index in [0, bound) with a grid-stride loop:
// thread g visits g, g+stride, g+2*stride, … one item per step. The launch
// is submitted to stream as a single in-order task; it completes before any
// later submission to the same stream begins.
//
// Complexity: O(bound) work spread over min(Workers/ItemsPerThread, blocks)
// resident goroutines.
func Strided[T constraints.Integer](ctx *device.Context, stream *device.Stream, p Params, bound T, op Operation[T]) error {
	if op == nil {
		return ErrNilOperation
	}
	if bound <= 0 {
		return nil
	}
	blocks, stride := gridFor(ctx, p, bound)

	return stream.Submit(func() {
		var wg sync.WaitGroup
		wg.Add(blocks)
		for b := 0; b < blocks; b++ {
			go func(blockID int) {
				defer wg.Done()
				blk := &Block{ID: blockID}
				if p.SharedBytes > 0 {
					blk.Shared = make([]byte, p.SharedBytes)
				}
				// Threads of one block execute sequentially on the block
				// goroutine; each walks its own grid-stride chain.
				base := blockID * p.ThreadsPerBlock
				for t := 0; t < p.ThreadsPerBlock; t++ {
					for i := T(base + t); i < bound; i += T(stride) {
						op(i, blk)
					}
				}
			}(b)
		}
		wg.Wait()
	})
}

// BlockedStrided is the ItemsPerThread > 1 variant of Strided: each
// grid-stride step handles ItemsPerThread stride-spaced offsets per thread,
// so threads advance by stride*ItemsPerThread between steps. Offsets past
// bound are skipped.
func BlockedStrided[T constraints.Integer](ctx *device.Context, stream *device.Stream, p Params, bound T, op Operation[T]) error {
	if op == nil {
		return ErrNilOperation
	}
	if bound <= 0 {
		return nil
	}
	blocks, stride := gridFor(ctx, p, bound)
	leap := T(stride * p.ItemsPerThread)

	return stream.Submit(func() {
		var wg sync.WaitGroup
		wg.Add(blocks)
		for b := 0; b < blocks; b++ {
			go func(blockID int) {
				defer wg.Done()
				blk := &Block{ID: blockID}
				if p.SharedBytes > 0 {
					blk.Shared = make([]byte, p.SharedBytes)
				}
				base := blockID * p.ThreadsPerBlock
				for t := 0; t < p.ThreadsPerBlock; t++ {
					for i := T(base + t); i < bound; i += leap {
						for j := 0; j < p.ItemsPerThread; j++ {
							if idx := i + T(stride*j); idx < bound {
								op(idx, blk)
							}
						}
					}
				}
			}(b)
		}
		wg.Wait()
	})
}

// Launch dispatches to Strided or BlockedStrided according to
// ItemsPerThread, so operators stay agnostic of which kernel shape the
// selected descriptor asks for.
func Launch[T constraints.Integer](ctx *device.Context, stream *device.Stream, p Params, bound T, op Operation[T]) error {
	if p.ItemsPerThread > 1 {
		return BlockedStrided(ctx, stream, p, bound, op)
	}

	return Strided(ctx, stream, p, bound, op)
}
