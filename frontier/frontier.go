package frontier

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/launch"
)

// Frontier is a fixed-capacity ordered buffer of element ids with a
// mutable logical size. Allocation happens once, at construction; a run
// never resizes its frontiers.
type Frontier[T constraints.Integer] struct {
	data []T
	size int
}

// New allocates a frontier able to hold up to capacity elements.
// The logical size starts at zero. Complexity: O(capacity) for the
// backing allocation.
func New[T constraints.Integer](capacity int) *Frontier[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier[T]{data: make([]T, capacity)}
}

// Len reports the current logical size.
func (f *Frontier[T]) Len() int { return f.size }

// Cap reports the allocated capacity.
func (f *Frontier[T]) Cap() int { return len(f.data) }

// Slice returns the active prefix. The slice aliases the frontier's
// backing store; it is valid until the next mutating kernel touches the
// frontier.
func (f *Frontier[T]) Slice() []T { return f.data[:f.size] }

// Raw returns the full backing store, active or not. Compaction kernels
// write winner elements through Raw and publish the result with SetLen.
func (f *Frontier[T]) Raw() []T { return f.data }

// SetLen publishes a new logical size, typically after a compaction pass
// wrote the first n slots of Raw.
func (f *Frontier[T]) SetLen(n int) error {
	if n < 0 {
		return ErrNegativeLen
	}
	if n > len(f.data) {
		return ErrCapacity
	}
	f.size = n

	return nil
}

// Clear drops the active set without touching the backing store.
func (f *Frontier[T]) Clear() { f.size = 0 }

// Sequence seeds the frontier with the n consecutive ids start, start+1, …
// using a parallel fill on stream, and sets the logical size to n.
// The size takes effect immediately; the contents are valid after the next
// stream barrier.
func (f *Frontier[T]) Sequence(ctx *device.Context, stream *device.Stream, start T, n int) error {
	if n < 0 {
		return ErrNegativeLen
	}
	if n > len(f.data) {
		return ErrCapacity
	}
	f.size = n

	return launch.Sequence(ctx, stream, f.data[:n], start)
}

// Pair is the double-buffered in/out frontier a run iterates with.
type Pair[T constraints.Integer] struct {
	// In is read by the next compaction pass.
	In *Frontier[T]

	// Out receives the surviving elements of the next compaction pass.
	Out *Frontier[T]
}

// NewPair allocates both sides at the same capacity.
func NewPair[T constraints.Integer](capacity int) *Pair[T] {
	return &Pair[T]{In: New[T](capacity), Out: New[T](capacity)}
}

// Swap exchanges the in and out roles.
func (p *Pair[T]) Swap() { p.In, p.Out = p.Out, p.In }
