// Package launch defines the Params descriptor and the Box selector type.
package launch

import (
	"errors"

	"github.com/katalvlaran/horde/device"
)

// Sentinel errors for kernel launches.
var (
	// ErrNilOperation is returned when a kernel is launched without an
	// operation to apply.
	ErrNilOperation = errors.New("launch: nil operation")

	// ErrLengthMismatch is returned by Copy when dst and src differ in length.
	ErrLengthMismatch = errors.New("launch: destination and source lengths differ")
)

// Params is one launch-parameter descriptor: an immutable tuple fixing the
// shape of a kernel on the targets named by Arch. Descriptors are declared
// once per algorithm, grouped in a Box, and never mutated.
type Params struct {
	// Arch is the set of compile targets these parameters were tuned for.
	Arch device.Arch

	// ThreadsPerBlock is the number of logical threads one block executes.
	// Must be ≥ 1.
	ThreadsPerBlock int

	// ItemsPerThread is the number of stride-spaced items each thread
	// handles per grid-stride step. Must be ≥ 1; values > 1 select the
	// BlockedStrided kernel.
	ItemsPerThread int

	// SharedBytes is the per-block scratch allocation handed to the
	// operation through Block.Shared. May be zero.
	SharedBytes int
}

// valid reports whether the descriptor is well-formed.
func (p Params) valid() bool {
	return p.Arch != 0 && p.ThreadsPerBlock >= 1 && p.ItemsPerThread >= 1 && p.SharedBytes >= 0
}

// Box is an ordered set of candidate launch parameters for one algorithm.
// Construct with NewBox; resolve with Pick or Matches.
type Box struct {
	name   string
	params []Params
}

// NewBox creates a launch box named name over the given candidates.
// The name appears in the fatal diagnostic when no candidate matches the
// compile target.
func NewBox(name string, params ...Params) Box {
	return Box{name: name, params: params}
}

// Name returns the box's diagnostic name.
func (b Box) Name() string { return b.name }
