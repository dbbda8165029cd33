// Package msf defines the Graph interface, launch parameters, and sentinel
// errors for the minimum-spanning-forest computation.
package msf

import (
	"errors"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/launch"
)

// Sentinel errors for forest computation.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("msf: graph is nil")

	// ErrNilResult is returned when no output buffer is supplied.
	ErrNilResult = errors.New("msf: result buffer is nil")

	// ErrInvariant is returned when the super-vertex counter increases
	// between iterations, the detectable signature of the component-merge
	// race going wrong.
	ErrInvariant = errors.New("msf: super-vertex count increased")
)

// Graph is the read-only surface the algorithm consumes. Undirected edges
// must be presented as reciprocal arc pairs (u→v and v→u with equal
// weight); edgegraph.Graph satisfies this by construction.
type Graph interface {
	// VertexCount reports the size of the dense vertex range.
	VertexCount() int32

	// EdgeCount reports the number of arcs.
	EdgeCount() int32

	// SourceVertex returns the source endpoint of arc e.
	SourceVertex(e int32) int32

	// DestinationVertex returns the destination endpoint of arc e.
	DestinationVertex(e int32) int32

	// EdgeWeight returns the weight of arc e.
	EdgeWeight(e int32) float64
}

// noNeighbor is the "no canonical edge recorded" sentinel, ordered below
// every real edge id so the atomic-max election displaces it.
const noNeighbor int32 = -1

// kernelParams is the launch configuration for every msf kernel, resolved
// against the compile target at program start. On tuned targets the
// blocked kernel with two items per thread wins (declaration order is
// preference order); the portable fallback runs plain grid-stride.
var kernelParams = launch.NewBox("msf",
	launch.Params{Arch: device.AMD64 | device.ARM64, ThreadsPerBlock: 256, ItemsPerThread: 2},
	launch.Params{Arch: device.Any, ThreadsPerBlock: 128, ItemsPerThread: 1},
).Pick()
