// Package ccomp defines the Graph interface, launch parameters, and
// sentinel errors for component labeling.
package ccomp

import (
	"errors"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/launch"
)

// Sentinel errors for component labeling.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("ccomp: graph is nil")

	// ErrLabelSize is returned when the label buffer is smaller than the
	// vertex range.
	ErrLabelSize = errors.New("ccomp: label buffer smaller than vertex count")
)

// Graph is the read-only surface component labeling consumes. Weights are
// not needed; any edge direction works, since hooking treats arcs
// symmetrically.
type Graph interface {
	// VertexCount reports the size of the dense vertex range.
	VertexCount() int32

	// EdgeCount reports the number of arcs.
	EdgeCount() int32

	// SourceVertex returns the source endpoint of arc e.
	SourceVertex(e int32) int32

	// DestinationVertex returns the destination endpoint of arc e.
	DestinationVertex(e int32) int32
}

// kernelParams is resolved once at program start; labeling is light on
// per-thread state, so one portable descriptor is declared.
var kernelParams = launch.NewBox("ccomp",
	launch.Params{Arch: device.Any, ThreadsPerBlock: 256, ItemsPerThread: 1},
).Pick()
