// Package operator defines the predicate/apply signatures and sentinel
// errors shared by the parallel primitives.
package operator

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/horde/launch"
)

// Sentinel errors for operator execution.
var (
	// ErrNilOperation is returned when Filter or ParallelFor is invoked
	// without a predicate/operation.
	ErrNilOperation = errors.New("operator: nil operation")

	// ErrCapacity is returned when the output frontier cannot hold the
	// input frontier's worst-case survivor count.
	ErrCapacity = errors.New("operator: output frontier capacity too small")
)

// Predicate decides whether element e stays in the frontier. It runs
// concurrently with every other element of the launch; writes to shared
// state inside a predicate must go through the atomics package.
//
// Algorithms should implement predicates as methods on small named structs
// whose fields enumerate the captured state, keeping the shared-mutable
// surface visible at the type level.
type Predicate[T constraints.Integer] func(e T, blk *launch.Block) bool

// Apply is the side-effecting per-element operation ParallelFor runs.
// The same concurrency rules as Predicate apply.
type Apply[T constraints.Integer] func(e T, blk *launch.Block)
