// Package enactor defines the Problem interface, driver options, and
// sentinel errors for the BSP loop.
package enactor

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/horde/frontier"
)

// Sentinel errors for enactor execution.
var (
	// ErrNilProblem is returned when Enact is given a nil problem.
	ErrNilProblem = errors.New("enactor: nil problem")

	// ErrNoConvergence is returned when the iteration guard fires before
	// the problem's convergence predicate holds.
	ErrNoConvergence = errors.New("enactor: failed to converge within the iteration limit")
)

// DefaultMaxIterations bounds a run unless WithMaxIterations overrides it.
// Frontier algorithms converge in O(log V) to O(V) iterations; a run
// approaching this bound is stuck, not slow.
const DefaultMaxIterations = 10_000

// Problem is the capability set an algorithm exposes to the driver.
// Implementations own their device-resident state arrays; the driver owns
// the frontier pair and the schedule.
type Problem[T constraints.Integer] interface {
	// Init allocates and seeds the problem's state. Called once, before
	// the first iteration.
	Init() error

	// PrepareFrontier seeds the initial active set into f.
	PrepareFrontier(f *frontier.Frontier[T]) error

	// Loop runs one iteration's operator sequence over the pair. The
	// iteration counter starts at zero. All launches must be issued on
	// the driver's stream so the closing barrier covers them.
	Loop(iteration int, fs *frontier.Pair[T]) error

	// IsConverged reports whether the run is complete. It is evaluated
	// only at iteration boundaries, after the barrier.
	IsConverged() bool
}

// Option configures an Enactor via functional arguments.
type Option func(*Options)

// Options holds driver parameters. Use DefaultOptions() as the baseline.
type Options struct {
	// MaxIterations is the iteration guard. Must be ≥ 1.
	MaxIterations int

	// Slot selects which device slot's stream carries the run.
	Slot int

	// Name tags the run in logs. Optional.
	Name string
}

// DefaultOptions returns the standard driver configuration:
// DefaultMaxIterations, slot 0, unnamed.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Slot:          0,
		Name:          "problem",
	}
}

// WithMaxIterations overrides the iteration guard. Values < 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxIterations = n
		}
	}
}

// WithSlot selects the device slot carrying the run.
func WithSlot(slot int) Option {
	return func(o *Options) {
		if slot >= 0 {
			o.Slot = slot
		}
	}
}

// WithName tags the run in log output.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}
