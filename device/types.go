// Package device defines the Arch target mask, Context options,
// and sentinel errors for the execution substrate.
package device

import (
	"errors"
	"runtime"
)

// Sentinel errors for device operations.
var (
	// ErrSlotRange is returned when a requested stream slot does not exist.
	ErrSlotRange = errors.New("device: stream slot out of range")

	// ErrClosed is returned when work is submitted to a closed Context.
	ErrClosed = errors.New("device: context is closed")
)

// Arch is a bit-flag set naming compute-target generations. A kernel's
// launch parameters carry an Arch mask declaring which generations they
// were tuned for; the generation actually compiled in is Target().
type Arch uint32

const (
	// Scalar is the portable baseline generation, used on any platform
	// without a dedicated tuning target.
	Scalar Arch = 1 << iota

	// AMD64 marks parameters tuned for amd64 builds.
	AMD64

	// ARM64 marks parameters tuned for arm64 builds.
	ARM64
)

// Any matches every known generation. Use it for launch parameters that
// carry no per-target tuning.
const Any = Scalar | AMD64 | ARM64

// Matches reports whether the mask shares at least one generation with m.
func (a Arch) Matches(m Arch) bool { return a&m != 0 }

// String returns a short name for a single-flag Arch, or "mixed" for
// multi-flag masks.
func (a Arch) String() string {
	switch a {
	case Scalar:
		return "scalar"
	case AMD64:
		return "amd64"
	case ARM64:
		return "arm64"
	default:
		return "mixed"
	}
}

// Target returns the generation this binary was compiled for.
// The value is a build-constraint-selected constant: the selection costs
// nothing at run time and cannot change after compilation.
func Target() Arch { return target }

// Option configures a Context via functional arguments.
type Option func(*Options)

// Options holds Context construction parameters.
// Use DefaultOptions() for the standard single-slot setup.
type Options struct {
	// Slots is the number of logical device slots (one Stream each).
	// Must be ≥ 1.
	Slots int

	// Workers is the per-kernel goroutine budget. Must be ≥ 1.
	// Defaults to runtime.NumCPU().
	Workers int
}

// DefaultOptions returns the canonical Context configuration:
// one slot, one worker per logical CPU.
func DefaultOptions() Options {
	return Options{
		Slots:   1,
		Workers: runtime.NumCPU(),
	}
}

// WithSlots sets the number of logical device slots. Values < 1 are ignored.
func WithSlots(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Slots = n
		}
	}
}

// WithWorkers caps the per-kernel goroutine budget. Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}
