package launch

import (
	"github.com/gomlx/exceptions"

	"github.com/katalvlaran/horde/device"
)

// MatchesFor returns, in declaration order, the candidates whose Arch mask
// intersects the generation mask m. The slice is freshly allocated; the
// box itself is never mutated.
func (b Box) MatchesFor(m device.Arch) []Params {
	matched := make([]Params, 0, len(b.params))
	for _, p := range b.params {
		if p.Arch.Matches(m) {
			matched = append(matched, p)
		}
	}

	return matched
}

// Matches returns the candidates valid for the compiled-in target.
func (b Box) Matches() []Params {
	return b.MatchesFor(device.Target())
}

// Pick resolves the box against the compiled-in target and returns the
// leading match.
//
// Pick panics (with a stack trace) when no candidate covers the target or
// when the chosen descriptor is malformed. Resolve boxes in package var
// blocks so a mis-targeted build dies at program start rather than deep
// inside a run:
//
//	var kernelParams = launch.NewBox("msf",
//		launch.Params{Arch: device.Any, ThreadsPerBlock: 256, ItemsPerThread: 1},
//	).Pick()
func (b Box) Pick() Params {
	matched := b.Matches()
	if len(matched) == 0 {
		exceptions.Panicf("launch: box %q has no launch parameters for target %s -- declare a descriptor whose Arch mask covers it", b.name, device.Target())
	}
	p := matched[0]
	if !p.valid() {
		exceptions.Panicf("launch: box %q selected malformed parameters %+v for target %s", b.name, p, device.Target())
	}

	return p
}
