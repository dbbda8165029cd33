//go:build arm64

package device

// target is the generation compiled into this binary.
const target = ARM64
