//go:build !amd64 && !arm64

package device

// target is the generation compiled into this binary.
const target = Scalar
