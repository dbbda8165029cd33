//go:build amd64

package device

// target is the generation compiled into this binary.
const target = AMD64
