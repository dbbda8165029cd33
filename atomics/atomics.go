package atomics

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// MinFloat64 atomically stores min(*addr, val) into *addr and returns the
// previous value. The element is CASed through its bit pattern; the loop
// exits as soon as the resident value is already ≤ val.
//
// NaN values are not supported: algorithm weights are required to be
// ordered, and a NaN would stall the comparison below.
func MinFloat64(addr *float64, val float64) float64 {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		oldBits := atomic.LoadUint64(bits)
		old := math.Float64frombits(oldBits)
		if old <= val {
			return old
		}
		if atomic.CompareAndSwapUint64(bits, oldBits, math.Float64bits(val)) {
			return old
		}
	}
}

// AddFloat64 atomically adds delta to *addr and returns the previous value.
func AddFloat64(addr *float64, delta float64) float64 {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		oldBits := atomic.LoadUint64(bits)
		old := math.Float64frombits(oldBits)
		if atomic.CompareAndSwapUint64(bits, oldBits, math.Float64bits(old+delta)) {
			return old
		}
	}
}

// MaxInt32 atomically stores max(*addr, val) into *addr and returns the
// previous value. Used for the canonical-edge tie break: the caller learns
// whether val displaced a smaller occupant.
func MaxInt32(addr *int32, val int32) int32 {
	for {
		old := atomic.LoadInt32(addr)
		if old >= val {
			return old
		}
		if atomic.CompareAndSwapInt32(addr, old, val) {
			return old
		}
	}
}

// MinInt32 atomically stores min(*addr, val) into *addr and returns the
// previous value.
func MinInt32(addr *int32, val int32) int32 {
	for {
		old := atomic.LoadInt32(addr)
		if old <= val {
			return old
		}
		if atomic.CompareAndSwapInt32(addr, old, val) {
			return old
		}
	}
}

// AddInt64 atomically adds delta to *addr and returns the previous value.
// Pass a negative delta to decrement (the super-vertex counter does).
func AddInt64(addr *int64, delta int64) int64 {
	return atomic.AddInt64(addr, delta) - delta
}

// SwapInt32 atomically stores val into *addr and returns the previous value.
func SwapInt32(addr *int32, val int32) int32 {
	return atomic.SwapInt32(addr, val)
}

// LoadInt32 atomically reads *addr. Provided so call sites that need a
// synchronized read next to their atomic writes stay within one vocabulary.
func LoadInt32(addr *int32) int32 { return atomic.LoadInt32(addr) }

// LoadInt64 atomically reads *addr.
func LoadInt64(addr *int64) int64 { return atomic.LoadInt64(addr) }
