// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

// Scalar is the set of pointer-free types [StoreNonTemporal] accepts.
// Pointer-carrying types are excluded because the streaming store does not
// go through the garbage collector's write barrier.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// StoreNonTemporal writes v to *dst with a hint that the cache line should
// not be retained.
//
// On amd64 with [Accelerated], 4 and 8 byte values use MOVNTI. Every other
// size and target performs an ordinary store: the hint is lost, the value
// is still written.
//
// Streaming stores are weakly ordered. Call [StoreFence] before publishing
// the written memory to another goroutine.
//
// # Safety
//
// dst must be valid for a write of T.
func StoreNonTemporal[T Scalar](dst *T, v T) {
	storeNonTemporal(dst, v)
}

// StoreFence orders every preceding store, streaming or not, before any
// following store.
func StoreFence() {
	storeFence()
}
