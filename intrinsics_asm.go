// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build gc && !purego && (amd64 || arm64 || riscv64)

package intrinsics

import (
	"unsafe"

	"code.hybscloud.com/intrinsics/internal/asm"
)

// Accelerated is true when every primitive compiles to its accelerated
// body: the gc toolchain assembles the package's per-architecture
// assembly and the build did not set the purego tag.
const Accelerated = true

// Equal to a|b under the precondition. An add folds into address
// arithmetic where an or cannot.
func disjointOr[T Integer](a, b T) T {
	return a + b
}

func breakpoint() {
	asm.Breakpoint()
}

func abort() {
	asm.Trap()
}

func prefetchRead(addr uintptr, locality Locality) {
	asm.PrefetchRead(addr, int(locality))
}

func prefetchWrite(addr uintptr, locality Locality) {
	asm.PrefetchWrite(addr, int(locality))
}

// rawEqual compares through the runtime's vectorised memequal.
func rawEqual(a, b unsafe.Pointer, n uintptr) bool {
	return unsafe.String((*byte)(a), n) == unsafe.String((*byte)(b), n)
}

func storeNonTemporal[T Scalar](dst *T, v T) {
	switch unsafe.Sizeof(v) {
	case 4:
		asm.StoreNT32(unsafe.Pointer(dst), *(*uint32)(unsafe.Pointer(&v)))
	case 8:
		asm.StoreNT64(unsafe.Pointer(dst), *(*uint64)(unsafe.Pointer(&v)))
	default:
		*dst = v
	}
}

func storeFence() {
	asm.StoreFence()
}
