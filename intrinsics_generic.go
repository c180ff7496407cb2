// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !gc || purego || !(amd64 || arm64 || riscv64)

package intrinsics

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/intrinsics/internal/asm"
)

// Accelerated is false: every primitive compiles to its portable body.
// This is the case for toolchains other than gc, for architectures the
// package ships no assembly for, and for builds with -tags purego.
const Accelerated = false

func disjointOr[T Integer](a, b T) T {
	return disjointOrPortable(a, b)
}

func breakpoint() {
	if BreakpointTrap(TargetArch) == TrapNone {
		return
	}
	asm.DebugTrap()
}

func abort() {
	abortPortable()
}

func prefetchRead(uintptr, Locality) {}

func prefetchWrite(uintptr, Locality) {}

func rawEqual(a, b unsafe.Pointer, n uintptr) bool {
	return rawEqualPortable(a, b, n)
}

func storeNonTemporal[T Scalar](dst *T, v T) {
	*dst = v
}

var fenceWord atomix.Uint64

// An acquire-release RMW orders every earlier store before every later one.
func storeFence() {
	fenceWord.AddAcqRel(1)
}
