// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build gc && !purego

package asm

import "unsafe"

// Available reports whether this package carries real instruction
// sequences for the target.
const Available = true

// Breakpoint executes INT3.
//
//go:nosplit
func Breakpoint()

// Trap executes UD2. The runtime treats the resulting SIGILL as fatal.
//
//go:nosplit
func Trap()

//go:nosplit
func prefetchT0(addr uintptr)

//go:nosplit
func prefetchT1(addr uintptr)

//go:nosplit
func prefetchT2(addr uintptr)

//go:nosplit
func prefetchNTA(addr uintptr)

//go:nosplit
func prefetchW(addr uintptr)

// PrefetchRead issues PREFETCHT0, T1, T2 or NTA for locality 3, 2, 1 or 0.
func PrefetchRead(addr uintptr, locality int) {
	switch locality {
	case 3:
		prefetchT0(addr)
	case 2:
		prefetchT1(addr)
	case 1:
		prefetchT2(addr)
	default:
		prefetchNTA(addr)
	}
}

// PrefetchWrite issues PREFETCHW. The instruction has no locality operand.
func PrefetchWrite(addr uintptr, locality int) {
	prefetchW(addr)
}

// StoreNT32 stores v to *p with MOVNTI.
//
//go:noescape
//go:nosplit
func StoreNT32(p unsafe.Pointer, v uint32)

// StoreNT64 stores v to *p with MOVNTI.
//
//go:noescape
//go:nosplit
func StoreNT64(p unsafe.Pointer, v uint64)

// StoreFence executes SFENCE.
//
//go:nosplit
func StoreFence()
