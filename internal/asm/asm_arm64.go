// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build gc && !purego

package asm

import "unsafe"

// Available reports whether this package carries real instruction
// sequences for the target.
const Available = true

// Breakpoint executes BRK #0xf000.
//
//go:nosplit
func Breakpoint()

// Trap executes UDF #0. The runtime treats the resulting SIGILL as fatal.
//
//go:nosplit
func Trap()

//go:nosplit
func pldl1keep(addr uintptr)

//go:nosplit
func pldl2keep(addr uintptr)

//go:nosplit
func pldl3keep(addr uintptr)

//go:nosplit
func pldl1strm(addr uintptr)

//go:nosplit
func pstl1keep(addr uintptr)

//go:nosplit
func pstl2keep(addr uintptr)

//go:nosplit
func pstl3keep(addr uintptr)

//go:nosplit
func pstl1strm(addr uintptr)

// PrefetchRead issues PRFM PLDL1KEEP, PLDL2KEEP, PLDL3KEEP or PLDL1STRM
// for locality 3, 2, 1 or 0.
func PrefetchRead(addr uintptr, locality int) {
	switch locality {
	case 3:
		pldl1keep(addr)
	case 2:
		pldl2keep(addr)
	case 1:
		pldl3keep(addr)
	default:
		pldl1strm(addr)
	}
}

// PrefetchWrite issues the PST counterpart of [PrefetchRead].
func PrefetchWrite(addr uintptr, locality int) {
	switch locality {
	case 3:
		pstl1keep(addr)
	case 2:
		pstl2keep(addr)
	case 1:
		pstl3keep(addr)
	default:
		pstl1strm(addr)
	}
}

// StoreNT32 stores v to *p. STNP needs a register pair and gives no
// benefit for a single word, so this is an ordinary store.
func StoreNT32(p unsafe.Pointer, v uint32) {
	*(*uint32)(p) = v
}

// StoreNT64 stores v to *p with an ordinary store.
func StoreNT64(p unsafe.Pointer, v uint64) {
	*(*uint64)(p) = v
}

// StoreFence executes DMB ISHST.
//
//go:nosplit
func StoreFence()
