// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build gc && !purego

package asm

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Available reports whether this package carries real instruction
// sequences for the target.
const Available = true

// Breakpoint executes EBREAK.
//
//go:nosplit
func Breakpoint()

// Trap executes the all-zero word, a defined illegal instruction.
// The runtime treats the resulting SIGILL as fatal.
//
//go:nosplit
func Trap()

// PrefetchRead is a no-op: the base ISA has no prefetch and Zicbop is not
// assumed.
func PrefetchRead(addr uintptr, locality int) {}

// PrefetchWrite is a no-op, see [PrefetchRead].
func PrefetchWrite(addr uintptr, locality int) {}

// StoreNT32 stores v to *p with an ordinary store.
func StoreNT32(p unsafe.Pointer, v uint32) {
	*(*uint32)(p) = v
}

// StoreNT64 stores v to *p with an ordinary store.
func StoreNT64(p unsafe.Pointer, v uint64) {
	*(*uint64)(p) = v
}

var fenceWord atomix.Uint64

// StoreFence orders earlier stores before later ones with an
// acquire-release RMW.
func StoreFence() {
	fenceWord.AddAcqRel(1)
}
