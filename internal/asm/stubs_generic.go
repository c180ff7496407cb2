// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !gc || purego || !(amd64 || arm64 || riscv64)

package asm

import "unsafe"

// Available is false: the parent package uses its portable bodies and
// never calls into this package.
const Available = false

// Stubs for unsupported configurations. They panic if reached.

func Breakpoint()                          { panic("asm: not available") }
func Trap()                                { panic("asm: not available") }
func PrefetchRead(addr uintptr, l int)     { panic("asm: not available") }
func PrefetchWrite(addr uintptr, l int)    { panic("asm: not available") }
func StoreNT32(p unsafe.Pointer, v uint32) { panic("asm: not available") }
func StoreNT64(p unsafe.Pointer, v uint64) { panic("asm: not available") }
func StoreFence()                          { panic("asm: not available") }
