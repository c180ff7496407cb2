// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build gc && (arm || arm64 || mips || mipsle || mips64 || mips64le)

package asm

// DebugTrapNative is true when [DebugTrap] is written in assembly for the
// target. It does not depend on the purego tag.
const DebugTrapNative = true

// DebugTrap executes the architecture's debugger trap: BKPT on ARM,
// BRK #0xf000 on AArch64, BREAK on MIPS. The runtime's own breakpoint
// uses a different encoding on ARM and AArch64.
//
//go:nosplit
func DebugTrap()
