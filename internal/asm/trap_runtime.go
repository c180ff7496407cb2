// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !gc || !(arm || arm64 || mips || mipsle || mips64 || mips64le)

package asm

import "runtime"

// DebugTrapNative is false: [DebugTrap] delegates to the runtime.
const DebugTrapNative = false

// DebugTrap executes runtime.Breakpoint, which is INT3 on x86 and EBREAK
// on RISC-V.
func DebugTrap() {
	runtime.Breakpoint()
}
