// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

// Breakpoint executes the debugger trap of the target architecture.
//
// The trap emitted is BreakpointTrap(TargetArch):
//
//	x86, x86-64  int3
//	ARM          bkpt
//	AArch64      brk #0xf000
//	RISC-V       ebreak
//	MIPS         break
//	other        nothing; Breakpoint returns
//
// Both paths emit the same instruction when built with gc. Other
// toolchains fall back to runtime.Breakpoint.
//
// Under a debugger the trap stops execution. Without one the Go runtime
// treats the trap signal as fatal and the process exits. The exact
// instruction is not part of the stable contract.
func Breakpoint() {
	breakpoint()
}
