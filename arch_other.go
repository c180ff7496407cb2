// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !386 && !amd64 && !arm && !arm64 && !riscv64 && !mips && !mipsle && !mips64 && !mips64le

package intrinsics

// TargetArch is ArchOther on architectures without a known breakpoint trap.
// Breakpoint is a no-op here.
const TargetArch = ArchOther
