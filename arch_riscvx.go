// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build riscv64

package intrinsics

// TargetArch is the architecture class resolved for this build.
const TargetArch = ArchRISCV
