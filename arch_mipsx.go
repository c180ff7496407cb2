// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build mips || mipsle || mips64 || mips64le

package intrinsics

// TargetArch is the architecture class resolved for this build.
const TargetArch = ArchMIPS
