// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build intrinsics_noassert

package intrinsics

// Assertions is false: precondition violations are not detected.
const Assertions = false
