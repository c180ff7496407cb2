// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !intrinsics_noassert

package intrinsics

// Assertions reports whether contract preconditions that can be expressed
// as a predicate are checked at the call site.
//
// Enabled by default. Build with -tags intrinsics_noassert to turn the
// checks off; violations then become genuinely undefined.
const Assertions = true
