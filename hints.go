// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

// The gc compiler exposes no branch-weight or select intrinsics, so the
// hints below share one body across configurations. They never change a
// result.

// Likely returns b. It marks b as the expected outcome of a condition.
func Likely(b bool) bool {
	return b
}

// Unlikely returns b. It marks b as the unexpected outcome of a condition.
func Unlikely(b bool) bool {
	return b
}

// ColdPath marks the enclosing branch as rarely taken. It has no effect.
func ColdPath() {}

// Select returns a when cond is true and b otherwise.
//
// Both operands are always evaluated by the caller. Whether the choice
// compiles to a conditional move or a branch is up to the compiler.
func Select[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
