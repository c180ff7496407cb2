// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

import "fmt"

// Integer is the set of types [DisjointOr] accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Disjoint reports whether a and b share no set bit, the precondition of
// [DisjointOr]. Equivalently a|b == a+b.
func Disjoint[T Integer](a, b T) bool {
	return a&b == 0
}

// DisjointOr returns a|b for operands with no common set bit. Under that
// precondition the result also equals a+b.
//
// # Safety
//
// Requires Disjoint(a, b). With [Assertions] enabled (the default) a
// violation panics with a [*PreconditionError] on every configuration.
// Built with -tags intrinsics_noassert the violation is undefined: the
// result is unspecified (the accelerated body happens to return a+b, the
// portable body a|b) and callers must not depend on it.
func DisjointOr[T Integer](a, b T) T {
	if Assertions && a&b != 0 {
		panicOverlap("DisjointOr", uint64(a), uint64(b))
	}
	return disjointOr(a, b)
}

// panicOverlap stays out of line so DisjointOr remains inlinable. Signed
// operands are reported as their two's complement bit patterns.
//
//go:noinline
func panicOverlap(op string, a, b uint64) {
	panic(&PreconditionError{
		Op:     op,
		Detail: fmt.Sprintf("%#x & %#x != 0", a, b),
	})
}

// DisjointOrBool is [DisjointOr] for booleans: it returns a || b and
// requires that a and b are not both true.
func DisjointOrBool(a, b bool) bool {
	if Assertions && a && b {
		panic(&PreconditionError{Op: "DisjointOrBool", Detail: "both operands are true"})
	}
	return a || b
}
