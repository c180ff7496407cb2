// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

import "unsafe"

// RawEqual reports whether *a and *b have the same bit pattern over the
// full storage size of T. Any Equal method or == semantics of T are
// ignored: +0.0 and -0.0 differ, NaNs with equal bits are equal.
//
// Padding bytes are compared as stored; types with padding should be
// compared only when both values were fully zeroed before use.
func RawEqual[T any](a, b *T) bool {
	return rawEqual(unsafe.Pointer(a), unsafe.Pointer(b), unsafe.Sizeof(*a))
}
