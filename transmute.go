// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

import (
	"fmt"
	"unsafe"
)

// SameSize reports whether Dst and Src occupy the same number of bytes.
func SameSize[Dst, Src any]() bool {
	var (
		dst Dst
		src Src
	)
	return unsafe.Sizeof(dst) == unsafe.Sizeof(src)
}

// TransmuteUnchecked reinterprets the bytes of src as a Dst.
//
// Ownership of src moves into the call. No method of Src runs on the way
// out: the bytes now belong to the returned Dst, which takes over whatever
// release obligation they carried.
//
// # Safety
//
// The caller guarantees that Dst and Src have the same size and that every
// byte pattern of src is a valid Dst. Neither is checked. With mismatched
// sizes the result is unspecified and reads may go past src.
func TransmuteUnchecked[Dst, Src any](src Src) Dst {
	return *(*Dst)(unsafe.Pointer(&src))
}

// Transmute is [TransmuteUnchecked] with the size precondition enforced.
// It panics with a [*PreconditionError] when the sizes differ, regardless
// of [Assertions]. Representation compatibility remains the caller's
// responsibility.
func Transmute[Dst, Src any](src Src) Dst {
	var dst Dst
	if unsafe.Sizeof(dst) != unsafe.Sizeof(src) {
		panic(&PreconditionError{
			Op:     "Transmute",
			Detail: fmt.Sprintf("size %d != size %d", unsafe.Sizeof(dst), unsafe.Sizeof(src)),
		})
	}
	return *(*Dst)(unsafe.Pointer(&src))
}
