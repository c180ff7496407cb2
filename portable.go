// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

import "unsafe"

// Portable bodies are compiled in every configuration so the accelerated
// ones can be compared against them in the same test binary.

func disjointOrPortable[T Integer](a, b T) T {
	return a | b
}

// rawEqualPortable walks both byte views with a counted index and stops
// at the first mismatch.
func rawEqualPortable(a, b unsafe.Pointer, n uintptr) bool {
	for i := uintptr(0); i < n; i++ {
		if *(*byte)(unsafe.Add(a, i)) != *(*byte)(unsafe.Add(b, i)) {
			return false
		}
	}
	return true
}
