// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

// Locality is the temporal locality hint of a prefetch, from
// [LocalityNone] (use once, do not pollute caches) to [LocalityHigh]
// (keep in every cache level).
type Locality uint8

const (
	LocalityNone Locality = iota
	LocalityLow
	LocalityMedium
	LocalityHigh
)

// Prefetch addresses are uintptr rather than unsafe.Pointer: the hint
// tolerates any address, and an arbitrary integer must never be held in a
// pointer the garbage collector scans. No variant dereferences addr.

// PrefetchReadData hints that the data at addr will be read soon.
// A no-op without [Accelerated].
func PrefetchReadData(addr uintptr, locality Locality) {
	prefetchRead(addr, min(locality, LocalityHigh))
}

// PrefetchWriteData hints that the data at addr will be written soon.
// A no-op without [Accelerated].
func PrefetchWriteData(addr uintptr, locality Locality) {
	prefetchWrite(addr, min(locality, LocalityHigh))
}

// PrefetchReadInstruction hints that code at addr will be executed soon.
// No supported target has a usable instruction prefetch from user code;
// the hint is dropped in every configuration.
func PrefetchReadInstruction(addr uintptr, locality Locality) {}

// PrefetchWriteInstruction is accepted for symmetry and always dropped.
func PrefetchWriteInstruction(addr uintptr, locality Locality) {}
