// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package intrinsics provides low-level compiler hints and machine
// primitives with a portable fallback for every one of them.
//
// Each primitive has two paths selected at build time. The accelerated
// path uses hand-written assembly from internal/asm or a cheaper
// arithmetic form; the portable path is plain Go with the same observable
// contract. [Accelerated] reports which one was compiled in.
//
// # Quick Start
//
//	flags := intrinsics.DisjointOr(uint16(0x3000), uint16(0x002a)) // 0x302a
//
//	if intrinsics.RawEqual(&hdrA, &hdrB) {
//	    // byte-identical, including padding
//	}
//
//	intrinsics.PrefetchReadData(uintptr(unsafe.Pointer(&table[next])), intrinsics.LocalityHigh)
//
//	for i := range out {
//	    intrinsics.StoreNonTemporal(&out[i], v)
//	}
//	intrinsics.StoreFence()
//
// # Build Configuration
//
// The configuration is a set of constants fixed by build tags:
//
//	Accelerated  gc && !purego && (amd64 || arm64 || riscv64)
//	Assertions   true unless built with -tags intrinsics_noassert
//	TargetArch   instruction set class of GOARCH
//	RaceEnabled  true under -race
//
// Force the portable path on any target with:
//
//	go build -tags purego ./...
//
// [Config] returns the resolved configuration as a value that can be
// printed or serialized; cmd/intrinsics does exactly that.
//
// # Primitives
//
// Hints:
//
//	Likely(b), Unlikely(b)   return b unchanged
//	ColdPath()               marks an unlikely branch; no effect
//	Select(c, a, b)          a if c, else b; both operands evaluated
//
// Bit arithmetic:
//
//	Disjoint(a, b)           a & b == 0
//	DisjointOr(a, b)         a | b, requires Disjoint(a, b)
//	DisjointOrBool(a, b)     a || b, requires !(a && b)
//
// Memory:
//
//	PrefetchReadData, PrefetchWriteData     cache hints; never fault
//	StoreNonTemporal(dst, v), StoreFence()  streaming stores and their fence
//	RawEqual(a, b)                          bytewise equality of two values
//	Transmute, TransmuteUnchecked           bit reinterpretation between types
//
// Process:
//
//	Breakpoint()   debugger trap on a known architecture, no-op elsewhere
//	Abort()        terminates the process without unwinding
//
// # Safety Contracts
//
// DisjointOr and DisjointOrBool require operands without common set bits.
// With [Assertions] enabled (the default) a violation panics with a
// [*PreconditionError] wrapping [ErrPrecondition]:
//
//	if intrinsics.IsPrecondition(err) {
//	    // caller bug
//	}
//
// Built with -tags intrinsics_noassert a violation is undefined: the
// result is unspecified and callers must not depend on it.
//
// Transmute checks that both types have the same size in every
// configuration, independent of [Assertions]. TransmuteUnchecked never
// checks.
//
// StoreNonTemporal only accepts pointer-free [Scalar] types because a
// streaming store bypasses the garbage collector's write barrier. Stores
// made with it are ordered with respect to other stores only after
// StoreFence.
//
// Abort does not run deferred calls and cannot be recovered. Breakpoint
// kills a process that has no debugger attached on x86, ARM, AArch64,
// RISC-V and MIPS; see [BreakpointTrap] for the instruction used. The
// trap is the same on both paths: purego selects portable Go bodies for
// the other primitives but keeps the breakpoint instruction.
//
// # Conformance
//
// Package conformance checks the contract above for whichever path was
// built. Run it under both configurations:
//
//	go test ./...
//	go test -tags purego ./...
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for ordered atomics in
// the portable fence and the abort fallback, [code.hybscloud.com/iox] for
// backoff while a detached abort takes effect, and [golang.org/x/sys/unix]
// to raise SIGABRT.
package intrinsics
