// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics_test

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"testing"
	"unsafe"

	"code.hybscloud.com/intrinsics"
	"code.hybscloud.com/intrinsics/internal/asm"
)

// =============================================================================
// Configuration
// =============================================================================

// TestCapabilityConsistency verifies that the package and its assembly
// resolved the same capability flag.
func TestCapabilityConsistency(t *testing.T) {
	if asm.Available != intrinsics.Accelerated {
		t.Fatalf("asm.Available: got %v, want %v", asm.Available, intrinsics.Accelerated)
	}
	if intrinsics.Accelerated && runtime.Compiler != "gc" {
		t.Fatalf("Accelerated with compiler %q", runtime.Compiler)
	}
}

func TestConfig(t *testing.T) {
	c := intrinsics.Config()
	if c.Accelerated != intrinsics.Accelerated {
		t.Fatalf("Accelerated: got %v, want %v", c.Accelerated, intrinsics.Accelerated)
	}
	if c.Assertions != intrinsics.Assertions {
		t.Fatalf("Assertions: got %v, want %v", c.Assertions, intrinsics.Assertions)
	}
	if c.GOARCH != runtime.GOARCH || c.GOOS != runtime.GOOS {
		t.Fatalf("target: got %s/%s, want %s/%s", c.GOOS, c.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if c.Arch != intrinsics.TargetArch.String() {
		t.Fatalf("Arch: got %q, want %q", c.Arch, intrinsics.TargetArch)
	}
}

// archClasses maps every GOARCH with a known trap to its class. Any other
// GOARCH resolves to ArchOther.
var archClasses = map[string]intrinsics.Arch{
	"386":      intrinsics.ArchX86,
	"amd64":    intrinsics.ArchX86,
	"arm":      intrinsics.ArchARM,
	"arm64":    intrinsics.ArchARM64,
	"riscv64":  intrinsics.ArchRISCV,
	"mips":     intrinsics.ArchMIPS,
	"mipsle":   intrinsics.ArchMIPS,
	"mips64":   intrinsics.ArchMIPS,
	"mips64le": intrinsics.ArchMIPS,
}

func archClass(goarch string) intrinsics.Arch {
	if a, ok := archClasses[goarch]; ok {
		return a
	}
	return intrinsics.ArchOther
}

func TestTargetArch(t *testing.T) {
	arch := archClass(runtime.GOARCH)
	if intrinsics.TargetArch != arch {
		t.Fatalf("TargetArch on %s: got %v, want %v", runtime.GOARCH, intrinsics.TargetArch, arch)
	}
}

// =============================================================================
// Architecture Fallback Selector
// =============================================================================

func TestBreakpointTrap(t *testing.T) {
	tests := []struct {
		arch     intrinsics.Arch
		trap     intrinsics.Trap
		mnemonic string
	}{
		{intrinsics.ArchX86, intrinsics.TrapInt3, "int3"},
		{intrinsics.ArchARM, intrinsics.TrapBkpt, "bkpt"},
		{intrinsics.ArchARM64, intrinsics.TrapBrk, "brk #0xf000"},
		{intrinsics.ArchRISCV, intrinsics.TrapEbreak, "ebreak"},
		{intrinsics.ArchMIPS, intrinsics.TrapBreak, "break"},
		{intrinsics.ArchOther, intrinsics.TrapNone, "none"},
		{intrinsics.Arch(99), intrinsics.TrapNone, "none"},
	}
	for _, tt := range tests {
		got := intrinsics.BreakpointTrap(tt.arch)
		if got != tt.trap {
			t.Fatalf("BreakpointTrap(%v): got %v, want %v", tt.arch, got, tt.trap)
		}
		if got.String() != tt.mnemonic {
			t.Fatalf("Trap(%d).String(): got %q, want %q", got, got.String(), tt.mnemonic)
		}
	}
	if s := intrinsics.Arch(99).String(); s != "other" {
		t.Fatalf("Arch(99).String(): got %q, want other", s)
	}
}

// TestBreakpointOther only runs where Breakpoint is a no-op; elsewhere the
// trap would end the test binary and is covered by the conformance probes.
func TestBreakpointOther(t *testing.T) {
	if intrinsics.BreakpointTrap(intrinsics.TargetArch) != intrinsics.TrapNone {
		t.Skipf("Breakpoint traps on %v", intrinsics.TargetArch)
	}
	intrinsics.Breakpoint()
}

// =============================================================================
// Disjoint Or
// =============================================================================

func TestDisjointOrScenario(t *testing.T) {
	got := intrinsics.DisjointOr(uint8(0b0101), uint8(0b1010))
	if got != 0b1111 {
		t.Fatalf("DisjointOr(0b0101, 0b1010): got %#b, want 0b1111", got)
	}
}

func TestDisjointOrEqualsSum(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			if a&b != 0 {
				continue
			}
			x, y := uint8(a), uint8(b)
			got := intrinsics.DisjointOr(x, y)
			if got != x|y || got != x+y {
				t.Fatalf("DisjointOr(%#x, %#x): got %#x, want %#x", x, y, got, x|y)
			}
		}
	}

	wide := []struct{ a, b uint64 }{
		{0, 0},
		{1 << 63, 1},
		{0xFFFF_0000_FFFF_0000, 0x0000_FFFF_0000_FFFF},
		{0xAAAA_AAAA_AAAA_AAAA, 0x5555_5555_5555_5555},
	}
	for _, w := range wide {
		if got := intrinsics.DisjointOr(w.a, w.b); got != w.a|w.b || got != w.a+w.b {
			t.Fatalf("DisjointOr(%#x, %#x): got %#x, want %#x", w.a, w.b, got, w.a|w.b)
		}
	}

	if got := intrinsics.DisjointOr(int8(math.MinInt8), int8(math.MaxInt8)); got != -1 {
		t.Fatalf("DisjointOr(MinInt8, MaxInt8): got %d, want -1", got)
	}
}

type flags uint16

func TestDisjointOrNamedType(t *testing.T) {
	const (
		read  flags = 1 << 0
		write flags = 1 << 1
		exec  flags = 1 << 2
	)
	got := intrinsics.DisjointOr(intrinsics.DisjointOr(read, write), exec)
	if got != read|write|exec {
		t.Fatalf("DisjointOr(read, write, exec): got %#b, want %#b", got, read|write|exec)
	}
}

func TestDisjointOrBool(t *testing.T) {
	if intrinsics.DisjointOrBool(false, false) {
		t.Fatalf("DisjointOrBool(false, false): got true")
	}
	if !intrinsics.DisjointOrBool(true, false) || !intrinsics.DisjointOrBool(false, true) {
		t.Fatalf("DisjointOrBool with one true operand: got false")
	}
}

func TestDisjointOrViolation(t *testing.T) {
	if !intrinsics.Assertions {
		t.Skip("assertions disabled")
	}

	err := recoverError(func() { intrinsics.DisjointOr(uint8(3), uint8(6)) })
	if !errors.Is(err, intrinsics.ErrPrecondition) {
		t.Fatalf("DisjointOr(3, 6): got %v, want ErrPrecondition", err)
	}
	var perr *intrinsics.PreconditionError
	if !errors.As(err, &perr) || perr.Op != "DisjointOr" {
		t.Fatalf("errors.As: got %+v, want Op DisjointOr", perr)
	}
	if !strings.Contains(err.Error(), "0x3 & 0x6") {
		t.Fatalf("message: got %q", err.Error())
	}
}

func TestDisjointOrViolationSigned(t *testing.T) {
	if !intrinsics.Assertions {
		t.Skip("assertions disabled")
	}
	err := recoverError(func() { intrinsics.DisjointOr(int8(-1), int8(1)) })
	var perr *intrinsics.PreconditionError
	if !errors.As(err, &perr) {
		t.Fatalf("DisjointOr(-1, 1): got %v, want *PreconditionError", err)
	}
	if perr.Detail != "0xffffffffffffffff & 0x1 != 0" {
		t.Fatalf("Detail: got %q", perr.Detail)
	}
}

func TestDisjointOrNoAllocs(t *testing.T) {
	a, b := uint64(0xff00), uint64(0x00ff)
	allocs := testing.AllocsPerRun(100, func() {
		a = intrinsics.DisjointOr(a&0xff00, b)
	})
	if allocs != 0 {
		t.Fatalf("allocs: got %v, want 0", allocs)
	}
}

func TestDisjointOrBoolViolation(t *testing.T) {
	if !intrinsics.Assertions {
		t.Skip("assertions disabled")
	}
	err := recoverError(func() { intrinsics.DisjointOrBool(true, true) })
	if !intrinsics.IsPrecondition(err) {
		t.Fatalf("DisjointOrBool(true, true): got %v, want precondition error", err)
	}
}

// recoverError runs f and returns the error it panicked with, if any.
func recoverError(f func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			if e, ok := v.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %v", v)
		}
	}()
	f()
	return nil
}

func TestDisjoint(t *testing.T) {
	if !intrinsics.Disjoint(0b1000, 0b0111) {
		t.Fatalf("Disjoint(0b1000, 0b0111): got false")
	}
	if intrinsics.Disjoint(0b1100, 0b0110) {
		t.Fatalf("Disjoint(0b1100, 0b0110): got true")
	}
}

// =============================================================================
// Transmute
// =============================================================================

// srcEnum panics if its cleanup runs.
type srcEnum uint8

func (srcEnum) Close() error { panic("srcEnum cleanup ran") }

type dstEnum uint8

const (
	dst0 dstEnum = 0
	dst1 dstEnum = 1
	dst2 dstEnum = 2
)

func TestTransmuteUncheckedEnum(t *testing.T) {
	want := []dstEnum{dst0, dst1, dst2}
	for i, src := range []srcEnum{0, 1, 2} {
		checked := intrinsics.Transmute[dstEnum](src)
		unchecked := intrinsics.TransmuteUnchecked[dstEnum](src)
		if checked != want[i] || unchecked != want[i] {
			t.Fatalf("transmute(%d): checked %d unchecked %d, want %d", src, checked, unchecked, want[i])
		}
	}
}

func TestTransmuteUncheckedStruct(t *testing.T) {
	type pair struct{ lo, hi uint32 }
	got := intrinsics.TransmuteUnchecked[[8]byte](pair{lo: 0x04030201, hi: 0x08070605})
	var want [8]byte
	*(*pair)(unsafe.Pointer(&want)) = pair{lo: 0x04030201, hi: 0x08070605}
	if got != want {
		t.Fatalf("TransmuteUnchecked(pair): got %v, want %v", got, want)
	}
}

func TestTransmuteSizeMismatch(t *testing.T) {
	if intrinsics.SameSize[uint32, uint16]() {
		t.Fatalf("SameSize[uint32, uint16]: got true")
	}
	if !intrinsics.SameSize[float64, uint64]() {
		t.Fatalf("SameSize[float64, uint64]: got false")
	}
	// Checked regardless of Assertions.
	err := recoverError(func() { intrinsics.Transmute[uint32](uint16(1)) })
	if !intrinsics.IsPrecondition(err) {
		t.Fatalf("Transmute[uint32](uint16): got %v, want precondition error", err)
	}
}

// =============================================================================
// Raw Equality
// =============================================================================

type bytePair struct{ v [2]uint8 }

func TestRawEqualScenario(t *testing.T) {
	a := bytePair{[2]uint8{1, 2}}
	b := bytePair{[2]uint8{1, 2}}
	c := bytePair{[2]uint8{1, 3}}
	eqAB, eqAC := intrinsics.RawEqual(&a, &b), intrinsics.RawEqual(&a, &c)
	runtime.KeepAlive(&a)
	runtime.KeepAlive(&b)
	runtime.KeepAlive(&c)

	if !eqAB {
		t.Fatalf("RawEqual({1,2}, {1,2}): got false, want true")
	}
	if eqAC {
		t.Fatalf("RawEqual({1,2}, {1,3}): got true, want false")
	}
}

func TestRawEqualSizes(t *testing.T) {
	checkRawEqualArray[[1]byte](t)
	checkRawEqualArray[[2]byte](t)
	checkRawEqualArray[[3]byte](t)
	checkRawEqualArray[[7]byte](t)
	checkRawEqualArray[[8]byte](t)
	checkRawEqualArray[[15]byte](t)
	checkRawEqualArray[[16]byte](t)
	checkRawEqualArray[[17]byte](t)
	checkRawEqualArray[[31]byte](t)
	checkRawEqualArray[[32]byte](t)
	checkRawEqualArray[[33]byte](t)
	checkRawEqualArray[[63]byte](t)
	checkRawEqualArray[[64]byte](t)
	checkRawEqualArray[[65]byte](t)
	checkRawEqualArray[[129]byte](t)
	checkRawEqualArray[[4][3]uint16](t)
}

// checkRawEqualArray flips every byte of a copy in turn and expects RawEqual
// to notice each flip and nothing past the end of A.
func checkRawEqualArray[A any](t *testing.T) {
	t.Helper()
	var a, b A
	n := int(unsafe.Sizeof(a))
	ab := unsafe.Slice((*byte)(unsafe.Pointer(&a)), n)
	bb := unsafe.Slice((*byte)(unsafe.Pointer(&b)), n)
	for i := range ab {
		ab[i] = byte(i*31 + 7)
	}
	copy(bb, ab)

	if !intrinsics.RawEqual(&a, &b) {
		t.Fatalf("%T: equal values reported different", a)
	}
	for i := range bb {
		bb[i] ^= 0x01
		if intrinsics.RawEqual(&a, &b) {
			t.Fatalf("%T: byte %d differs, reported equal", a, i)
		}
		bb[i] ^= 0x01
	}
	runtime.KeepAlive(&a)
	runtime.KeepAlive(&b)
}

func TestRawEqualIgnoresEquality(t *testing.T) {
	nan := math.NaN()
	other := nan
	if !intrinsics.RawEqual(&nan, &other) {
		t.Fatalf("RawEqual(NaN, NaN): got false, want true")
	}
	pos, neg := 0.0, math.Copysign(0, -1)
	if intrinsics.RawEqual(&pos, &neg) {
		t.Fatalf("RawEqual(+0, -0): got true, want false")
	}
}

// =============================================================================
// Hints and Select
// =============================================================================

func TestHints(t *testing.T) {
	intrinsics.ColdPath()
	for _, b := range []bool{true, false} {
		if intrinsics.Likely(b) != b || intrinsics.Unlikely(b) != b {
			t.Fatalf("hint(%v): input not returned", b)
		}
	}
}

func TestSelect(t *testing.T) {
	if got := intrinsics.Select(true, 1, 2); got != 1 {
		t.Fatalf("Select(true, 1, 2): got %d, want 1", got)
	}
	if got := intrinsics.Select(false, 1, 2); got != 2 {
		t.Fatalf("Select(false, 1, 2): got %d, want 2", got)
	}

	type node struct {
		name string
		next *node
	}
	x, y := &node{name: "n"}, &node{name: "n"}
	if got := intrinsics.Select(true, x, y); got != x {
		t.Fatalf("Select(true, x, y): got %p, want %p", got, x)
	}
	if got := intrinsics.Select(false, x, y); got != y {
		t.Fatalf("Select(false, x, y): got %p, want %p", got, y)
	}
}

// =============================================================================
// Prefetch and Non-Temporal Store
// =============================================================================

func TestPrefetchNeverDereferences(t *testing.T) {
	for _, addr := range []uintptr{0, 8, 0xDEAD_BEEF, ^uintptr(0)} {
		for l := intrinsics.LocalityNone; l <= intrinsics.LocalityHigh+3; l++ {
			intrinsics.PrefetchReadData(addr, l)
			intrinsics.PrefetchWriteData(addr, l)
			intrinsics.PrefetchReadInstruction(addr, l)
			intrinsics.PrefetchWriteInstruction(addr, l)
		}
	}
}

func TestStoreNonTemporal(t *testing.T) {
	buf := make([]uint64, 64)
	for i := range buf {
		intrinsics.StoreNonTemporal(&buf[i], uint64(i)*0x0101_0101_0101_0101)
	}
	intrinsics.StoreFence()
	for i, v := range buf {
		if want := uint64(i) * 0x0101_0101_0101_0101; v != want {
			t.Fatalf("buf[%d]: got %#x, want %#x", i, v, want)
		}
	}

	var f32 float32
	intrinsics.StoreNonTemporal(&f32, 3.5)
	var i16 int16
	intrinsics.StoreNonTemporal(&i16, -2)
	var u32 uint32
	intrinsics.StoreNonTemporal(&u32, 0xCAFE_F00D)
	intrinsics.StoreFence()
	if f32 != 3.5 || i16 != -2 || u32 != 0xCAFE_F00D {
		t.Fatalf("scalars: got %v %v %#x", f32, i16, u32)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

var sinkBool bool

func BenchmarkRawEqual64(b *testing.B) {
	var x, y [64]byte
	for i := range b.N {
		y[i&63] = 0
		sinkBool = intrinsics.RawEqual(&x, &y)
	}
}

func BenchmarkDisjointOr(b *testing.B) {
	var acc uint64
	for i := range b.N {
		acc ^= intrinsics.DisjointOr(uint64(i)<<32, uint64(uint32(i)))
	}
	sinkBool = acc == 0
}
