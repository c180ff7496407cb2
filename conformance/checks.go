// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conformance

import (
	"fmt"
	"math"
	"runtime"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/intrinsics"
	"code.hybscloud.com/spin"
)

// Checks returns every in-process check.
func Checks() []Check {
	return []Check{
		{"disjoint-or/exhaustive-8", "DisjointOr(a, b) == a|b == a+b for all disjoint 8-bit pairs", checkDisjointExhaustive8},
		{"disjoint-or/sampled-wide", "DisjointOr(a, b) == a|b == a+b for sampled disjoint 16..64-bit pairs", checkDisjointSampled},
		{"disjoint-or/bool", "DisjointOrBool matches || when operands are not both true", checkDisjointBool},
		{"disjoint-or/scenario", "DisjointOr(0b0101, 0b1010) == 0b1111", checkDisjointScenario},
		{"disjoint-or/violation", "overlapping operands are flagged when assertions are enabled", checkDisjointViolation},
		{"hint/cold-path", "ColdPath has no observable effect", checkColdPath},
		{"hint/likely", "Likely and Unlikely return their input", checkLikely},
		{"select/values", "Select(true, x, y) == x and Select(false, x, y) == y", checkSelect},
		{"transmute/enum", "TransmuteUnchecked between same-layout enums equals Transmute and skips cleanup", checkTransmuteEnum},
		{"transmute/bits", "TransmuteUnchecked of float64 equals math.Float64bits", checkTransmuteBits},
		{"transmute/size-mismatch", "Transmute flags a size mismatch", checkTransmuteMismatch},
		{"raw-equal/scenario", "RawEqual({1,2}, {1,2}) and !RawEqual({1,2}, {1,3})", checkRawEqualScenario},
		{"raw-equal/byte-flip", "RawEqual is false when any single byte differs", checkRawEqualByteFlip},
		{"raw-equal/ignores-eq", "RawEqual compares bits, not ==", checkRawEqualBits},
		{"breakpoint/table", "every architecture class maps to its trap, unknown classes to none", checkBreakpointTable},
		{"breakpoint/other", "Breakpoint returns on an unrecognized architecture", checkBreakpointOther},
		{"prefetch/garbage", "prefetch hints accept addresses that are not mapped", checkPrefetchGarbage},
		{"nontemporal/store", "StoreNonTemporal writes the value for every scalar width", checkNonTemporalStore},
		{"nontemporal/visibility", "a fenced streaming store is visible to an acquiring goroutine", checkNonTemporalVisibility},
	}
}

// splitmix64 is a deterministic generator for sampled operands.
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func disjointTriple[T intrinsics.Integer](a, b T) error {
	if !intrinsics.Disjoint(a, b) {
		return fmt.Errorf("Disjoint(%#x, %#x): got false, want true", a, b)
	}
	got := intrinsics.DisjointOr(a, b)
	if got != a|b {
		return fmt.Errorf("DisjointOr(%#x, %#x): got %#x, want a|b = %#x", a, b, got, a|b)
	}
	if got != a+b {
		return fmt.Errorf("DisjointOr(%#x, %#x): got %#x, want a+b = %#x", a, b, got, a+b)
	}
	return nil
}

func checkDisjointExhaustive8() error {
	for a := range 256 {
		for b := range 256 {
			if a&b != 0 {
				continue
			}
			if err := disjointTriple(uint8(a), uint8(b)); err != nil {
				return err
			}
			if err := disjointTriple(int8(a), int8(b)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkDisjointSampled() error {
	s := splitmix64(1)
	for range 4096 {
		x, y, m := s.next(), s.next(), s.next()
		a, b := x&m, y&^m
		for _, err := range []error{
			disjointTriple(uint16(a), uint16(b)),
			disjointTriple(int16(a), int16(b)),
			disjointTriple(uint32(a), uint32(b)),
			disjointTriple(int32(a), int32(b)),
			disjointTriple(a, b),
			disjointTriple(int64(a), int64(b)),
			disjointTriple(uint(a), uint(b)),
			disjointTriple(int(a), int(b)),
			disjointTriple(uintptr(a), uintptr(b)),
		} {
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func checkDisjointBool() error {
	for _, c := range [][3]bool{{false, false, false}, {true, false, true}, {false, true, true}} {
		if got := intrinsics.DisjointOrBool(c[0], c[1]); got != c[2] {
			return fmt.Errorf("DisjointOrBool(%v, %v): got %v, want %v", c[0], c[1], got, c[2])
		}
	}
	return nil
}

func checkDisjointScenario() error {
	if got := intrinsics.DisjointOr(uint8(0b0101), uint8(0b1010)); got != 0b1111 {
		return fmt.Errorf("DisjointOr(0b0101, 0b1010): got %#b, want 0b1111", got)
	}
	return nil
}

func checkDisjointViolation() error {
	if !intrinsics.Assertions {
		return ErrSkipped
	}
	if intrinsics.Disjoint(uint8(0b0110), uint8(0b0011)) {
		return fmt.Errorf("Disjoint(0b0110, 0b0011): got true, want false")
	}
	if err := expectPrecondition("DisjointOr", func() {
		intrinsics.DisjointOr(uint8(0b0110), uint8(0b0011))
	}); err != nil {
		return err
	}
	return expectPrecondition("DisjointOrBool", func() {
		intrinsics.DisjointOrBool(true, true)
	})
}

// Returning is the whole property.
func checkColdPath() error {
	for range 3 {
		intrinsics.ColdPath()
	}
	return nil
}

func checkLikely() error {
	for _, b := range []bool{false, true} {
		if intrinsics.Likely(b) != b {
			return fmt.Errorf("Likely(%v): got %v", b, !b)
		}
		if intrinsics.Unlikely(b) != b {
			return fmt.Errorf("Unlikely(%v): got %v", b, !b)
		}
	}
	return nil
}

type composite struct {
	id   int
	name string
	tags []string
}

func checkSelect() error {
	if got := intrinsics.Select(true, 1, 2); got != 1 {
		return fmt.Errorf("Select(true, 1, 2): got %d, want 1", got)
	}
	if got := intrinsics.Select(false, 1, 2); got != 2 {
		return fmt.Errorf("Select(false, 1, 2): got %d, want 2", got)
	}

	x := &composite{id: 1, name: "x", tags: []string{"a"}}
	y := &composite{id: 1, name: "x", tags: []string{"a"}}
	if got := intrinsics.Select(true, x, y); got != x {
		return fmt.Errorf("Select(true, x, y): got %p, want %p", got, x)
	}
	if got := intrinsics.Select(false, x, y); got != y {
		return fmt.Errorf("Select(false, x, y): got %p, want %p", got, y)
	}
	return nil
}

// guardedEnum panics if its cleanup ever runs.
type guardedEnum uint8

func (guardedEnum) Close() error {
	panic("conformance: guardedEnum cleanup ran")
}

type plainEnum uint8

func checkTransmuteEnum() error {
	for _, d := range []guardedEnum{0, 1, 2} {
		checked := intrinsics.Transmute[plainEnum](d)
		unchecked := intrinsics.TransmuteUnchecked[plainEnum](d)
		if unchecked != checked {
			return fmt.Errorf("TransmuteUnchecked(%d): got %d, want %d", d, unchecked, checked)
		}
		if unchecked != plainEnum(d) {
			return fmt.Errorf("TransmuteUnchecked(%d): got %d, want %d", d, unchecked, d)
		}
	}
	return nil
}

func checkTransmuteBits() error {
	for _, f := range []float64{0, math.Copysign(0, -1), 1.5, math.Inf(-1), math.MaxFloat64, math.NaN()} {
		if got, want := intrinsics.TransmuteUnchecked[uint64](f), math.Float64bits(f); got != want {
			return fmt.Errorf("TransmuteUnchecked(%v): got %#x, want %#x", f, got, want)
		}
	}
	return nil
}

func checkTransmuteMismatch() error {
	if intrinsics.SameSize[uint16, uint8]() {
		return fmt.Errorf("SameSize[uint16, uint8]: got true, want false")
	}
	return expectPrecondition("Transmute", func() {
		intrinsics.Transmute[uint16](uint8(1))
	})
}

type bytePair struct {
	b [2]uint8
}

func checkRawEqualScenario() error {
	a := bytePair{[2]uint8{1, 2}}
	b := bytePair{[2]uint8{1, 2}}
	c := bytePair{[2]uint8{1, 3}}
	eqAB := intrinsics.RawEqual(&a, &b)
	eqAC := intrinsics.RawEqual(&a, &c)
	runtime.KeepAlive(&a)
	runtime.KeepAlive(&b)
	runtime.KeepAlive(&c)

	if !eqAB {
		return fmt.Errorf("RawEqual({1,2}, {1,2}): got false, want true")
	}
	if eqAC {
		return fmt.Errorf("RawEqual({1,2}, {1,3}): got true, want false")
	}
	return nil
}

func checkRawEqualByteFlip() error {
	var a [37]byte
	for i := range a {
		a[i] = byte(i * 7)
	}
	b := a
	if !intrinsics.RawEqual(&a, &b) {
		return fmt.Errorf("RawEqual(a, copy of a): got false, want true")
	}
	for i := range b {
		b[i] ^= 0x80
		if intrinsics.RawEqual(&a, &b) {
			return fmt.Errorf("RawEqual: byte %d differs but got true", i)
		}
		b[i] ^= 0x80
	}
	runtime.KeepAlive(&a)
	runtime.KeepAlive(&b)
	return nil
}

func checkRawEqualBits() error {
	nan := math.NaN()
	if !intrinsics.RawEqual(&nan, &nan) {
		return fmt.Errorf("RawEqual(NaN, NaN): got false, want true")
	}
	pos, neg := 0.0, math.Copysign(0, -1)
	if intrinsics.RawEqual(&pos, &neg) {
		return fmt.Errorf("RawEqual(+0, -0): got true, want false")
	}
	var zero, empty struct{}
	if !intrinsics.RawEqual(&zero, &empty) {
		return fmt.Errorf("RawEqual(struct{}, struct{}): got false, want true")
	}
	return nil
}

func checkBreakpointTable() error {
	want := map[intrinsics.Arch]intrinsics.Trap{
		intrinsics.ArchOther: intrinsics.TrapNone,
		intrinsics.ArchX86:   intrinsics.TrapInt3,
		intrinsics.ArchARM:   intrinsics.TrapBkpt,
		intrinsics.ArchARM64: intrinsics.TrapBrk,
		intrinsics.ArchRISCV: intrinsics.TrapEbreak,
		intrinsics.ArchMIPS:  intrinsics.TrapBreak,
		intrinsics.Arch(200): intrinsics.TrapNone,
	}
	for arch, trap := range want {
		if got := intrinsics.BreakpointTrap(arch); got != trap {
			return fmt.Errorf("BreakpointTrap(%v): got %v, want %v", arch, got, trap)
		}
	}
	return nil
}

func checkBreakpointOther() error {
	if intrinsics.BreakpointTrap(intrinsics.TargetArch) != intrinsics.TrapNone {
		return ErrSkipped
	}
	intrinsics.Breakpoint()
	return nil
}

func checkPrefetchGarbage() error {
	for _, addr := range []uintptr{0, 1, 0xDEAD_BEEF, ^uintptr(0)} {
		for l := intrinsics.LocalityNone; l <= intrinsics.LocalityHigh+1; l++ {
			intrinsics.PrefetchReadData(addr, l)
			intrinsics.PrefetchWriteData(addr, l)
			intrinsics.PrefetchReadInstruction(addr, l)
			intrinsics.PrefetchWriteInstruction(addr, l)
		}
	}
	return nil
}

func nontemporalRoundTrip[T intrinsics.Scalar](v T) error {
	var dst T
	intrinsics.StoreNonTemporal(&dst, v)
	intrinsics.StoreFence()
	if dst != v {
		return fmt.Errorf("StoreNonTemporal(%T %v): got %v", v, v, dst)
	}
	return nil
}

func checkNonTemporalStore() error {
	for _, err := range []error{
		nontemporalRoundTrip(int8(-3)),
		nontemporalRoundTrip(uint16(0xBEEF)),
		nontemporalRoundTrip(int32(-123456)),
		nontemporalRoundTrip(uint32(0xDEAD_BEEF)),
		nontemporalRoundTrip(int64(math.MinInt64)),
		nontemporalRoundTrip(uint64(math.MaxUint64)),
		nontemporalRoundTrip(float32(1.25)),
		nontemporalRoundTrip(math.Pi),
		nontemporalRoundTrip(uintptr(0x1000)),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func checkNonTemporalVisibility() error {
	if intrinsics.RaceEnabled {
		return ErrSkipped
	}
	const want = uint64(0x0123_4567_89AB_CDEF)
	var (
		slot  uint64
		ready atomix.Bool
	)
	seen := make(chan uint64, 1)
	go func() {
		sw := spin.Wait{}
		for !ready.LoadAcquire() {
			sw.Once()
		}
		seen <- slot
	}()

	intrinsics.StoreNonTemporal(&slot, want)
	intrinsics.StoreFence()
	ready.StoreRelease(true)

	if got := <-seen; got != want {
		return fmt.Errorf("visible value: got %#x, want %#x", got, want)
	}
	return nil
}
