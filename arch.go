// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

import "runtime"

// Arch classifies the target instruction set for primitives whose
// portable body differs by architecture.
//
// Exactly one class is active per build ([TargetArch]). Architectures the
// package has no trap for resolve to [ArchOther].
type Arch uint8

const (
	ArchOther Arch = iota
	ArchX86        // 386, amd64
	ArchARM        // arm
	ArchARM64      // arm64
	ArchRISCV      // riscv64
	ArchMIPS       // mips, mipsle, mips64, mips64le
	numArch
)

var archNames = [numArch]string{
	ArchOther: "other",
	ArchX86:   "x86",
	ArchARM:   "arm",
	ArchARM64: "arm64",
	ArchRISCV: "riscv",
	ArchMIPS:  "mips",
}

func (a Arch) String() string {
	if a >= numArch {
		return "other"
	}
	return archNames[a]
}

// Trap identifies the debugger trap instruction emitted by [Breakpoint].
type Trap uint8

const (
	TrapNone   Trap = iota // no instruction; Breakpoint returns
	TrapInt3               // x86 int3
	TrapBkpt               // ARM bkpt
	TrapBrk                // AArch64 brk #0xf000
	TrapEbreak             // RISC-V ebreak
	TrapBreak              // MIPS break
	numTrap
)

var trapMnemonics = [numTrap]string{
	TrapNone:   "none",
	TrapInt3:   "int3",
	TrapBkpt:   "bkpt",
	TrapBrk:    "brk #0xf000",
	TrapEbreak: "ebreak",
	TrapBreak:  "break",
}

// String returns the assembler mnemonic of the trap.
func (t Trap) String() string {
	if t >= numTrap {
		return "none"
	}
	return trapMnemonics[t]
}

// breakpointTable maps each architecture class to its trap.
// Any class missing from the table gets the zero value, TrapNone.
var breakpointTable = [numArch]Trap{
	ArchX86:   TrapInt3,
	ArchARM:   TrapBkpt,
	ArchARM64: TrapBrk,
	ArchRISCV: TrapEbreak,
	ArchMIPS:  TrapBreak,
}

// BreakpointTrap returns the trap [Breakpoint] emits on architecture a.
// Unknown classes map to [TrapNone], never to an error.
func BreakpointTrap(a Arch) Trap {
	if a >= numArch {
		return TrapNone
	}
	return breakpointTable[a]
}

// BuildConfig describes the configuration resolved when the package was
// compiled. It never changes for the lifetime of the process.
type BuildConfig struct {
	Accelerated bool   `json:"accelerated" yaml:"accelerated"`
	Assertions  bool   `json:"assertions" yaml:"assertions"`
	Arch        string `json:"arch" yaml:"arch"`
	Trap        string `json:"trap" yaml:"trap"`
	GOARCH      string `json:"goarch" yaml:"goarch"`
	GOOS        string `json:"goos" yaml:"goos"`
	Compiler    string `json:"compiler" yaml:"compiler"`
}

// Config returns the build configuration.
func Config() BuildConfig {
	return BuildConfig{
		Accelerated: Accelerated,
		Assertions:  Assertions,
		Arch:        TargetArch.String(),
		Trap:        BreakpointTrap(TargetArch).String(),
		GOARCH:      runtime.GOARCH,
		GOOS:        runtime.GOOS,
		Compiler:    runtime.Compiler,
	}
}
