// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conformance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"code.hybscloud.com/intrinsics"
)

// DeferMarker is printed by a probe's deferred call. Its absence from the
// child's output shows that the process ended without unwinding.
const DeferMarker = "conformance: deferred call ran"

// Probe is a primitive that may end the process, run in a child process.
type Probe struct {
	Name     string
	Property string

	// Crashes is true when the child must exit with a non-zero status.
	Crashes bool

	// SkipsDefers is true when the child must not run deferred calls.
	SkipsDefers bool

	// Exec runs the primitive. It is called in the child only.
	Exec func()
}

// Probes returns the probes for the current build configuration.
func Probes() []Probe {
	trap := intrinsics.BreakpointTrap(intrinsics.TargetArch) != intrinsics.TrapNone
	return []Probe{
		{
			Name:        "abort",
			Property:    "Abort terminates the process without unwinding",
			Crashes:     true,
			SkipsDefers: true,
			Exec:        intrinsics.Abort,
		},
		{
			Name:        "breakpoint",
			Property:    "Breakpoint traps on a known architecture and returns elsewhere",
			Crashes:     trap,
			SkipsDefers: trap,
			Exec:        intrinsics.Breakpoint,
		},
		{
			Name:     "disjoint",
			Property: "an overlapping DisjointOr faults when assertions are enabled",
			Crashes:  intrinsics.Assertions,
			Exec: func() {
				a, b := uint32(0b1100), uint32(0b0110)
				intrinsics.DisjointOr(a, b)
			},
		},
	}
}

// Lookup returns the probe with the given name.
func Lookup(name string) (Probe, bool) {
	for _, p := range Probes() {
		if p.Name == name {
			return p, true
		}
	}
	return Probe{}, false
}

// Execute runs p in the current process. It prints [DeferMarker] from a
// deferred call so a parent can tell whether unwinding happened.
func Execute(p Probe) {
	defer fmt.Fprintln(os.Stdout, DeferMarker)
	p.Exec()
}

// CommandFunc builds the command that runs the named probe in a child
// process, for example the current executable with a probe subcommand.
type CommandFunc func(ctx context.Context, probe string) *exec.Cmd

// RunIsolated runs every probe through cmd and compares the child's exit
// status and output with the probe's expectations.
func RunIsolated(ctx context.Context, cmd CommandFunc) []Result {
	probes := Probes()
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		res := Result{Name: "probe/" + p.Name, Property: p.Property, Status: StatusPass}
		if err := runProbe(ctx, cmd, p); err != nil {
			res.Status = StatusFail
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results
}

func runProbe(ctx context.Context, cmd CommandFunc, p Probe) error {
	c := cmd(ctx, p.Name)
	var stdout bytes.Buffer
	c.Stdout = &stdout
	err := c.Run()

	var exitErr *exec.ExitError
	crashed := errors.As(err, &exitErr)
	if err != nil && !crashed {
		return fmt.Errorf("start %s: %w", p.Name, err)
	}
	if crashed != p.Crashes {
		return fmt.Errorf("%s: crashed = %v, want %v (%v)", p.Name, crashed, p.Crashes, err)
	}
	if p.SkipsDefers && bytes.Contains(stdout.Bytes(), []byte(DeferMarker)) {
		return fmt.Errorf("%s: deferred call ran", p.Name)
	}
	return nil
}
