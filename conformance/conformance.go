// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conformance checks the observable contract of every primitive in
// [code.hybscloud.com/intrinsics] against the configuration it was built
// with.
//
// Build and run the same checks twice to cover both paths:
//
//	go test ./conformance/...
//	go test -tags purego ./conformance/...
//
// In-process checks are returned by [Checks] and executed by [Run].
// Primitives that end the process (Abort, Breakpoint on a known
// architecture, an asserted DisjointOr violation) are exercised by
// [Probes] in a child process; see [RunIsolated].
package conformance

import (
	"errors"
	"fmt"

	"code.hybscloud.com/intrinsics"
)

// ErrSkipped is returned by a check that does not apply to the current
// configuration.
var ErrSkipped = errors.New("conformance: skipped")

// Check is one named property of the public contract.
type Check struct {
	Name     string
	Property string
	Run      func() error
}

// Status is the outcome of a check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Result records the outcome of one check or probe.
type Result struct {
	Name     string `json:"name" yaml:"name"`
	Property string `json:"property" yaml:"property"`
	Status   Status `json:"status" yaml:"status"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report aggregates results for one build configuration.
type Report struct {
	Config  intrinsics.BuildConfig `json:"config" yaml:"config"`
	Results []Result               `json:"results" yaml:"results"`
	Passed  int                    `json:"passed" yaml:"passed"`
	Failed  int                    `json:"failed" yaml:"failed"`
	Skipped int                    `json:"skipped" yaml:"skipped"`
}

// OK reports whether no check failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Add records res and updates the counters.
func (r *Report) Add(res Result) {
	switch res.Status {
	case StatusPass:
		r.Passed++
	case StatusFail:
		r.Failed++
	case StatusSkip:
		r.Skipped++
	}
	r.Results = append(r.Results, res)
}

// Run executes checks in order. A check that panics fails; it does not
// stop the run.
func Run(checks []Check) *Report {
	r := &Report{Config: intrinsics.Config()}
	for _, c := range checks {
		r.Add(runOne(c))
	}
	return r
}

func runOne(c Check) (res Result) {
	res = Result{Name: c.Name, Property: c.Property}
	defer func() {
		if v := recover(); v != nil {
			res.Status = StatusFail
			res.Error = fmt.Sprintf("panic: %v", v)
		}
	}()

	err := c.Run()
	switch {
	case err == nil:
		res.Status = StatusPass
	case errors.Is(err, ErrSkipped):
		res.Status = StatusSkip
	default:
		res.Status = StatusFail
		res.Error = err.Error()
	}
	return res
}

// expectPrecondition runs f and reports an error unless f panics with a
// precondition violation.
func expectPrecondition(op string, f func()) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			err = fmt.Errorf("%s: precondition violation not flagged", op)
			return
		}
		perr, ok := v.(error)
		if !ok || !intrinsics.IsPrecondition(perr) {
			err = fmt.Errorf("%s: unexpected panic value %v", op, v)
		}
	}()
	f()
	return nil
}
