// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

import "errors"

// ErrPrecondition is the sentinel wrapped by every contract violation this
// package detects.
//
// Violations are reported by panicking with a [*PreconditionError], never
// by returning an error: a violated precondition is a caller bug. In
// builds without [Assertions] only [Transmute] still detects its violation.
//
// Example:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && intrinsics.IsPrecondition(err) {
//	        // contract violated
//	    }
//	}()
//	intrinsics.DisjointOr(uint8(1), uint8(1))
var ErrPrecondition = errors.New("intrinsics: precondition violated")

// PreconditionError describes a detected contract violation.
type PreconditionError struct {
	Op     string // exported function whose precondition failed
	Detail string // the predicate that did not hold
}

func (e *PreconditionError) Error() string {
	return "intrinsics: " + e.Op + ": precondition violated: " + e.Detail
}

// Unwrap returns ErrPrecondition.
func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// IsPrecondition reports whether err is, or wraps, a contract violation.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
