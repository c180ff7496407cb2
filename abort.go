// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrinsics

import (
	"runtime"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Abort terminates the process immediately. It never returns.
//
// Deferred calls do not run and the termination cannot be recovered.
// With [Accelerated] the processor executes an undefined instruction and
// the runtime dies on the resulting signal. Otherwise the portable body
// tries, in order:
//
//  1. a read of the null address on a goroutine with no recovering frame,
//     where the target has memory protection;
//  2. the platform's direct termination: SIGABRT to the own process on
//     unix, exit status 134 elsewhere;
//  3. a panic on a goroutine with no recovering frame.
func Abort() {
	abort()
	select {}
}

// faultAvailable is false on targets without memory protection, where a
// read of address zero may succeed.
const faultAvailable = runtime.GOOS != "js" && runtime.GOOS != "wasip1"

func abortPortable() {
	if faultAvailable {
		detached(readNull)
	}
	terminate()
	detached(func() { panic("intrinsics: abort") })
}

func readNull() {
	var p *atomix.Uint64
	p.LoadRelaxed()
}

// detached runs f on a fresh goroutine and parks the caller until f
// returns normally. A panic in f has no frame to recover it and takes the
// process down first.
func detached(f func()) {
	var returned atomix.Bool
	go func() {
		f()
		returned.StoreRelease(true)
	}()
	backoff := iox.Backoff{}
	for !returned.LoadAcquire() {
		backoff.Wait()
	}
}
