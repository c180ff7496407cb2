// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package intrinsics

// RaceEnabled is true when the race detector is active.
// Cross-goroutine visibility checks of non-temporal stores are skipped
// because assembly stores and atomix orderings are invisible to the detector.
const RaceEnabled = true
