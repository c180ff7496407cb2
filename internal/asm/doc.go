// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides the architecture-specific instruction sequences
// behind the accelerated primitives.
//
// Every asm_* file is built under gc && !purego, the same expression that
// selects the accelerated bodies in the parent package, so [Available]
// always equals intrinsics.Accelerated. Tests verify the equality and
// compare the stores with plain Go stores.
//
// [DebugTrap] is the exception: the breakpoint instruction is part of the
// contract on both paths, so its trap_* files need only gc.
package asm
