// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package intrinsics

import "os"

// 128 + SIGABRT, the status a C abort reports.
func terminate() {
	os.Exit(134)
}
