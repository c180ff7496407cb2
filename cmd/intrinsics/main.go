// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command intrinsics reports the configuration the intrinsics package was
// built with and runs its conformance checks.
//
// Usage:
//
//	intrinsics info
//	intrinsics info --format yaml
//	intrinsics verify --isolated
//	intrinsics probe abort
//
// Build it twice to compare both paths:
//
//	go build ./cmd/intrinsics
//	go build -tags purego ./cmd/intrinsics
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var format string

	root := &cobra.Command{
		Use:           "intrinsics",
		Short:         "Inspect and verify the intrinsics build configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&format, "format", "f", "text", "Output format: text, yaml or json")

	root.AddCommand(newInfoCommand(&format))
	root.AddCommand(newVerifyCommand(&format))
	root.AddCommand(newProbeCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
