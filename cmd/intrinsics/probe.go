// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"code.hybscloud.com/intrinsics/conformance"
)

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <abort|breakpoint|disjoint>",
		Short: "Execute one process-ending primitive in this process",
		Long: "probe runs a single primitive that may terminate the process. It is\n" +
			"meant to be started as a child by 'verify --isolated'.",
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := conformance.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown probe %q", args[0])
			}
			conformance.Execute(p)
			return nil
		},
	}
}
