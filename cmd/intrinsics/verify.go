// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"code.hybscloud.com/intrinsics/conformance"
)

func newVerifyCommand(format *string) *cobra.Command {
	var (
		isolated bool
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the conformance checks against this build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := conformance.Run(conformance.Checks())

			if isolated {
				exe, err := os.Executable()
				if err != nil {
					return fmt.Errorf("locate executable: %w", err)
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()
				probe := func(ctx context.Context, name string) *exec.Cmd {
					return exec.CommandContext(ctx, exe, "probe", name)
				}
				for _, res := range conformance.RunIsolated(ctx, probe) {
					report.Add(res)
				}
			}

			out := cmd.OutOrStdout()
			if *format == "text" {
				printReport(out, report)
			} else if err := encode(out, *format, report); err != nil {
				return err
			}
			if !report.OK() {
				return errors.New("conformance: one or more checks failed")
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&isolated, "isolated", false, "Also run process-ending primitives in child processes")
	f.DurationVar(&timeout, "timeout", time.Minute, "Deadline for isolated probes")
	return cmd
}

func printReport(w io.Writer, r *conformance.Report) {
	c := r.Config
	fmt.Fprintf(w, "accelerated=%v assertions=%v arch=%s (%s/%s)\n\n",
		c.Accelerated, c.Assertions, c.Arch, c.GOOS, c.GOARCH)
	for _, res := range r.Results {
		fmt.Fprintf(w, "%-4s  %-26s %s\n", res.Status, res.Name, res.Property)
		if res.Error != "" {
			fmt.Fprintf(w, "      %s\n", res.Error)
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, %d skipped\n", r.Passed, r.Failed, r.Skipped)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
