// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"unsafe"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
	"golang.org/x/sys/cpu"

	"code.hybscloud.com/intrinsics"
)

// Info is the document printed by the info command.
type Info struct {
	Build     intrinsics.BuildConfig `json:"build" yaml:"build"`
	Toolchain Toolchain              `json:"toolchain" yaml:"toolchain"`
	Hardware  Hardware               `json:"hardware" yaml:"hardware"`
}

// Toolchain describes the compiler that produced the binary.
type Toolchain struct {
	Version string `json:"version" yaml:"version"`
	Channel string `json:"channel" yaml:"channel"`
}

// Hardware lists the processor features the hints map onto. The binary's
// configuration is fixed at build time; this is informational only.
type Hardware struct {
	CacheLine int             `json:"cache_line" yaml:"cache_line"`
	Features  map[string]bool `json:"features" yaml:"features"`
}

func newInfoCommand(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the resolved build configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := collectInfo()
			if *format == "text" {
				printInfo(cmd.OutOrStdout(), info)
				return nil
			}
			return encode(cmd.OutOrStdout(), *format, info)
		},
	}
}

func collectInfo() Info {
	return Info{
		Build: intrinsics.Config(),
		Toolchain: Toolchain{
			Version: runtime.Version(),
			Channel: releaseChannel(runtime.Version()),
		},
		Hardware: Hardware{
			CacheLine: int(unsafe.Sizeof(cpu.CacheLinePad{})),
			Features:  hintFeatures(),
		},
	}
}

// releaseChannel classifies a runtime.Version string as release,
// prerelease, devel or unknown.
func releaseChannel(v string) string {
	if strings.HasPrefix(v, "devel") {
		return "devel"
	}
	fields := strings.Fields(v)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "go") {
		return "unknown"
	}
	switch sv := toSemver(strings.TrimPrefix(fields[0], "go")); {
	case !semver.IsValid(sv):
		return "unknown"
	case semver.Prerelease(sv) != "":
		return "prerelease"
	default:
		return "release"
	}
}

// toSemver turns a Go release number such as 1.25, 1.25.3 or 1.26rc1 into
// v1.25.0, v1.25.3 or v1.26.0-rc1.
func toSemver(n string) string {
	base, pre := n, ""
	if i := strings.IndexFunc(n, func(r rune) bool { return r != '.' && (r < '0' || r > '9') }); i >= 0 {
		base, pre = n[:i], n[i:]
	}
	if strings.Count(base, ".") == 1 {
		base += ".0"
	}
	if pre != "" {
		return "v" + base + "-" + pre
	}
	return "v" + base
}

func hintFeatures() map[string]bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return map[string]bool{
			"sse2":  cpu.X86.HasSSE2, // MOVNTI, SFENCE
			"sse41": cpu.X86.HasSSE41,
			"avx2":  cpu.X86.HasAVX2,
			"erms":  cpu.X86.HasERMS,
		}
	case "arm64":
		return map[string]bool{
			"asimd":   cpu.ARM64.HasASIMD,
			"atomics": cpu.ARM64.HasATOMICS,
		}
	default:
		return map[string]bool{}
	}
}

func printInfo(w io.Writer, info Info) {
	b := info.Build
	fmt.Fprintf(w, "Target:      %s/%s (%s class)\n", b.GOOS, b.GOARCH, b.Arch)
	fmt.Fprintf(w, "Compiler:    %s %s (%s)\n", b.Compiler, info.Toolchain.Version, info.Toolchain.Channel)
	fmt.Fprintf(w, "Accelerated: %v\n", b.Accelerated)
	fmt.Fprintf(w, "Assertions:  %v\n", b.Assertions)
	fmt.Fprintf(w, "Breakpoint:  %s\n", b.Trap)
	fmt.Fprintf(w, "Cache line:  %d bytes\n", info.Hardware.CacheLine)
	for _, name := range sortedKeys(info.Hardware.Features) {
		fmt.Fprintf(w, "  %-8s %v\n", name, info.Hardware.Features[name])
	}
}
