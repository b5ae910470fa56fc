// Copyright 2025 matbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cpuinfo describes the host a benchmark ran on.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Feature is a named CPU capability flag.
type Feature struct {
	Name    string
	Note    string
	Present bool
}

// Info is a snapshot of the host's parallelism and CPU features.
type Info struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []Feature
}

// Detect reads the current host description.
func Detect() Info {
	info := Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
	switch runtime.GOARCH {
	case "arm64":
		info.Features = arm64Features()
	case "amd64":
		info.Features = amd64Features()
	}
	return info
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", "NEON baseline", cpu.ARM64.HasASIMD},
		{"FP", "Floating point", cpu.ARM64.HasFP},
		{"FPHP", "FP16 scalar, ARMv8.2-A", cpu.ARM64.HasFPHP},
		{"ASIMDHP", "FP16 NEON, ARMv8.2-A", cpu.ARM64.HasASIMDHP},
		{"ASIMDFHM", "FP16 FMA, ARMv8.4-A", cpu.ARM64.HasASIMDFHM},
		{"SVE", "Scalable Vector Extension", cpu.ARM64.HasSVE},
		{"SVE2", "SVE2", cpu.ARM64.HasSVE2},
		{"ATOMICS", "Large System Extensions", cpu.ARM64.HasATOMICS},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"AVX", "", cpu.X86.HasAVX},
		{"AVX2", "", cpu.X86.HasAVX2},
		{"AVX512F", "", cpu.X86.HasAVX512F},
		{"FMA", "", cpu.X86.HasFMA},
		{"SSE2", "", cpu.X86.HasSSE2},
		{"SSE41", "", cpu.X86.HasSSE41},
		{"SSE42", "", cpu.X86.HasSSE42},
	}
}

// Present returns the names of the features the host has.
func (i Info) Present() []string {
	var names []string
	for _, f := range i.Features {
		if f.Present {
			names = append(names, f.Name)
		}
	}
	return names
}

// Summary returns a one-line description for report headers.
func (i Info) Summary() string {
	s := fmt.Sprintf("%s/%s, %d CPUs, GOMAXPROCS=%d", i.GOOS, i.GOARCH, i.NumCPU, i.GOMAXPROCS)
	if p := i.Present(); len(p) > 0 {
		s += " [" + strings.Join(p, " ") + "]"
	}
	return s
}

// Fprint writes the full description, one feature per line.
func Fprint(w io.Writer, i Info) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GOOS: %s\n", i.GOOS)
	fmt.Fprintf(&sb, "GOARCH: %s\n", i.GOARCH)
	fmt.Fprintf(&sb, "NumCPU: %d\n", i.NumCPU)
	fmt.Fprintf(&sb, "GOMAXPROCS: %d\n", i.GOMAXPROCS)
	if len(i.Features) > 0 {
		fmt.Fprintf(&sb, "\n=== golang.org/x/sys/cpu (%s) ===\n", i.GOARCH)
		for _, f := range i.Features {
			line := fmt.Sprintf("  Has%-9s %v", f.Name+":", f.Present)
			if f.Note != "" {
				line += " (" + f.Note + ")"
			}
			sb.WriteString(line + "\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
