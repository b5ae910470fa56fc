// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package cpuinfo

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	info := Detect()
	if info.GOOS != runtime.GOOS || info.GOARCH != runtime.GOARCH {
		t.Errorf("Detect() = %s/%s, want %s/%s", info.GOOS, info.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if info.NumCPU < 1 || info.GOMAXPROCS < 1 {
		t.Errorf("Detect() NumCPU=%d GOMAXPROCS=%d, want >= 1", info.NumCPU, info.GOMAXPROCS)
	}
	if runtime.GOARCH == "amd64" && len(info.Features) == 0 {
		t.Error("Detect() reported no amd64 features")
	}
}

func TestSummary(t *testing.T) {
	info := Info{
		GOOS:       "linux",
		GOARCH:     "amd64",
		NumCPU:     8,
		GOMAXPROCS: 4,
		Features: []Feature{
			{Name: "AVX2", Present: true},
			{Name: "AVX512F", Present: false},
			{Name: "FMA", Present: true},
		},
	}
	want := "linux/amd64, 8 CPUs, GOMAXPROCS=4 [AVX2 FMA]"
	if got := info.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	info.Features = nil
	if got := info.Summary(); strings.Contains(got, "[") {
		t.Errorf("Summary() without features = %q", got)
	}
}

func TestFprint(t *testing.T) {
	info := Info{
		GOOS: "linux", GOARCH: "arm64", NumCPU: 2, GOMAXPROCS: 2,
		Features: []Feature{{Name: "SVE", Note: "Scalable Vector Extension", Present: true}},
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, info); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"GOARCH: arm64", "GOMAXPROCS: 2", "HasSVE:", "true (Scalable Vector Extension)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Fprint output missing %q:\n%s", want, out)
		}
	}
}
