// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/matbench/bench"
	"github.com/ajroetker/matbench/matrix"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Flags(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.txt", "1\n2\n3\n4\n")
	pathB := writeFile(t, dir, "b.txt", "5\n6\n7\n8\n")
	pathC := filepath.Join(dir, "matrixC.txt")

	out, err := execute(t, "",
		"--a", pathA, "--a-rows", "2", "--a-cols", "2",
		"--b", pathB, "--b-rows", "2", "--b-cols", "2",
		"--trials", "3", "--repeats", "2", "--out", pathC, "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Host: ")
	assert.Contains(t, out, "Serial")
	assert.Contains(t, out, "Parallel")
	assert.Contains(t, out, "average")
	assert.Contains(t, out, "vs serial")

	c, err := matrix.Load(pathC, "c", 2, 2, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Data())
}

func TestRun_Prompts(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.txt", "1 0 0")
	pathB := writeFile(t, dir, "b.txt", "9 8 7")
	stdin := strings.Join([]string{"1", "3", pathA, "3", "1", pathB}, "\n")

	out, err := execute(t, stdin, "--out", "", "--no-host", "--print", "--log-level", "error")
	require.NoError(t, err)

	for _, q := range []string{
		"How many rows does Matrix a have? ",
		"How many columns does Matrix a have? ",
		"What is the fileName for matrix a? ",
		"How many rows does Matrix b have? ",
		"What is the fileName for matrix b? ",
	} {
		assert.Contains(t, out, q)
	}
	assert.Contains(t, out, "PRINTING MATRIX c\n9.000000\n")
	assert.NotContains(t, out, "Host: ")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.txt", "1 2 3")
	pathB := writeFile(t, dir, "b.txt", "1 2 3 4")
	short := writeFile(t, dir, "short.txt", "1 2")

	cases := []struct {
		name string
		args []string
		err  error
	}{
		{
			name: "ShapeMismatch",
			args: []string{"--a", pathA, "--a-rows", "1", "--a-cols", "3", "--b", pathB, "--b-rows", "2", "--b-cols", "2"},
			err:  bench.ErrShapeMismatch,
		},
		{
			name: "ShortInput",
			args: []string{"--a", short, "--a-rows", "1", "--a-cols", "3", "--b", pathA, "--b-rows", "3", "--b-cols", "1"},
			err:  matrix.ErrShortInput,
		},
		{
			name: "TrailingInput",
			args: []string{"--a", pathB, "--a-rows", "1", "--a-cols", "3", "--b", pathA, "--b-rows", "3", "--b-cols", "1"},
			err:  matrix.ErrTrailingInput,
		},
		{
			name: "BadTrials",
			args: []string{"--trials", "0"},
			err:  bench.ErrConfig,
		},
		{
			name: "BadClock",
			args: []string{"--clock", "sundial"},
			err:  bench.ErrConfig,
		},
		{
			name: "NoInput",
			args: []string{"--a", pathA},
			err:  errNoInput,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append(tc.args, "--out", "", "--log-level", "error")
			_, err := execute(t, "", args...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCPUInfoCmd(t *testing.T) {
	out, err := execute(t, "", "cpuinfo")
	require.NoError(t, err)
	assert.Contains(t, out, "GOMAXPROCS: ")
}
