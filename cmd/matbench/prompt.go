// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var errNoInput = errors.New("no more input")

// prompter asks for missing values on an interactive stream, one
// whitespace-delimited token per question.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &prompter{sc: sc, out: out}
}

func (p *prompter) token(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%q: %w", question, errNoInput)
	}
	return p.sc.Text(), nil
}

func (p *prompter) size(question string) (int, error) {
	tok, err := p.token(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q: want a positive integer, got %q", question, tok)
	}
	return n, nil
}

// complete prompts for every unset field of s.
func (p *prompter) complete(s *matrixSource) error {
	var err error
	if s.rows <= 0 {
		if s.rows, err = p.size(fmt.Sprintf("How many rows does Matrix %s have? ", s.name)); err != nil {
			return err
		}
	}
	if s.columns <= 0 {
		if s.columns, err = p.size(fmt.Sprintf("How many columns does Matrix %s have? ", s.name)); err != nil {
			return err
		}
	}
	if s.path == "" {
		if s.path, err = p.token(fmt.Sprintf("What is the fileName for matrix %s? ", s.name)); err != nil {
			return err
		}
	}
	return nil
}
