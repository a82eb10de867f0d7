// This file is part of svm - https://github.com/stackvm/svm
//
// Copyright 2026 The svm Authors
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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/stackvm/svm/asm"
	"github.com/stackvm/svm/vm"
	"github.com/tebeka/atexit"
)

// exit codes
const (
	exitOK = iota
	exitFailure
	exitAsm
	exitRuntime
)

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	tty    bool // stdout is a terminal

	debug    bool
	dump     bool
	format   bool
	strict   bool
	quiet    bool
	maxSteps int64
}

func exitCode(err error) int {
	var ae *asm.Error
	var re *vm.Error
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ae):
		return exitAsm
	case errors.As(err, &re):
		return exitRuntime
	}
	return exitFailure
}

func (c *cli) report(i *vm.Instance, err error) int {
	if err == nil {
		return exitOK
	}
	if !c.debug {
		fmt.Fprintf(c.stderr, "error: %v\n", err)
		return exitCode(err)
	}
	fmt.Fprintf(c.stderr, "error: %+v\n", err)
	if i != nil {
		fmt.Fprintf(c.stderr, "PC: %v, Stack: %v, Registers: %v\n", i.PC, i.Data(), i.Registers())
	}
	return exitCode(err)
}

func (c *cli) open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(c.stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read program")
	}
	return f, nil
}

func (c *cli) load(name string) (*vm.Program, error) {
	r, err := c.open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var opts []vm.LoadOption
	if c.strict {
		opts = append(opts, vm.RejectDuplicateLabels())
	}
	return asm.Assemble(name, bufio.NewReader(r), opts...)
}

func (c *cli) listing(p *vm.Program) error {
	if c.tty {
		_, err := io.WriteString(c.stdout, listingTable(p)+"\n")
		return errors.Wrap(err, "write failed")
	}
	return asm.Disassemble(p, c.stdout)
}

func (c *cli) run(args []string) int {
	fs := flag.NewFlagSet("svm", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.BoolVar(&c.debug, "debug", false, "trace execution and print full error diagnostics")
	fs.BoolVar(&c.dump, "dump", false, "dump registers and stack upon exit")
	fs.BoolVar(&c.format, "format", false, "print the program as assembly source and exit")
	fs.BoolVar(&c.strict, "strict", false, "reject duplicate labels")
	fs.BoolVar(&c.quiet, "q", false, "only print program output")
	fs.Int64Var(&c.maxSteps, "maxsteps", 0, "stop after `n` instructions (0 means no limit)")
	fs.Usage = func() {
		fmt.Fprintf(c.stderr, "Usage: svm [flags] file\n\nRead the program from standard input if file is -.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitFailure
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(c.stderr, "File name missing")
		fs.Usage()
		return exitFailure
	}
	name := fs.Arg(0)

	p, err := c.load(name)
	if err != nil {
		return c.report(nil, err)
	}

	if c.format {
		return c.report(nil, asm.Format(p, c.stdout))
	}

	opts := []vm.Option{vm.Output(c.stdout), vm.StepLimit(c.maxSteps)}
	if c.debug {
		h := slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: vm.LevelTrace})
		opts = append(opts, vm.Logger(slog.New(h)))
	}
	i, err := vm.New(p, opts...)
	if err != nil {
		return c.report(nil, err)
	}

	if !c.quiet {
		fmt.Fprintf(c.stdout, "Reading program from file %s\n", name)
		fmt.Fprintln(c.stdout, "Program:")
		if err = c.listing(p); err != nil {
			return c.report(nil, err)
		}
		fmt.Fprintln(c.stdout, "----------------")
		fmt.Fprintln(c.stdout, "Running ....")
	}
	err = i.Run()
	if err == nil && !c.quiet {
		fmt.Fprintln(c.stdout, "Finished")
	}
	if err == nil {
		err = i.PrintStack(c.stdout)
	}
	if c.dump {
		if _, e := io.WriteString(c.stdout, stateTable(i)+"\n"); e != nil && err == nil {
			err = errors.Wrap(e, "write failed")
		}
	}
	return c.report(i, err)
}

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	c := &cli{
		stdin:  os.Stdin,
		stdout: stdout,
		stderr: os.Stderr,
		tty:    isTerminal(os.Stdout),
	}
	code := c.run(os.Args[1:])
	atexit.Exit(code)
}
