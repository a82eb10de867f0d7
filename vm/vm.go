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

package vm

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// Cell is the integer type manipulated by the VM.
type Cell int32

// RegisterCount is the size of the register file.
const RegisterCount = 8

// LevelTrace is the slog level used to trace instruction execution.
const LevelTrace = slog.LevelDebug - 4

// Instance represents an SVM instance.
type Instance struct {
	PC       int // Program Counter
	prog     *Program
	regs     [RegisterCount]Cell
	data     []Cell
	insCount int64
	output   io.Writer
	log      *slog.Logger
	maxSteps int64
}

// Option interface
type Option func(*Instance) error

// Output sets the io.Writer the print instruction writes to. The default is
// os.Stdout.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		if w == nil {
			return errors.New("nil output writer")
		}
		i.output = w
		return nil
	}
}

// Logger enables execution tracing: every instruction is logged at LevelTrace
// before it executes. A nil logger disables tracing.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error { i.log = l; return nil }
}

// StepLimit caps the number of instructions a single call to Run will execute.
// Run returns ErrStepLimit when the cap is reached before the program halts.
// Zero, the default, means no limit.
func StepLimit(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("negative step limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance ready to run the given program.
//
// Options will be set by calling SetOptions.
func New(p *Program, opts ...Option) (*Instance, error) {
	if p == nil {
		return nil, errors.New("nil program")
	}
	i := &Instance{
		prog:   p,
		output: os.Stdout,
		data:   make([]Cell, 0, 64),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Program returns the program being run.
func (i *Instance) Program() *Program {
	return i.prog
}

// Halted reports whether the program counter went past the last instruction.
func (i *Instance) Halted() bool {
	return i.PC >= i.prog.Len()
}

// InstructionCount returns the number of instructions executed since the
// instance was created or last Reset.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Registers returns a copy of the register file.
func (i *Instance) Registers() [RegisterCount]Cell {
	return i.regs
}

// Reset rewinds the instance to its initial state: PC at 0, empty stack and
// zeroed registers.
func (i *Instance) Reset() {
	i.PC = 0
	i.data = i.data[:0]
	i.regs = [RegisterCount]Cell{}
	i.insCount = 0
}
