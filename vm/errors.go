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
	"fmt"

	"github.com/pkg/errors"
)

// Load errors, returned wrapped in a *LoadError by NewProgram.
var (
	ErrLabelNotFound  = errors.New("label not found")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrOperand        = errors.New("operand mismatch")
)

// Runtime errors, returned wrapped in an *Error by Run and Step.
var (
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrInvalidRegister = errors.New("invalid register number")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrStepLimit       = errors.New("step limit reached")
)

// ErrHalted is returned by Step when the program has already run to completion.
var ErrHalted = errors.New("program halted")

// LoadError reports a program that cannot be loaded.
type LoadError struct {
	Index int    // index of the offending instruction
	Label string // offending label name, if any
	Err   error
}

func (e *LoadError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("instruction %d: %v: %s", e.Index, e.Err, e.Label)
	}
	return fmt.Sprintf("instruction %d: %v", e.Index, e.Err)
}

// Cause returns the underlying error.
func (e *LoadError) Cause() error { return e.Err }

func (e *LoadError) Unwrap() error { return e.Err }

// Error is a runtime fault. PC points to the instruction that triggered it.
type Error struct {
	PC   int
	Inst Instruction
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pc=%d (%s): %v", e.PC, e.Inst, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }
