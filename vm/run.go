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

import "context"

func (i *Instance) fault(err error) error {
	return &Error{PC: i.PC, Inst: i.prog.At(i.PC), Err: err}
}

// need checks that the stack holds at least n items.
func (i *Instance) need(n int) error {
	if len(i.data) < n {
		return i.fault(ErrStackUnderflow)
	}
	return nil
}

func validRegister(r Cell) bool {
	return r >= 0 && r < RegisterCount
}

// Run executes the program until the program counter goes past the last
// instruction or an error occurs.
//
// If an error occurs, it is an *Error and the PC will point to the instruction
// that triggered the error. The stack is left as it was before that
// instruction.
func (i *Instance) Run() error {
	var steps int64
	for !i.Halted() {
		if i.maxSteps > 0 && steps >= i.maxSteps {
			return i.fault(ErrStepLimit)
		}
		if err := i.step(); err != nil {
			return err
		}
		steps++
	}
	return nil
}

// Step executes a single instruction. It returns ErrHalted if the program has
// already completed.
func (i *Instance) Step() error {
	if i.Halted() {
		return ErrHalted
	}
	return i.step()
}

func (i *Instance) step() error {
	in := &i.prog.insts[i.PC]
	if i.log != nil {
		i.log.Log(context.Background(), LevelTrace, "exec",
			"pc", i.PC, "op", in.Op, "arg", in.Arg, "depth", len(i.data))
	}

	switch in.Op {
	case OpPush:
		i.Push(in.Arg.Value)
		i.PC++
	case OpPop:
		if err := i.need(1); err != nil {
			return err
		}
		i.data = i.data[:len(i.data)-1]
		i.PC++
	case OpDup:
		if err := i.need(1); err != nil {
			return err
		}
		i.Push(i.data[len(i.data)-1])
		i.PC++
	case OpSwap:
		if err := i.need(2); err != nil {
			return err
		}
		sp := len(i.data) - 1
		i.data[sp], i.data[sp-1] = i.data[sp-1], i.data[sp]
		i.PC++
	case OpAdd, OpSub, OpMul, OpDiv:
		if err := i.need(2); err != nil {
			return err
		}
		if in.Op == OpDiv && i.data[len(i.data)-1] == 0 {
			return i.fault(ErrDivisionByZero)
		}
		a, b := i.pop2()
		switch in.Op {
		case OpAdd:
			i.Push(a + b)
		case OpSub:
			i.Push(a - b)
		case OpMul:
			i.Push(a * b)
		case OpDiv:
			i.Push(a / b)
		}
		i.PC++
	case OpGoto:
		i.PC = int(in.Arg.Value)
	case OpJmpEq, OpJmpGt, OpJmpGe, OpJmpLt, OpJmpLe:
		if err := i.need(2); err != nil {
			return err
		}
		a, b := i.pop2()
		var jump bool
		switch in.Op {
		case OpJmpEq:
			jump = a == b
		case OpJmpGt:
			jump = a > b
		case OpJmpGe:
			jump = a >= b
		case OpJmpLt:
			jump = a < b
		case OpJmpLe:
			jump = a <= b
		}
		if jump {
			i.PC = int(in.Arg.Value)
		} else {
			i.PC++
		}
	case OpSkip:
		i.PC++
	case OpStore:
		r := in.Arg.Value
		if !validRegister(r) {
			return i.fault(ErrInvalidRegister)
		}
		if err := i.need(1); err != nil {
			return err
		}
		v, _ := i.Pop()
		i.regs[r] = v
		i.PC++
	case OpLoad:
		r := in.Arg.Value
		if !validRegister(r) {
			return i.fault(ErrInvalidRegister)
		}
		i.Push(i.regs[r])
		i.PC++
	case OpPrint:
		if err := i.PrintStack(i.output); err != nil {
			return i.fault(err)
		}
		i.PC++
	}
	i.insCount++
	return nil
}
