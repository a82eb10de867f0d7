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

// Opcode identifies one of the instructions understood by the VM.
type Opcode uint8

// SVM opcodes.
const (
	OpPush Opcode = iota
	OpPop
	OpDup
	OpSwap
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpGoto
	OpJmpEq
	OpJmpGt
	OpJmpGe
	OpJmpLt
	OpJmpLe
	OpSkip
	OpStore
	OpLoad
	OpPrint
)

// ArgKind describes the operand an opcode takes.
type ArgKind uint8

// Operand kinds. A LabelArg operand only exists before label resolution: once
// part of a Program, jump operands are IntArg instruction indices.
const (
	NoArg ArgKind = iota
	IntArg
	LabelArg
)

func (k ArgKind) String() string {
	switch k {
	case NoArg:
		return "none"
	case IntArg:
		return "integer"
	case LabelArg:
		return "label"
	}
	return "invalid"
}

var opcodes = [...]struct {
	name    string
	keyword string
	arg     ArgKind
}{
	OpPush:  {"push", "push", IntArg},
	OpPop:   {"pop", "pop", NoArg},
	OpDup:   {"dup", "dup", NoArg},
	OpSwap:  {"swap", "swap", NoArg},
	OpAdd:   {"add", "add", NoArg},
	OpSub:   {"sub", "sub", NoArg},
	OpMul:   {"mul", "mult", NoArg},
	OpDiv:   {"div", "div", NoArg},
	OpGoto:  {"goto", "goto", LabelArg},
	OpJmpEq: {"jmpeq", "jmpeq", LabelArg},
	OpJmpGt: {"jmpgt", "jmpgt", LabelArg},
	OpJmpGe: {"jmpge", "jmpge", LabelArg},
	OpJmpLt: {"jmplt", "jmplt", LabelArg},
	OpJmpLe: {"jmple", "jmple", LabelArg},
	OpSkip:  {"skip", "skip", NoArg},
	OpStore: {"store", "store", IntArg},
	OpLoad:  {"load", "load", IntArg},
	OpPrint: {"print", "print", NoArg},
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for i, v := range opcodes {
		opcodeIndex[v.keyword] = Opcode(i)
	}
}

// Lookup returns the opcode for the given assembler keyword. Keywords are case
// sensitive.
func Lookup(keyword string) (Opcode, bool) {
	op, ok := opcodeIndex[keyword]
	return op, ok
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	return int(op) < len(opcodes)
}

// String returns the opcode name, e.g. "mul".
func (op Opcode) String() string {
	if !op.Valid() {
		return "op?"
	}
	return opcodes[op].name
}

// Keyword returns the assembler keyword for op, e.g. "mult" for OpMul.
func (op Opcode) Keyword() string {
	if !op.Valid() {
		return ""
	}
	return opcodes[op].keyword
}

// ArgKind returns the kind of operand op expects in source form.
func (op Opcode) ArgKind() ArgKind {
	if !op.Valid() {
		return NoArg
	}
	return opcodes[op].arg
}

// IsJump reports whether op transfers control to a label.
func (op Opcode) IsJump() bool {
	return op.ArgKind() == LabelArg
}
