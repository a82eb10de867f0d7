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
	"strconv"
	"strings"
)

// Operand is the optional argument of an Instruction.
type Operand struct {
	Kind  ArgKind
	Value Cell   // IntArg value
	Label string // LabelArg jump target
}

// Int returns an integer immediate operand.
func Int(v Cell) Operand {
	return Operand{Kind: IntArg, Value: v}
}

// Target returns a symbolic jump target operand.
func Target(label string) Operand {
	return Operand{Kind: LabelArg, Label: label}
}

func (o Operand) String() string {
	switch o.Kind {
	case IntArg:
		return strconv.Itoa(int(o.Value))
	case LabelArg:
		return o.Label
	}
	return ""
}

// Instruction is a single executable unit.
type Instruction struct {
	Op    Opcode
	Label string // empty if the instruction has no label
	Arg   Operand
}

// String renders the instruction in assembler syntax, e.g. "loop: jmplt loop".
func (in Instruction) String() string {
	var b strings.Builder
	if in.Label != "" {
		b.WriteString(in.Label)
		b.WriteString(": ")
	}
	b.WriteString(in.Op.Keyword())
	if in.Arg.Kind != NoArg {
		b.WriteByte(' ')
		b.WriteString(in.Arg.String())
	}
	return b.String()
}
