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

import "sort"

// Program is a resolved, immutable instruction sequence. It is safe to share a
// Program between several Instances.
type Program struct {
	insts  []Instruction
	labels map[string]int
}

type loader struct {
	rejectDuplicates bool
}

// LoadOption configures NewProgram.
type LoadOption func(*loader)

// RejectDuplicateLabels makes NewProgram fail with ErrDuplicateLabel when the
// same label is declared twice. By default the last declaration wins.
func RejectDuplicateLabels() LoadOption {
	return func(l *loader) { l.rejectDuplicates = true }
}

// NewProgram validates insts, resolves labels and returns the resulting
// Program. The insts slice is copied and left untouched.
//
// Every LabelArg operand is rewritten into an IntArg holding the zero based
// index of the instruction carrying that label. Unknown targets fail with
// ErrLabelNotFound.
func NewProgram(insts []Instruction, opts ...LoadOption) (*Program, error) {
	var ld loader
	for _, opt := range opts {
		opt(&ld)
	}

	p := &Program{
		insts:  make([]Instruction, len(insts)),
		labels: make(map[string]int),
	}
	copy(p.insts, insts)

	for i, in := range p.insts {
		if err := validate(in); err != nil {
			return nil, &LoadError{Index: i, Err: err}
		}
		if in.Label == "" {
			continue
		}
		if _, ok := p.labels[in.Label]; ok && ld.rejectDuplicates {
			return nil, &LoadError{Index: i, Label: in.Label, Err: ErrDuplicateLabel}
		}
		p.labels[in.Label] = i
	}

	for i := range p.insts {
		in := &p.insts[i]
		if !in.Op.IsJump() {
			continue
		}
		if in.Arg.Kind == IntArg {
			// jumping to Len() is a valid way to halt
			if in.Arg.Value < 0 || int(in.Arg.Value) > len(p.insts) {
				return nil, &LoadError{Index: i, Err: ErrOperand}
			}
			continue
		}
		t, ok := p.labels[in.Arg.Label]
		if !ok {
			return nil, &LoadError{Index: i, Label: in.Arg.Label, Err: ErrLabelNotFound}
		}
		in.Arg = Int(Cell(t))
	}
	return p, nil
}

func validate(in Instruction) error {
	if !in.Op.Valid() {
		return ErrInvalidOpcode
	}
	want := in.Op.ArgKind()
	switch in.Arg.Kind {
	case want:
		return nil
	case IntArg:
		// already resolved jump target
		if want == LabelArg {
			return nil
		}
	}
	return ErrOperand
}

// Len returns the number of instructions.
func (p *Program) Len() int { return len(p.insts) }

// At returns the instruction at index pc.
func (p *Program) At(pc int) Instruction { return p.insts[pc] }

// Instructions returns a copy of the resolved instructions.
func (p *Program) Instructions() []Instruction {
	r := make([]Instruction, len(p.insts))
	copy(r, p.insts)
	return r
}

// Label returns the index bound to the given label name.
func (p *Program) Label(name string) (int, bool) {
	i, ok := p.labels[name]
	return i, ok
}

// Labels returns a copy of the label table.
func (p *Program) Labels() map[string]int {
	m := make(map[string]int, len(p.labels))
	for k, v := range p.labels {
		m[k] = v
	}
	return m
}

// Targets returns the sorted, deduplicated list of jump target indices.
func (p *Program) Targets() []int {
	seen := make(map[int]bool)
	var ts []int
	for _, in := range p.insts {
		if !in.Op.IsJump() {
			continue
		}
		t := int(in.Arg.Value)
		if !seen[t] {
			seen[t] = true
			ts = append(ts, t)
		}
	}
	sort.Ints(ts)
	return ts
}
