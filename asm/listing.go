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

package asm

import (
	"io"
	"strconv"

	"github.com/stackvm/svm/internal/ewriter"
	"github.com/stackvm/svm/vm"
)

// Disassemble writes a listing of the program to w, one instruction per line,
// prefixed with its index. Jump operands are shown as resolved instruction
// indices.
func Disassemble(p *vm.Program, w io.Writer) error {
	ew := ewriter.New(w)
	for pc := 0; pc < p.Len(); pc++ {
		ew.Printf("% 4d\t%s\n", pc, p.At(pc))
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

// TargetNames returns the label name Format uses for every jump target of p.
//
// A target keeps its declared label if that label resolves to it. Other targets
// get a synthesized "L<index>" name that does not clash with declared labels.
func TargetNames(p *vm.Program) map[int]string {
	labels := p.Labels()
	names := make(map[int]string)
	for name, idx := range labels {
		names[idx] = name
	}
	for _, t := range p.Targets() {
		if _, ok := names[t]; ok {
			continue
		}
		n := "L" + strconv.Itoa(t)
		for _, taken := labels[n]; taken; _, taken = labels[n] {
			n += "_"
		}
		labels[n] = t
		names[t] = n
	}
	return names
}

// Format writes p to w as assembly source that Assemble accepts. Reassembling
// the output yields the same instructions and jump indices.
//
// Label names are not part of resolved instructions, so Format only emits the
// labels needed by jumps: declared labels where they still resolve to their
// instruction, synthesized ones otherwise. Labels nobody jumps to are kept if
// they resolve to their own instruction. A jump to the end of the program
// adds a trailing labeled skip.
func Format(p *vm.Program, w io.Writer) error {
	ew := ewriter.New(w)
	names := TargetNames(p)
	for pc := 0; pc <= p.Len(); pc++ {
		name, labeled := names[pc]
		if pc == p.Len() {
			// jump to the end of the program
			if labeled {
				ew.Printf("%s:\tskip\n", name)
			}
			break
		}
		in := p.At(pc)
		if labeled {
			ew.WriteString(name)
			ew.WriteString(":")
		}
		ew.WriteString("\t")
		ew.WriteString(in.Op.Keyword())
		switch {
		case in.Op.IsJump():
			ew.WriteString(" ")
			ew.WriteString(names[int(in.Arg.Value)])
		case in.Arg.Kind == vm.IntArg:
			ew.WriteString(" ")
			ew.WriteString(strconv.Itoa(int(in.Arg.Value)))
		}
		ew.WriteString("\n")
		if ew.Err != nil {
			return ew.Err
		}
	}
	return ew.Err
}
