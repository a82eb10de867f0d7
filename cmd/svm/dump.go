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
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stackvm/svm/vm"
)

// listingTable renders the program as a table, for display on a terminal.
func listingTable(p *vm.Program) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"PC", "Label", "Instruction", "Operand"})
	for pc := 0; pc < p.Len(); pc++ {
		in := p.At(pc)
		var arg string
		switch {
		case in.Op.IsJump():
			arg = "-> " + in.Arg.String()
		case in.Arg.Kind == vm.IntArg:
			arg = in.Arg.String()
		}
		t.AppendRow(table.Row{pc, in.Label, in.Op.Keyword(), arg})
	}
	return t.Render()
}

// stateTable renders the registers and the stack of i.
func stateTable(i *vm.Instance) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("pc=%d steps=%d", i.PC, i.InstructionCount())

	header := table.Row{""}
	row := table.Row{"Registers"}
	for r, v := range i.Registers() {
		header = append(header, "R"+strconv.Itoa(r))
		row = append(row, v)
	}
	t.AppendHeader(header)
	t.AppendRow(row)

	stack := table.Row{"Stack"}
	data := i.Data()
	for sp := len(data) - 1; sp >= 0; sp-- {
		stack = append(stack, data[sp])
	}
	t.AppendRow(stack)
	return t.Render()
}
