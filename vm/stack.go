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
	"strconv"

	"github.com/stackvm/svm/internal/ewriter"
)

// Depth returns the number of items on the stack.
func (i *Instance) Depth() int {
	return len(i.data)
}

// Data returns a copy of the stack, bottom first.
func (i *Instance) Data() []Cell {
	r := make([]Cell, len(i.data))
	copy(r, i.data)
	return r
}

// Push pushes the argument on top of the stack.
func (i *Instance) Push(v Cell) {
	i.data = append(i.data, v)
}

// Pop pops the value on top of the stack and returns it.
func (i *Instance) Pop() (Cell, error) {
	sp := len(i.data) - 1
	if sp < 0 {
		return 0, ErrStackUnderflow
	}
	v := i.data[sp]
	i.data = i.data[:sp]
	return v, nil
}

// Top returns the value on top of the stack without removing it.
func (i *Instance) Top() (Cell, error) {
	if len(i.data) == 0 {
		return 0, ErrStackUnderflow
	}
	return i.data[len(i.data)-1], nil
}

// pop2 pops b (top) then a (next) and returns them as a, b.
func (i *Instance) pop2() (a, b Cell) {
	sp := len(i.data)
	a, b = i.data[sp-2], i.data[sp-1]
	i.data = i.data[:sp-2]
	return a, b
}

// PrintStack writes the stack contents, top first, to w in the form
// "stack [ 3 2 1 ]", followed by a new line. The stack is left untouched.
func (i *Instance) PrintStack(w io.Writer) error {
	ew := ewriter.New(w)
	ew.WriteString("stack [ ")
	for sp := len(i.data) - 1; sp >= 0; sp-- {
		ew.WriteString(strconv.Itoa(int(i.data[sp])))
		ew.Write([]byte{' '})
	}
	ew.WriteString("]\n")
	return ew.Err
}
