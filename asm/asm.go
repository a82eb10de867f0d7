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
	"fmt"
	"io"
	"text/scanner"

	"github.com/pkg/errors"
	"github.com/stackvm/svm/vm"
)

// ErrorKind classifies assembly errors.
type ErrorKind int

// Error kinds.
const (
	LexicalError ErrorKind = iota // unrecognized character
	SyntaxError                   // malformed instruction line
	ResolveError                  // program rejected by vm.NewProgram
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case ResolveError:
		return "resolve error"
	}
	return "error"
}

// Error is an assembly error, located in the source.
type Error struct {
	Pos  scanner.Position
	Kind ErrorKind
	Msg  string
	Err  error // underlying *vm.LoadError for ResolveError
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program with all jump targets resolved.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, is an *Error. Resolution failures also match
// the vm error variables, e.g. errors.Is(err, vm.ErrLabelNotFound).
func Assemble(name string, r io.Reader, opts ...vm.LoadOption) (*vm.Program, error) {
	p := newParser(name, r)
	if err := p.parse(); err != nil {
		return nil, err
	}
	prog, err := vm.NewProgram(p.insts, opts...)
	if err != nil {
		var le *vm.LoadError
		if !errors.As(err, &le) || le.Index >= len(p.pos) {
			return nil, errors.Wrap(err, name)
		}
		msg := le.Err.Error()
		if le.Label != "" {
			msg += ": " + le.Label
		}
		return nil, &Error{Pos: p.pos[le.Index], Kind: ResolveError, Msg: msg, Err: err}
	}
	return prog, nil
}
