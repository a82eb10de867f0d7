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
	"strconv"
	"text/scanner"

	"github.com/stackvm/svm/vm"
)

type parser struct {
	lx    *Lexer
	cur   Token
	prev  Token
	insts []vm.Instruction
	pos   []scanner.Position // source position of each instruction
	err   *Error
}

func newParser(name string, r io.Reader) *parser {
	return &parser{lx: NewLexer(name, r)}
}

func (p *parser) fail(kind ErrorKind, tok Token, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = &Error{Pos: tok.Pos, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) advance() {
	if p.err != nil {
		return
	}
	p.prev, p.cur = p.cur, p.lx.Next()
	if p.cur.Kind == Illegal {
		p.fail(LexicalError, p.cur, "unrecognized character %s", strconv.Quote(p.cur.Text))
	}
}

func (p *parser) check(k Kind) bool {
	return p.err == nil && p.cur.Kind == k
}

func (p *parser) match(k Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// parseInstruction parses a single line: [label:] keyword [operand] EOL
func (p *parser) parseInstruction() {
	var in vm.Instruction
	start := p.cur.Pos

	if p.match(Label) {
		in.Label = p.prev.Text
	}
	if !p.check(Keyword) {
		p.fail(SyntaxError, p.cur, "unrecognized instruction %s", p.cur)
		return
	}
	in.Op = p.cur.Op
	p.advance()

	switch in.Op.ArgKind() {
	case vm.IntArg:
		if !p.check(Num) {
			p.fail(SyntaxError, p.cur, "%s: expected number, found %s", in.Op.Keyword(), p.cur)
			return
		}
		n, err := strconv.ParseInt(p.cur.Text, 10, 32)
		if err != nil {
			p.fail(SyntaxError, p.cur, "%s: number out of range: %s", in.Op.Keyword(), p.cur.Text)
			return
		}
		in.Arg = vm.Int(vm.Cell(n))
		p.advance()
	case vm.LabelArg:
		if !p.check(Ident) {
			p.fail(SyntaxError, p.cur, "%s: expected identifier, found %s", in.Op.Keyword(), p.cur)
			return
		}
		in.Arg = vm.Target(p.cur.Text)
		p.advance()
	}

	if !p.match(EOL) && !p.check(EOF) {
		p.fail(SyntaxError, p.cur, "expected end of line, found %s", p.cur)
		return
	}
	if p.err == nil {
		p.insts = append(p.insts, in)
		p.pos = append(p.pos, start)
	}
}

// parse consumes the whole input. Blank lines are skipped and the last line
// may be terminated by the end of input.
func (p *parser) parse() error {
	p.advance()
	for p.err == nil && !p.check(EOF) {
		if p.match(EOL) {
			continue
		}
		p.parseInstruction()
	}
	if p.err != nil {
		return p.err
	}
	return nil
}

// Parse reads assembly source from r and returns the unresolved instruction
// list. Jump operands are left as vm.LabelArg operands; use vm.NewProgram to
// resolve them, or Assemble to do both in one step.
//
// Parsing stops at the first error, which is an *Error.
func Parse(name string, r io.Reader) ([]vm.Instruction, error) {
	p := newParser(name, r)
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.insts, nil
}
