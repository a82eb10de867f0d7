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
	"text/scanner"
	"unicode"

	"github.com/stackvm/svm/vm"
)

// Kind is the kind of a Token.
type Kind int

// Token kinds.
const (
	EOF     Kind = iota // end of input
	EOL                 // end of line
	Ident               // identifier used as a jump target
	Label               // label declaration, "name:"
	Num                 // decimal integer literal
	Keyword             // opcode keyword
	Illegal             // unrecognized character
)

var kindNames = [...]string{
	EOF:     "EOF",
	EOL:     "EOL",
	Ident:   "ID",
	Label:   "LABEL",
	Num:     "NUM",
	Keyword: "KEYWORD",
	Illegal: "ERR",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Token is a lexical token.
type Token struct {
	Kind Kind
	Op   vm.Opcode // Keyword tokens only
	Text string    // lexeme; the label name without its colon for Label tokens
	Pos  scanner.Position
}

func (t Token) String() string {
	switch t.Kind {
	case EOF, EOL:
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Text + ")"
}

// Lexer splits SVM assembly source into tokens.
type Lexer struct {
	s scanner.Scanner
}

// NewLexer returns a Lexer reading from r. The name is used in token
// positions.
func NewLexer(name string, r io.Reader) *Lexer {
	l := new(Lexer)
	l.s.Init(r)
	l.s.Filename = name
	l.s.Mode = scanner.ScanIdents | scanner.ScanInts
	l.s.Whitespace = scanner.GoWhitespace &^ (1 << '\n')
	// errors are reported through Illegal tokens
	l.s.Error = func(*scanner.Scanner, string) {}
	return l
}

func isDecimal(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Next returns the next token. Once the end of input is reached, Next keeps
// returning EOF tokens.
func (l *Lexer) Next() Token {
	for {
		tok := l.s.Scan()
		pos := l.s.Position
		text := l.s.TokenText()

		switch tok {
		case scanner.EOF:
			return Token{Kind: EOF, Pos: pos}
		case '\n':
			return Token{Kind: EOL, Pos: pos}
		case '#':
			for ch := l.s.Peek(); ch != '\n' && ch != scanner.EOF; ch = l.s.Peek() {
				l.s.Next()
			}
			continue
		case scanner.Ident:
			if l.s.Peek() == ':' {
				l.s.Next()
				return Token{Kind: Label, Text: text, Pos: pos}
			}
			if op, ok := vm.Lookup(text); ok {
				return Token{Kind: Keyword, Op: op, Text: text, Pos: pos}
			}
			return Token{Kind: Ident, Text: text, Pos: pos}
		case scanner.Int:
			if !isDecimal(text) {
				return Token{Kind: Illegal, Text: text, Pos: pos}
			}
			return Token{Kind: Num, Text: text, Pos: pos}
		case '-', '+':
			if unicode.IsDigit(l.s.Peek()) && l.s.Scan() == scanner.Int {
				n := l.s.TokenText()
				if isDecimal(n) {
					return Token{Kind: Num, Text: text + n, Pos: pos}
				}
				return Token{Kind: Illegal, Text: text + n, Pos: pos}
			}
			return Token{Kind: Illegal, Text: text, Pos: pos}
		default:
			return Token{Kind: Illegal, Text: string(tok), Pos: pos}
		}
	}
}
