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

// Package asm provides the SVM assembler: a lexer, a parser and listing
// functions for the vm package.
//
// Source format:
//
// A program is a sequence of lines. Each line holds at most one instruction:
//
//	[label:] keyword [operand] [# comment]
//
// Keywords are case sensitive:
//
//	push n    pop       dup       swap
//	add       sub       mult      div
//	goto l    jmpeq l   jmpgt l   jmpge l   jmplt l   jmple l
//	skip      store r   load r    print
//
// The integer operand of push, store and load is a decimal number with an
// optional sign. The operand of a jump is a label name. A label is an
// identifier immediately followed by a colon, and names the instruction on the
// same line. Identifiers start with a letter or an underscore, followed by
// letters, digits or underscores.
//
// Blank lines and comments are ignored. The last line does not need to be
// terminated by a new line.
//
// Example:
//
//	        push 10
//	        store 0         # r0 = 10
//	loop:   load 0
//	        push 1
//	        sub
//	        dup
//	        store 0
//	        push 0
//	        jmpgt loop      # while r0 > 0
//
// Labels:
//
// Jump targets are resolved once the whole program is parsed, so forward
// references are allowed. A missing label is an error. If a label is declared
// more than once, the last declaration wins unless Assemble is given
// vm.RejectDuplicateLabels().
//
// Errors:
//
// Assembly stops at the first error. Errors are of type *Error and carry the
// source position of the offending token.
package asm
