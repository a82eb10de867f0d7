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

// The svm command assembles and runs an SVM assembly program. See the
// documentation of package github.com/stackvm/svm/asm for the source format.
//
// Usage:
//
//	svm [flags] file
//
//	-debug
//		  trace execution and print full error diagnostics
//	-dump
//		  dump registers and stack upon exit
//	-format
//		  print the program as assembly source and exit
//	-maxsteps n
//		  stop after n instructions (0 means no limit)
//	-q
//		  only print program output
//	-strict
//		  reject duplicate labels
//
// The program is read from standard input if file is "-".
//
// By default, svm prints the program listing, runs it, then prints the final
// stack, top first. When the standard output is a terminal, the listing is
// rendered as a table.
//
// -debug: every executed instruction is logged to standard error, and errors
// are printed with a stack trace.
//
// -format: the program is printed back as assembly source. Labels that no
// longer resolve to their instruction are dropped, and jump targets without a
// label are given one.
//
// -maxsteps: infinite loops run forever unless a limit is set. Reaching the
// limit is reported as a runtime error.
//
// Exit status:
//
//	0	success
//	1	usage or I/O error
//	2	assembly error (bad character, syntax, unknown label)
//	3	runtime error (stack underflow, invalid register, division by zero, step limit)
package main
