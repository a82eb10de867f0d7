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

// Package vm implements the SVM stack machine: the instruction set, program
// loading with label resolution, and the execution engine.
//
// The machine has an operand stack of Cells, eight general purpose registers
// numbered 0 to 7 and a program counter. There is no halt instruction: a
// program stops when the program counter moves past the last instruction.
//
// Instruction set. TOS is the value on top of the stack, NOS the next one.
//
//	opcode	asm	arg	stack	description
//	------	---	---	-----	------------------------------------------------
//	0	push	n	-n	push n
//	1	pop		n-	drop TOS
//	2	dup		n-nn	duplicate TOS
//	3	swap		xy-yx	swap TOS and NOS
//	4	add		xy-z	NOS + TOS
//	5	sub		xy-z	NOS - TOS
//	6	mult		xy-z	NOS * TOS
//	7	div		xy-z	NOS / TOS, truncated toward zero
//	8	goto	label		jump to label
//	9	jmpeq	label	xy-	jump to label if NOS == TOS
//	10	jmpgt	label	xy-	jump to label if NOS > TOS
//	11	jmpge	label	xy-	jump to label if NOS >= TOS
//	12	jmplt	label	xy-	jump to label if NOS < TOS
//	13	jmple	label	xy-	jump to label if NOS <= TOS
//	14	skip			no-op
//	15	store	r	n-	pop TOS into register r
//	16	load	r	-n	push the value of register r
//	17	print			print the stack, top first
//
// Conditional jumps always drop both operands, whether the jump is taken or
// not.
//
// Programs are usually built with the asm package. NewProgram can also be used
// directly with hand built instruction lists.
//
// Runtime faults (stack underflow, invalid register, division by zero) stop
// the machine and are reported as an *Error. Use errors.Is with the ErrXXX
// variables to tell them apart.
package vm
