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

package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stackvm/svm/vm"
)

var _ = Describe("Opcodes", func() {
	It("should map keywords to opcodes", func() {
		op, ok := vm.Lookup("mult")
		Expect(ok).To(BeTrue())
		Expect(op).To(Equal(vm.OpMul))
		Expect(op.String()).To(Equal("mul"))
		Expect(op.Keyword()).To(Equal("mult"))

		_, ok = vm.Lookup("mul")
		Expect(ok).To(BeFalse())
		_, ok = vm.Lookup("PUSH")
		Expect(ok).To(BeFalse())
	})

	It("should declare operand kinds", func() {
		for _, op := range []vm.Opcode{vm.OpPop, vm.OpDup, vm.OpSwap, vm.OpAdd, vm.OpSub,
			vm.OpMul, vm.OpDiv, vm.OpSkip, vm.OpPrint} {
			Expect(op.ArgKind()).To(Equal(vm.NoArg), op.String())
		}
		for _, op := range []vm.Opcode{vm.OpPush, vm.OpStore, vm.OpLoad} {
			Expect(op.ArgKind()).To(Equal(vm.IntArg), op.String())
		}
		for _, op := range []vm.Opcode{vm.OpGoto, vm.OpJmpEq, vm.OpJmpGt, vm.OpJmpGe,
			vm.OpJmpLt, vm.OpJmpLe} {
			Expect(op.ArgKind()).To(Equal(vm.LabelArg), op.String())
			Expect(op.IsJump()).To(BeTrue())
		}
	})

	It("should reject unknown opcodes", func() {
		op := vm.OpPrint + 1
		Expect(op.Valid()).To(BeFalse())
		Expect(op.String()).To(Equal("op?"))
	})
})

var _ = Describe("NewProgram", func() {
	It("should map labels to instruction indices", func() {
		p, err := vm.NewProgram([]vm.Instruction{
			{Op: vm.OpSkip, Label: "first"},
			{Op: vm.OpSkip},
			{Op: vm.OpGoto, Label: "third", Arg: vm.Target("first")},
			{Op: vm.OpJmpEq, Arg: vm.Target("third")},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Labels()).To(Equal(map[string]int{"first": 0, "third": 2}))
		Expect(p.Len()).To(Equal(4))
		Expect(p.At(2).Arg).To(Equal(vm.Int(0)))
		Expect(p.At(3).Arg).To(Equal(vm.Int(2)))
		Expect(p.Targets()).To(Equal([]int{0, 2}))
	})

	It("should not modify its input", func() {
		in := []vm.Instruction{{Op: vm.OpGoto, Label: "l", Arg: vm.Target("l")}}
		_, err := vm.NewProgram(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(in[0].Arg).To(Equal(vm.Target("l")))
	})

	It("should protect its internals", func() {
		p, err := vm.NewProgram([]vm.Instruction{{Op: vm.OpSkip, Label: "l"}})
		Expect(err).NotTo(HaveOccurred())
		p.Labels()["l"] = 42
		p.Instructions()[0].Op = vm.OpPop
		idx, ok := p.Label("l")
		Expect(ok).To(BeTrue())
		Expect(idx).To(Equal(0))
		Expect(p.At(0).Op).To(Equal(vm.OpSkip))
	})

	It("should fail on unknown labels", func() {
		_, err := vm.NewProgram([]vm.Instruction{
			{Op: vm.OpSkip},
			{Op: vm.OpJmpGe, Arg: vm.Target("nowhere")},
		})
		Expect(err).To(MatchError(vm.ErrLabelNotFound))
		var le *vm.LoadError
		Expect(err).To(BeAssignableToTypeOf(le))
		le = err.(*vm.LoadError)
		Expect(le.Index).To(Equal(1))
		Expect(le.Label).To(Equal("nowhere"))
		Expect(err.Error()).To(Equal("instruction 1: label not found: nowhere"))
	})

	Context("with duplicate labels", func() {
		insts := []vm.Instruction{
			{Op: vm.OpPush, Label: "dup", Arg: vm.Int(1)},
			{Op: vm.OpPush, Label: "dup", Arg: vm.Int(2)},
			{Op: vm.OpGoto, Arg: vm.Target("dup")},
		}

		It("should let the last declaration win", func() {
			p, err := vm.NewProgram(insts)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Labels()).To(Equal(map[string]int{"dup": 1}))
			Expect(p.At(2).Arg).To(Equal(vm.Int(1)))
		})

		It("should fail when asked to", func() {
			_, err := vm.NewProgram(insts, vm.RejectDuplicateLabels())
			Expect(err).To(MatchError(vm.ErrDuplicateLabel))
			Expect(err.(*vm.LoadError).Index).To(Equal(1))
		})
	})

	DescribeTable("should validate instructions",
		func(in vm.Instruction, cause error) {
			_, err := vm.NewProgram([]vm.Instruction{{Op: vm.OpSkip}, in})
			Expect(err).To(MatchError(cause))
			Expect(err.(*vm.LoadError).Index).To(Equal(1))
		},
		Entry("unknown opcode", vm.Instruction{Op: vm.Opcode(200)}, vm.ErrInvalidOpcode),
		Entry("push without operand", vm.Instruction{Op: vm.OpPush}, vm.ErrOperand),
		Entry("pop with operand", vm.Instruction{Op: vm.OpPop, Arg: vm.Int(1)}, vm.ErrOperand),
		Entry("store with label", vm.Instruction{Op: vm.OpStore, Arg: vm.Target("x")}, vm.ErrOperand),
		Entry("goto without target", vm.Instruction{Op: vm.OpGoto}, vm.ErrOperand),
		Entry("negative target", vm.Instruction{Op: vm.OpGoto, Arg: vm.Int(-1)}, vm.ErrOperand),
		Entry("target past end", vm.Instruction{Op: vm.OpGoto, Arg: vm.Int(3)}, vm.ErrOperand),
	)

	It("should accept resolved jumps to the end of the program", func() {
		p, err := vm.NewProgram([]vm.Instruction{{Op: vm.OpGoto, Arg: vm.Int(1)}})
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Targets()).To(Equal([]int{1}))
	})
})
