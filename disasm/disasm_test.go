// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm_test

import (
	"testing"

	"github.com/ebsmith-labs/apex6502/cpu"
	"github.com/ebsmith-labs/apex6502/disasm"
)

func TestDisassembleImmediate(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x1000, []byte{0xa9, 0x5e}) // LDA #$5e
	set := cpu.GetInstructionSet(cpu.CPU6502)

	line, next := disasm.Disassemble(mem, set, 0x1000)
	if line != "LDA #$5E" {
		t.Errorf("exp %q, got %q", "LDA #$5E", line)
	}
	if next != 0x1002 {
		t.Errorf("exp next $1002, got $%04X", next)
	}
}

func TestDisassembleBranch(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x1000, []byte{0xf0, 0xfe}) // BEQ -2
	set := cpu.GetInstructionSet(cpu.CPU6502)

	line, _ := disasm.Disassemble(mem, set, 0x1000)
	if line != "BEQ $1000" {
		t.Errorf("exp %q, got %q", "BEQ $1000", line)
	}
}

func TestDisassembleZeroPageIndirectCMOS(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x1000, []byte{0xb2, 0x10}) // LDA ($10)
	set := cpu.GetInstructionSet(cpu.CPU65C02)

	line, _ := disasm.Disassemble(mem, set, 0x1000)
	if line != "LDA ($10)" {
		t.Errorf("exp %q, got %q", "LDA ($10)", line)
	}
}
