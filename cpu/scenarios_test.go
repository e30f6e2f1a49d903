// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/ebsmith-labs/apex6502/cpu"
)

// Scenario 1: simple binary add.
func TestScenarioSimpleAdd(t *testing.T) {
	code := []byte{0xa9, 0x05, 0x69, 0x03, 0x00} // LDA #$05; ADC #$03; BRK
	c, _ := newCPU(cpu.CPU6502, code, 0x0400)
	run(t, c, 2)

	expectA(t, c, 0x08)
	if c.Reg.Sign || c.Reg.Zero || c.Reg.Carry || c.Reg.Overflow {
		t.Errorf("expected all flags clear, got N=%v Z=%v C=%v V=%v",
			c.Reg.Sign, c.Reg.Zero, c.Reg.Carry, c.Reg.Overflow)
	}
}

// Scenario 2: BCD add, NMOS vs CMOS N/Z timing.
func TestScenarioBCDAdd(t *testing.T) {
	code := []byte{0xf8, 0xa9, 0x19, 0x69, 0x28, 0x00} // SED; LDA #$19; ADC #$28; BRK

	nmos, _ := newCPU(cpu.CPU6502, code, 0x0400)
	run(t, nmos, 3)
	expectA(t, nmos, 0x47)
	if nmos.Reg.Carry {
		t.Error("NMOS: expected carry clear")
	}
	if !nmos.Reg.Decimal {
		t.Error("NMOS: expected decimal mode set")
	}
	if nmos.Reg.Sign || nmos.Reg.Zero {
		t.Errorf("NMOS: expected N=0 Z=0, got N=%v Z=%v", nmos.Reg.Sign, nmos.Reg.Zero)
	}

	cmos, _ := newCPU(cpu.CPU65C02, code, 0x0400)
	run(t, cmos, 3)
	expectA(t, cmos, 0x47)
	if cmos.Reg.Sign || cmos.Reg.Zero {
		t.Errorf("CMOS: expected N=0 Z=0 (post-correction), got N=%v Z=%v", cmos.Reg.Sign, cmos.Reg.Zero)
	}
	if cmos.Cycles != nmos.Cycles+1 {
		t.Errorf("CMOS decimal ADC should cost one more cycle: NMOS %d, CMOS %d", nmos.Cycles, cmos.Cycles)
	}
}

// Scenario 3: BCD add with carry out of the high digit.
func TestScenarioBCDAddWithCarry(t *testing.T) {
	code := []byte{0xf8, 0xa9, 0x58, 0x69, 0x46} // SED; LDA #$58; ADC #$46
	c, _ := newCPU(cpu.CPU6502, code, 0x0400)
	run(t, c, 3)

	expectA(t, c, 0x04)
	if !c.Reg.Carry {
		t.Error("expected carry set")
	}
}

// Scenario 4: absolute-indirect JMP page-wrap bug, NMOS vs CMOS.
func TestScenarioPageWrapBug(t *testing.T) {
	code := []byte{0x6c, 0xff, 0x12} // JMP ($12FF)

	nmos, mem := newCPU(cpu.CPU6502, code, 0x0400)
	mem.StoreByte(0x1200, 0x12)
	mem.StoreByte(0x1201, 0x34)
	mem.StoreByte(0x12ff, 0xcd)
	run(t, nmos, 1)
	expectPC(t, nmos, 0x12cd)

	// The CMOS fix reads the high byte from 0x1300 (one past the pointer)
	// instead of wrapping back to 0x1200, so the low/high bytes that
	// produce the effective address live at different offsets than NMOS.
	cmos, mem2 := newCPU(cpu.CPU65C02, code, 0x0400)
	mem2.StoreByte(0x12ff, 0x56)
	mem2.StoreByte(0x1300, 0x34)
	run(t, cmos, 1)
	expectPC(t, cmos, 0x3456)
}

// Scenario 5: a JMP to its own address halts immediately.
func TestScenarioTightLoopHalt(t *testing.T) {
	code := []byte{0x4c, 0x00, 0x04} // JMP $0400
	c, _ := newCPU(cpu.CPU6502, code, 0x0400)
	if !c.Execute() {
		t.Error("expected halt")
	}
	expectPC(t, c, 0x0400)
}
