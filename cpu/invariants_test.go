// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"math/rand"
	"testing"

	"github.com/ebsmith-labs/apex6502/cpu"
)

// EOR M twice returns A unchanged.
func TestInvariantDoubleEORIsIdentity(t *testing.T) {
	code := []byte{
		0xa9, 0x5a, // LDA #$5a
		0x49, 0xc3, // EOR #$c3
		0x49, 0xc3, // EOR #$c3
	}
	c, _ := newCPU(cpu.CPU6502, code, 0x1000)
	run(t, c, 3)
	expectA(t, c, 0x5a)
}

// PHA;PLA preserves A and the stack pointer.
func TestInvariantPushPullIsIdentity(t *testing.T) {
	code := []byte{
		0xa9, 0x37, // LDA #$37
		0x48, // PHA
		0xa9, 0x00, // LDA #$00 -- clobber A so PLA has to do real work
		0x68, // PLA
	}
	c, _ := newCPU(cpu.CPU6502, code, 0x1000)
	sp := c.Reg.SP
	run(t, c, 4)
	expectA(t, c, 0x37)
	if c.Reg.SP != sp {
		t.Errorf("expected SP restored to $%02X, got $%02X", sp, c.Reg.SP)
	}
}

// SEC;CLC leaves carry clear.
func TestInvariantSecThenClc(t *testing.T) {
	code := []byte{0x38, 0x18} // SEC; CLC
	c, _ := newCPU(cpu.CPU6502, code, 0x1000)
	run(t, c, 2)
	if c.Reg.Carry {
		t.Error("expected carry clear after SEC;CLC")
	}
}

// TAX;TXA and TAY;TYA leave A unchanged.
func TestInvariantTransferRoundTrip(t *testing.T) {
	code := []byte{
		0xa9, 0x81, // LDA #$81
		0xaa, // TAX
		0xa9, 0x00, // LDA #$00
		0x8a, // TXA
		0xa9, 0x81, // LDA #$81
		0xa8, // TAY
		0xa9, 0x00, // LDA #$00
		0x98, // TYA
	}
	c, _ := newCPU(cpu.CPU6502, code, 0x1000)
	run(t, c, 8)
	expectA(t, c, 0x81)
}

// LDA #$00;ADC #$00 with carry in clear yields A=0, Z=1, C=0, V=0.
func TestInvariantZeroPlusZero(t *testing.T) {
	code := []byte{
		0x18,       // CLC
		0xa9, 0x00, // LDA #$00
		0x69, 0x00, // ADC #$00
	}
	c, _ := newCPU(cpu.CPU6502, code, 0x1000)
	run(t, c, 3)
	expectA(t, c, 0x00)
	if !c.Reg.Zero || c.Reg.Carry || c.Reg.Overflow {
		t.Errorf("exp Z=1 C=0 V=0, got Z=%v C=%v V=%v", c.Reg.Zero, c.Reg.Carry, c.Reg.Overflow)
	}
}

// Z and N track the value loaded by LDA.
func TestInvariantZeroAndSignFlagsFollowLoad(t *testing.T) {
	cases := []struct {
		value    byte
		wantZero bool
		wantSign bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x80, false, true},
		{0xff, false, true},
	}
	for _, tc := range cases {
		code := []byte{0xa9, tc.value} // LDA #imm
		c, _ := newCPU(cpu.CPU6502, code, 0x1000)
		run(t, c, 1)
		if c.Reg.Zero != tc.wantZero || c.Reg.Sign != tc.wantSign {
			t.Errorf("LDA #$%02X: exp Z=%v N=%v, got Z=%v N=%v",
				tc.value, tc.wantZero, tc.wantSign, c.Reg.Zero, c.Reg.Sign)
		}
	}
}

// SavePS always sets ReservedBit and sets BreakBit when asked to (as the
// BRK and PHP paths do); RestorePS(SavePS(x)) reproduces every other flag.
func TestInvariantStatusRoundTrip(t *testing.T) {
	var r cpu.Registers
	r.Carry = true
	r.Zero = false
	r.InterruptDisable = true
	r.Decimal = true
	r.Overflow = false
	r.Sign = true

	saved := r.SavePS(true)
	if saved&cpu.ReservedBit == 0 {
		t.Error("expected reserved bit always set")
	}
	if saved&cpu.BreakBit == 0 {
		t.Error("expected break bit set when requested")
	}

	var r2 cpu.Registers
	r2.RestorePS(saved)
	if r2.Carry != r.Carry || r2.InterruptDisable != r.InterruptDisable ||
		r2.Decimal != r.Decimal || r2.Sign != r.Sign || r2.Zero != r.Zero ||
		r2.Overflow != r.Overflow {
		t.Error("RestorePS(SavePS(x)) should reproduce every flag except break")
	}
}

// Catalog lookup is a pure function of the variant set: looking up the
// same architecture twice returns instructions with identical metadata.
func TestInvariantCatalogLookupIsStable(t *testing.T) {
	set1 := cpu.GetInstructionSet(cpu.CPU65C02)
	set2 := cpu.GetInstructionSet(cpu.CPU65C02)
	for op := 0; op < 256; op++ {
		i1, i2 := set1.Lookup(byte(op)), set2.Lookup(byte(op))
		if i1.Name != i2.Name || i1.Mode != i2.Mode || i1.Cycles != i2.Cycles {
			t.Fatalf("opcode $%02X: catalog lookup not stable across calls", op)
		}
	}
}

// referenceBCDAdd computes decimal-mode ADC the straightforward way, digit
// by digit, as an independent check on the patent-form implementation in
// adc().
func referenceBCDAdd(a, m byte, carryIn bool) (result byte, carryOut bool) {
	lo := int(a&0x0f) + int(m&0x0f)
	if carryIn {
		lo++
	}
	carryLo := false
	if lo > 9 {
		lo -= 10
		carryLo = true
	}
	hi := int(a>>4) + int(m>>4)
	if carryLo {
		hi++
	}
	carryOut = hi > 9
	if carryOut {
		hi -= 10
	}
	result = byte(hi<<4) | byte(lo)
	return result, carryOut
}

// Randomized decimal-mode ADC check: for many random (A, M, C) triples,
// the emulator's BCD result matches an independently computed reference,
// as long as both input nibbles are valid decimal digits (undefined BCD
// inputs are explicitly out of scope).
func TestInvariantDecimalAddMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := byte(rng.Intn(10))<<4 | byte(rng.Intn(10))
		m := byte(rng.Intn(10))<<4 | byte(rng.Intn(10))
		carryIn := rng.Intn(2) == 1

		code := []byte{
			0xf8,       // SED
			0xa9, a,    // LDA #a
			0x69, m, // ADC #m
		}
		c, _ := newCPU(cpu.CPU6502, code, 0x1000)
		c.Reg.Carry = false
		run(t, c, 1) // SED
		c.Reg.Carry = carryIn
		run(t, c, 2) // LDA, ADC

		wantResult, wantCarry := referenceBCDAdd(a, m, carryIn)
		if c.Reg.A != wantResult {
			t.Fatalf("BCD %02X+%02X+%v: exp A=$%02X, got $%02X", a, m, carryIn, wantResult, c.Reg.A)
		}
		if c.Reg.Carry != wantCarry {
			t.Fatalf("BCD %02X+%02X+%v: exp C=%v, got %v", a, m, carryIn, wantCarry, c.Reg.Carry)
		}
	}
}

// Exhaustive invariant sweep: after any LDA #imm, Z reflects result==0 and
// N reflects bit 7 of the result, for every possible immediate byte.
func TestInvariantLoadFlagsExhaustive(t *testing.T) {
	for v := 0; v < 256; v++ {
		code := []byte{0xa9, byte(v)}
		c, _ := newCPU(cpu.CPU6502, code, 0x1000)
		run(t, c, 1)
		if want := v == 0; c.Reg.Zero != want {
			t.Fatalf("LDA #$%02X: Z exp %v, got %v", v, want, c.Reg.Zero)
		}
		if want := v&0x80 != 0; c.Reg.Sign != want {
			t.Fatalf("LDA #$%02X: N exp %v, got %v", v, want, c.Reg.Sign)
		}
	}
}
