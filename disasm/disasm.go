// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a disassembler for the 6502/65C02-family
// instruction set emulated by the cpu package.
package disasm

import (
	"fmt"

	"github.com/ebsmith-labs/apex6502/cpu"
)

// Disassembler formatting for each addressing mode, indexed by cpu.Mode.
var modeFormat = []string{
	"#$%s",    // IMM
	"%s",      // IMP
	"$%s",     // REL
	"$%s",     // ZPG
	"$%s,X",   // ZPX
	"$%s,Y",   // ZPY
	"$%s",     // ABS
	"$%s,X",   // ABX
	"$%s,Y",   // ABY
	"($%s)",   // ZPIND
	"($%s,X)", // IDX
	"($%s),Y", // IDY
	"%s",      // ACC
	"($%s)",   // ABSIND
	"($%s,X)", // ABXIND
	"$%s,$%s", // ZPREL (zero page, then relative target)
	"$%s",     // REL16
	"($%s),Y", // STVECY
}

var hex = "0123456789ABCDEF"

// hexString returns a hexadecimal string representation of the byte slice,
// most significant byte first.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the machine code in memory 'm' at address 'addr' using the
// instruction set 'set'. It returns a 'line' string representing the
// disassembled instruction and a 'next' address that starts the following
// line of machine code.
func Disassemble(m cpu.Memory, set *cpu.InstructionSet, addr uint16) (line string, next uint16) {
	opcode := m.LoadByte(addr)
	inst := set.Lookup(opcode)

	var buf [2]byte
	operand := buf[:inst.Length-1]
	m.LoadBytes(addr+1, operand)

	switch inst.Mode {
	case cpu.REL:
		braddr := int(addr) + int(inst.Length) + int(operand[0])
		if operand[0] > 0x7f {
			braddr -= 256
		}
		format := inst.Name + " " + modeFormat[inst.Mode]
		line = fmt.Sprintf(format, hexString([]byte{byte(braddr), byte(braddr >> 8)}))
	case cpu.ZPREL:
		braddr := int(addr) + int(inst.Length) + int(operand[1])
		if operand[1] > 0x7f {
			braddr -= 256
		}
		format := inst.Name + " " + modeFormat[inst.Mode]
		line = fmt.Sprintf(format, hexString(operand[:1]), hexString([]byte{byte(braddr), byte(braddr >> 8)}))
	default:
		format := inst.Name + " " + modeFormat[inst.Mode]
		line = fmt.Sprintf(format, hexString(operand))
	}

	next = addr + uint16(inst.Length)
	return line, next
}
