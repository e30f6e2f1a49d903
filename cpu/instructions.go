// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "strings"

// VariantSet is a bitmask identifying which families of 6502-derived
// opcodes a CPU understands. Real chips combine these bits in fixed ways;
// the named combinations below mirror the silicon they describe.
type VariantSet uint8

// Variant bits. Base is the original NMOS 6502 instruction set; the rest
// layer CMOS and vendor extensions on top of it.
const (
	Base VariantSet = 1 << iota
	Rockwell
	Cmos
	WdcCmos
	Wdc16Bit
	Cbm65CE02
)

// Named variant combinations, one per real chip this emulator can model.
var (
	CPU6502      = Base
	CPUR6502     = Base | Rockwell
	CPU65C02     = Base | Cmos
	CPUR65C02    = Base | Cmos | Rockwell
	CPUWDC65C02  = Base | Cmos | Rockwell | WdcCmos
	CPUWDC65C816 = Base | Cmos | WdcCmos | Wdc16Bit
	CPU65CE02    = Base | Cmos | Rockwell | Cbm65CE02
)

// Has reports whether every bit in req is present in the set.
func (v VariantSet) Has(req VariantSet) bool {
	return v&req == req
}

// IsCMOS reports whether the variant set includes any CMOS behavior
// (decimal-mode N/Z-after-correction, cycle-exact JMP indirect, and so on).
func (v VariantSet) IsCMOS() bool {
	return v.Has(Cmos)
}

// An opsym is an internal symbol used to associate an opcode's data
// with its implementation.
type opsym byte

const (
	symADC opsym = iota
	symAND
	symASL
	symBBR
	symBBS
	symBCC
	symBCS
	symBEQ
	symBIT
	symBMI
	symBNE
	symBPL
	symBRA
	symBRK
	symBVC
	symBVS
	symCLC
	symCLD
	symCLI
	symCLV
	symCMP
	symCPX
	symCPY
	symDEC
	symDEX
	symDEY
	symEOR
	symINC
	symINX
	symINY
	symJMP
	symJSR
	symLDA
	symLDX
	symLDY
	symLSR
	symNOP
	symORA
	symPHA
	symPHP
	symPHX
	symPHY
	symPLA
	symPLP
	symPLX
	symPLY
	symRMB
	symROL
	symROR
	symRTI
	symRTS
	symSBC
	symSEC
	symSED
	symSEI
	symSMB
	symSTA
	symSTZ
	symSTX
	symSTY
	symTAX
	symTAY
	symTRB
	symTSB
	symTSX
	symTXA
	symTXS
	symTYA
)

type instfunc func(c *CPU, inst *Instruction, operand []byte)

// Emulator implementation for each opcode. fn[0] is used on NMOS chips,
// fn[1] on CMOS. A mnemonic available on both uses the same function in
// both slots; chip-specific quirks (decimal correction, the JMP indirect
// page-wrap bug) are handled inside that function via Variants.IsCMOS. A
// nil NMOS slot marks a CMOS-only mnemonic.
type opcodeImpl struct {
	sym  opsym
	name string
	fn   [2]instfunc // NMOS=0, CMOS=1
}

var impl = []opcodeImpl{
	{symADC, "ADC", [2]instfunc{(*CPU).adc, (*CPU).adc}},
	{symAND, "AND", [2]instfunc{(*CPU).and, (*CPU).and}},
	{symASL, "ASL", [2]instfunc{(*CPU).asl, (*CPU).asl}},
	{symBBR, "BBR", [2]instfunc{(*CPU).bbr, (*CPU).bbr}},
	{symBBS, "BBS", [2]instfunc{(*CPU).bbs, (*CPU).bbs}},
	{symBCC, "BCC", [2]instfunc{(*CPU).bcc, (*CPU).bcc}},
	{symBCS, "BCS", [2]instfunc{(*CPU).bcs, (*CPU).bcs}},
	{symBEQ, "BEQ", [2]instfunc{(*CPU).beq, (*CPU).beq}},
	{symBIT, "BIT", [2]instfunc{(*CPU).bit, (*CPU).bit}},
	{symBMI, "BMI", [2]instfunc{(*CPU).bmi, (*CPU).bmi}},
	{symBNE, "BNE", [2]instfunc{(*CPU).bne, (*CPU).bne}},
	{symBPL, "BPL", [2]instfunc{(*CPU).bpl, (*CPU).bpl}},
	{symBRA, "BRA", [2]instfunc{nil, (*CPU).bra}},
	{symBRK, "BRK", [2]instfunc{(*CPU).brk, (*CPU).brk}},
	{symBVC, "BVC", [2]instfunc{(*CPU).bvc, (*CPU).bvc}},
	{symBVS, "BVS", [2]instfunc{(*CPU).bvs, (*CPU).bvs}},
	{symCLC, "CLC", [2]instfunc{(*CPU).clc, (*CPU).clc}},
	{symCLD, "CLD", [2]instfunc{(*CPU).cld, (*CPU).cld}},
	{symCLI, "CLI", [2]instfunc{(*CPU).cli, (*CPU).cli}},
	{symCLV, "CLV", [2]instfunc{(*CPU).clv, (*CPU).clv}},
	{symCMP, "CMP", [2]instfunc{(*CPU).cmp, (*CPU).cmp}},
	{symCPX, "CPX", [2]instfunc{(*CPU).cpx, (*CPU).cpx}},
	{symCPY, "CPY", [2]instfunc{(*CPU).cpy, (*CPU).cpy}},
	{symDEC, "DEC", [2]instfunc{(*CPU).dec, (*CPU).dec}},
	{symDEX, "DEX", [2]instfunc{(*CPU).dex, (*CPU).dex}},
	{symDEY, "DEY", [2]instfunc{(*CPU).dey, (*CPU).dey}},
	{symEOR, "EOR", [2]instfunc{(*CPU).eor, (*CPU).eor}},
	{symINC, "INC", [2]instfunc{(*CPU).inc, (*CPU).inc}},
	{symINX, "INX", [2]instfunc{(*CPU).inx, (*CPU).inx}},
	{symINY, "INY", [2]instfunc{(*CPU).iny, (*CPU).iny}},
	{symJMP, "JMP", [2]instfunc{(*CPU).jmp, (*CPU).jmp}},
	{symJSR, "JSR", [2]instfunc{(*CPU).jsr, (*CPU).jsr}},
	{symLDA, "LDA", [2]instfunc{(*CPU).lda, (*CPU).lda}},
	{symLDX, "LDX", [2]instfunc{(*CPU).ldx, (*CPU).ldx}},
	{symLDY, "LDY", [2]instfunc{(*CPU).ldy, (*CPU).ldy}},
	{symLSR, "LSR", [2]instfunc{(*CPU).lsr, (*CPU).lsr}},
	{symNOP, "NOP", [2]instfunc{(*CPU).nop, (*CPU).nop}},
	{symORA, "ORA", [2]instfunc{(*CPU).ora, (*CPU).ora}},
	{symPHA, "PHA", [2]instfunc{(*CPU).pha, (*CPU).pha}},
	{symPHP, "PHP", [2]instfunc{(*CPU).php, (*CPU).php}},
	{symPHX, "PHX", [2]instfunc{nil, (*CPU).phx}},
	{symPHY, "PHY", [2]instfunc{nil, (*CPU).phy}},
	{symPLA, "PLA", [2]instfunc{(*CPU).pla, (*CPU).pla}},
	{symPLP, "PLP", [2]instfunc{(*CPU).plp, (*CPU).plp}},
	{symPLX, "PLX", [2]instfunc{nil, (*CPU).plx}},
	{symPLY, "PLY", [2]instfunc{nil, (*CPU).ply}},
	{symRMB, "RMB", [2]instfunc{(*CPU).rmb, (*CPU).rmb}},
	{symROL, "ROL", [2]instfunc{(*CPU).rol, (*CPU).rol}},
	{symROR, "ROR", [2]instfunc{(*CPU).ror, (*CPU).ror}},
	{symRTI, "RTI", [2]instfunc{(*CPU).rti, (*CPU).rti}},
	{symRTS, "RTS", [2]instfunc{(*CPU).rts, (*CPU).rts}},
	{symSBC, "SBC", [2]instfunc{(*CPU).sbc, (*CPU).sbc}},
	{symSEC, "SEC", [2]instfunc{(*CPU).sec, (*CPU).sec}},
	{symSED, "SED", [2]instfunc{(*CPU).sed, (*CPU).sed}},
	{symSEI, "SEI", [2]instfunc{(*CPU).sei, (*CPU).sei}},
	{symSMB, "SMB", [2]instfunc{(*CPU).smb, (*CPU).smb}},
	{symSTA, "STA", [2]instfunc{(*CPU).sta, (*CPU).sta}},
	{symSTX, "STX", [2]instfunc{(*CPU).stx, (*CPU).stx}},
	{symSTY, "STY", [2]instfunc{(*CPU).sty, (*CPU).sty}},
	{symSTZ, "STZ", [2]instfunc{nil, (*CPU).stz}},
	{symTAX, "TAX", [2]instfunc{(*CPU).tax, (*CPU).tax}},
	{symTAY, "TAY", [2]instfunc{(*CPU).tay, (*CPU).tay}},
	{symTRB, "TRB", [2]instfunc{nil, (*CPU).trb}},
	{symTSB, "TSB", [2]instfunc{nil, (*CPU).tsb}},
	{symTSX, "TSX", [2]instfunc{(*CPU).tsx, (*CPU).tsx}},
	{symTXA, "TXA", [2]instfunc{(*CPU).txa, (*CPU).txa}},
	{symTXS, "TXS", [2]instfunc{(*CPU).txs, (*CPU).txs}},
	{symTYA, "TYA", [2]instfunc{(*CPU).tya, (*CPU).tya}},
}

// Mode describes a memory addressing mode.
type Mode byte

// All addressing modes this catalog can describe. RELATIVE_16 and
// ST_VEC_IND_Y are Commodore 65CE02 modes carried for catalog completeness;
// no opcode in data binds them, since this emulator's execution engine
// targets 8-bit emulation mode on the 6502/R65C02/WDC65C02 lineage only.
const (
	IMM     Mode = iota // Immediate
	IMP                 // Implied (no operand)
	REL                 // Relative
	ZPG                 // Zero Page
	ZPX                 // Zero Page,X
	ZPY                 // Zero Page,Y
	ABS                 // Absolute
	ABX                 // Absolute,X
	ABY                 // Absolute,Y
	ZPIND               // (Zero Page) -- CMOS
	IDX                 // (Zero Page,X)
	IDY                 // (Zero Page),Y
	ACC                 // Accumulator (no operand)
	ABSIND              // (Absolute) -- JMP only
	ABXIND              // (Absolute,X) -- CMOS JMP only
	ZPREL               // Zero Page, Relative -- Rockwell BBRn/BBSn
	REL16               // Relative (16-bit offset) -- CBM 65CE02
	STVECY              // (Stack Vector),Y -- CBM 65CE02
)

// Opcode data for an (opcode, mode) pair.
type opcodeData struct {
	sym         opsym      // internal opcode symbol
	mode        Mode       // addressing mode
	opcode      byte       // opcode hex value
	length      byte       // length of opcode + operand in bytes
	cycles      byte       // number of CPU cycles to execute command
	bpcycles    byte       // additional CPU cycles if command crosses page boundary
	reqVariants VariantSet // variant bits that must all be present for this entry to be valid
}

// All valid (opcode, mode) pairs.
var data = []opcodeData{
	{symLDA, IMM, 0xa9, 2, 2, 0, Base},
	{symLDA, ZPG, 0xa5, 2, 3, 0, Base},
	{symLDA, ZPX, 0xb5, 2, 4, 0, Base},
	{symLDA, ABS, 0xad, 3, 4, 0, Base},
	{symLDA, ABX, 0xbd, 3, 4, 1, Base},
	{symLDA, ABY, 0xb9, 3, 4, 1, Base},
	{symLDA, IDX, 0xa1, 2, 6, 0, Base},
	{symLDA, IDY, 0xb1, 2, 5, 1, Base},
	{symLDA, ZPIND, 0xb2, 2, 5, 0, Cmos},

	{symLDX, IMM, 0xa2, 2, 2, 0, Base},
	{symLDX, ZPG, 0xa6, 2, 3, 0, Base},
	{symLDX, ZPY, 0xb6, 2, 4, 0, Base},
	{symLDX, ABS, 0xae, 3, 4, 0, Base},
	{symLDX, ABY, 0xbe, 3, 4, 1, Base},

	{symLDY, IMM, 0xa0, 2, 2, 0, Base},
	{symLDY, ZPG, 0xa4, 2, 3, 0, Base},
	{symLDY, ZPX, 0xb4, 2, 4, 0, Base},
	{symLDY, ABS, 0xac, 3, 4, 0, Base},
	{symLDY, ABX, 0xbc, 3, 4, 1, Base},

	{symSTA, ZPG, 0x85, 2, 3, 0, Base},
	{symSTA, ZPX, 0x95, 2, 4, 0, Base},
	{symSTA, ABS, 0x8d, 3, 4, 0, Base},
	{symSTA, ABX, 0x9d, 3, 5, 0, Base},
	{symSTA, ABY, 0x99, 3, 5, 0, Base},
	{symSTA, IDX, 0x81, 2, 6, 0, Base},
	{symSTA, IDY, 0x91, 2, 6, 0, Base},
	{symSTA, ZPIND, 0x92, 2, 5, 0, Cmos},

	{symSTX, ZPG, 0x86, 2, 3, 0, Base},
	{symSTX, ZPY, 0x96, 2, 4, 0, Base},
	{symSTX, ABS, 0x8e, 3, 4, 0, Base},

	{symSTY, ZPG, 0x84, 2, 3, 0, Base},
	{symSTY, ZPX, 0x94, 2, 4, 0, Base},
	{symSTY, ABS, 0x8c, 3, 4, 0, Base},

	{symSTZ, ZPG, 0x64, 2, 3, 0, Cmos},
	{symSTZ, ZPX, 0x74, 2, 4, 0, Cmos},
	{symSTZ, ABS, 0x9c, 3, 4, 0, Cmos},
	{symSTZ, ABX, 0x9e, 3, 5, 0, Cmos},

	{symADC, IMM, 0x69, 2, 2, 0, Base},
	{symADC, ZPG, 0x65, 2, 3, 0, Base},
	{symADC, ZPX, 0x75, 2, 4, 0, Base},
	{symADC, ABS, 0x6d, 3, 4, 0, Base},
	{symADC, ABX, 0x7d, 3, 4, 1, Base},
	{symADC, ABY, 0x79, 3, 4, 1, Base},
	{symADC, IDX, 0x61, 2, 6, 0, Base},
	{symADC, IDY, 0x71, 2, 5, 1, Base},
	{symADC, ZPIND, 0x72, 2, 5, 0, Cmos},

	{symSBC, IMM, 0xe9, 2, 2, 0, Base},
	{symSBC, ZPG, 0xe5, 2, 3, 0, Base},
	{symSBC, ZPX, 0xf5, 2, 4, 0, Base},
	{symSBC, ABS, 0xed, 3, 4, 0, Base},
	{symSBC, ABX, 0xfd, 3, 4, 1, Base},
	{symSBC, ABY, 0xf9, 3, 4, 1, Base},
	{symSBC, IDX, 0xe1, 2, 6, 0, Base},
	{symSBC, IDY, 0xf1, 2, 5, 1, Base},
	{symSBC, ZPIND, 0xf2, 2, 5, 0, Cmos},

	{symCMP, IMM, 0xc9, 2, 2, 0, Base},
	{symCMP, ZPG, 0xc5, 2, 3, 0, Base},
	{symCMP, ZPX, 0xd5, 2, 4, 0, Base},
	{symCMP, ABS, 0xcd, 3, 4, 0, Base},
	{symCMP, ABX, 0xdd, 3, 4, 1, Base},
	{symCMP, ABY, 0xd9, 3, 4, 1, Base},
	{symCMP, IDX, 0xc1, 2, 6, 0, Base},
	{symCMP, IDY, 0xd1, 2, 5, 1, Base},
	{symCMP, ZPIND, 0xd2, 2, 5, 0, Cmos},

	{symCPX, IMM, 0xe0, 2, 2, 0, Base},
	{symCPX, ZPG, 0xe4, 2, 3, 0, Base},
	{symCPX, ABS, 0xec, 3, 4, 0, Base},

	{symCPY, IMM, 0xc0, 2, 2, 0, Base},
	{symCPY, ZPG, 0xc4, 2, 3, 0, Base},
	{symCPY, ABS, 0xcc, 3, 4, 0, Base},

	{symBIT, IMM, 0x89, 2, 2, 0, Cmos},
	{symBIT, ZPG, 0x24, 2, 3, 0, Base},
	{symBIT, ZPX, 0x34, 2, 4, 0, Cmos},
	{symBIT, ABS, 0x2c, 3, 4, 0, Base},
	{symBIT, ABX, 0x3c, 3, 4, 1, Cmos},

	{symCLC, IMP, 0x18, 1, 2, 0, Base},
	{symSEC, IMP, 0x38, 1, 2, 0, Base},
	{symCLI, IMP, 0x58, 1, 2, 0, Base},
	{symSEI, IMP, 0x78, 1, 2, 0, Base},
	{symCLD, IMP, 0xd8, 1, 2, 0, Base},
	{symSED, IMP, 0xf8, 1, 2, 0, Base},
	{symCLV, IMP, 0xb8, 1, 2, 0, Base},

	{symBCC, REL, 0x90, 2, 2, 1, Base},
	{symBCS, REL, 0xb0, 2, 2, 1, Base},
	{symBEQ, REL, 0xf0, 2, 2, 1, Base},
	{symBNE, REL, 0xd0, 2, 2, 1, Base},
	{symBMI, REL, 0x30, 2, 2, 1, Base},
	{symBPL, REL, 0x10, 2, 2, 1, Base},
	{symBVC, REL, 0x50, 2, 2, 1, Base},
	{symBVS, REL, 0x70, 2, 2, 1, Base},
	{symBRA, REL, 0x80, 2, 2, 1, Cmos},

	{symBRK, IMP, 0x00, 1, 7, 0, Base},

	{symAND, IMM, 0x29, 2, 2, 0, Base},
	{symAND, ZPG, 0x25, 2, 3, 0, Base},
	{symAND, ZPX, 0x35, 2, 4, 0, Base},
	{symAND, ABS, 0x2d, 3, 4, 0, Base},
	{symAND, ABX, 0x3d, 3, 4, 1, Base},
	{symAND, ABY, 0x39, 3, 4, 1, Base},
	{symAND, IDX, 0x21, 2, 6, 0, Base},
	{symAND, IDY, 0x31, 2, 5, 1, Base},
	{symAND, ZPIND, 0x32, 2, 5, 0, Cmos},

	{symORA, IMM, 0x09, 2, 2, 0, Base},
	{symORA, ZPG, 0x05, 2, 3, 0, Base},
	{symORA, ZPX, 0x15, 2, 4, 0, Base},
	{symORA, ABS, 0x0d, 3, 4, 0, Base},
	{symORA, ABX, 0x1d, 3, 4, 1, Base},
	{symORA, ABY, 0x19, 3, 4, 1, Base},
	{symORA, IDX, 0x01, 2, 6, 0, Base},
	{symORA, IDY, 0x11, 2, 5, 1, Base},
	{symORA, ZPIND, 0x12, 2, 5, 0, Cmos},

	{symEOR, IMM, 0x49, 2, 2, 0, Base},
	{symEOR, ZPG, 0x45, 2, 3, 0, Base},
	{symEOR, ZPX, 0x55, 2, 4, 0, Base},
	{symEOR, ABS, 0x4d, 3, 4, 0, Base},
	{symEOR, ABX, 0x5d, 3, 4, 1, Base},
	{symEOR, ABY, 0x59, 3, 4, 1, Base},
	{symEOR, IDX, 0x41, 2, 6, 0, Base},
	{symEOR, IDY, 0x51, 2, 5, 1, Base},
	{symEOR, ZPIND, 0x52, 2, 5, 0, Cmos},

	{symINC, ZPG, 0xe6, 2, 5, 0, Base},
	{symINC, ZPX, 0xf6, 2, 6, 0, Base},
	{symINC, ABS, 0xee, 3, 6, 0, Base},
	{symINC, ABX, 0xfe, 3, 7, 0, Base},
	{symINC, ACC, 0x1a, 1, 2, 0, Cmos},

	{symDEC, ZPG, 0xc6, 2, 5, 0, Base},
	{symDEC, ZPX, 0xd6, 2, 6, 0, Base},
	{symDEC, ABS, 0xce, 3, 6, 0, Base},
	{symDEC, ABX, 0xde, 3, 7, 0, Base},
	{symDEC, ACC, 0x3a, 1, 2, 0, Cmos},

	{symINX, IMP, 0xe8, 1, 2, 0, Base},
	{symINY, IMP, 0xc8, 1, 2, 0, Base},

	{symDEX, IMP, 0xca, 1, 2, 0, Base},
	{symDEY, IMP, 0x88, 1, 2, 0, Base},

	{symJMP, ABS, 0x4c, 3, 3, 0, Base},
	{symJMP, ABXIND, 0x7c, 3, 6, 0, Cmos},
	{symJMP, ABSIND, 0x6c, 3, 5, 0, Base},

	{symJSR, ABS, 0x20, 3, 6, 0, Base},
	{symRTS, IMP, 0x60, 1, 6, 0, Base},

	{symRTI, IMP, 0x40, 1, 6, 0, Base},

	{symNOP, IMP, 0xea, 1, 2, 0, Base},

	{symTAX, IMP, 0xaa, 1, 2, 0, Base},
	{symTXA, IMP, 0x8a, 1, 2, 0, Base},
	{symTAY, IMP, 0xa8, 1, 2, 0, Base},
	{symTYA, IMP, 0x98, 1, 2, 0, Base},
	{symTXS, IMP, 0x9a, 1, 2, 0, Base},
	{symTSX, IMP, 0xba, 1, 2, 0, Base},

	{symTRB, ZPG, 0x14, 2, 5, 0, Cmos},
	{symTRB, ABS, 0x1c, 3, 6, 0, Cmos},
	{symTSB, ZPG, 0x04, 2, 5, 0, Cmos},
	{symTSB, ABS, 0x0c, 3, 6, 0, Cmos},

	{symPHA, IMP, 0x48, 1, 3, 0, Base},
	{symPLA, IMP, 0x68, 1, 4, 0, Base},
	{symPHP, IMP, 0x08, 1, 3, 0, Base},
	{symPLP, IMP, 0x28, 1, 4, 0, Base},
	{symPHX, IMP, 0xda, 1, 3, 0, Cmos},
	{symPLX, IMP, 0xfa, 1, 4, 0, Cmos},
	{symPHY, IMP, 0x5a, 1, 3, 0, Cmos},
	{symPLY, IMP, 0x7a, 1, 4, 0, Cmos},

	{symASL, ACC, 0x0a, 1, 2, 0, Base},
	{symASL, ZPG, 0x06, 2, 5, 0, Base},
	{symASL, ZPX, 0x16, 2, 6, 0, Base},
	{symASL, ABS, 0x0e, 3, 6, 0, Base},
	{symASL, ABX, 0x1e, 3, 7, 0, Base},

	{symLSR, ACC, 0x4a, 1, 2, 0, Base},
	{symLSR, ZPG, 0x46, 2, 5, 0, Base},
	{symLSR, ZPX, 0x56, 2, 6, 0, Base},
	{symLSR, ABS, 0x4e, 3, 6, 0, Base},
	{symLSR, ABX, 0x5e, 3, 7, 0, Base},

	{symROL, ACC, 0x2a, 1, 2, 0, Base},
	{symROL, ZPG, 0x26, 2, 5, 0, Base},
	{symROL, ZPX, 0x36, 2, 6, 0, Base},
	{symROL, ABS, 0x2e, 3, 6, 0, Base},
	{symROL, ABX, 0x3e, 3, 7, 0, Base},

	{symROR, ACC, 0x6a, 1, 2, 0, Base},
	{symROR, ZPG, 0x66, 2, 5, 0, Base},
	{symROR, ZPX, 0x76, 2, 6, 0, Base},
	{symROR, ABS, 0x6e, 3, 6, 0, Base},
	{symROR, ABX, 0x7e, 3, 7, 0, Base},

	// Rockwell bit-test-and-branch / bit-set / bit-clear family. These
	// opcodes fall in the NMOS illegal-opcode range; on a plain CMOS chip
	// without the Rockwell bit they stay undefined too.
	{symRMB, ZPG, 0x07, 2, 5, 0, Rockwell},
	{symRMB, ZPG, 0x17, 2, 5, 0, Rockwell},
	{symRMB, ZPG, 0x27, 2, 5, 0, Rockwell},
	{symRMB, ZPG, 0x37, 2, 5, 0, Rockwell},
	{symRMB, ZPG, 0x47, 2, 5, 0, Rockwell},
	{symRMB, ZPG, 0x57, 2, 5, 0, Rockwell},
	{symRMB, ZPG, 0x67, 2, 5, 0, Rockwell},
	{symRMB, ZPG, 0x77, 2, 5, 0, Rockwell},

	{symSMB, ZPG, 0x87, 2, 5, 0, Rockwell},
	{symSMB, ZPG, 0x97, 2, 5, 0, Rockwell},
	{symSMB, ZPG, 0xa7, 2, 5, 0, Rockwell},
	{symSMB, ZPG, 0xb7, 2, 5, 0, Rockwell},
	{symSMB, ZPG, 0xc7, 2, 5, 0, Rockwell},
	{symSMB, ZPG, 0xd7, 2, 5, 0, Rockwell},
	{symSMB, ZPG, 0xe7, 2, 5, 0, Rockwell},
	{symSMB, ZPG, 0xf7, 2, 5, 0, Rockwell},

	{symBBR, ZPREL, 0x0f, 3, 5, 0, Rockwell},
	{symBBR, ZPREL, 0x1f, 3, 5, 0, Rockwell},
	{symBBR, ZPREL, 0x2f, 3, 5, 0, Rockwell},
	{symBBR, ZPREL, 0x3f, 3, 5, 0, Rockwell},
	{symBBR, ZPREL, 0x4f, 3, 5, 0, Rockwell},
	{symBBR, ZPREL, 0x5f, 3, 5, 0, Rockwell},
	{symBBR, ZPREL, 0x6f, 3, 5, 0, Rockwell},
	{symBBR, ZPREL, 0x7f, 3, 5, 0, Rockwell},

	{symBBS, ZPREL, 0x8f, 3, 5, 0, Rockwell},
	{symBBS, ZPREL, 0x9f, 3, 5, 0, Rockwell},
	{symBBS, ZPREL, 0xaf, 3, 5, 0, Rockwell},
	{symBBS, ZPREL, 0xbf, 3, 5, 0, Rockwell},
	{symBBS, ZPREL, 0xcf, 3, 5, 0, Rockwell},
	{symBBS, ZPREL, 0xdf, 3, 5, 0, Rockwell},
	{symBBS, ZPREL, 0xef, 3, 5, 0, Rockwell},
	{symBBS, ZPREL, 0xff, 3, 5, 0, Rockwell},
}

// Unused opcodes: NMOS illegal opcodes that still consume a fixed number
// of bytes and cycles without otherwise affecting machine state, and the
// CMOS catch-all NOP variants that replace them.
type unused struct {
	opcode byte
	mode   Mode
	length byte
	cycles byte
}

var unusedData = []unused{
	{0x02, ZPG, 2, 2},
	{0x22, ZPG, 2, 2},
	{0x42, ZPG, 2, 2},
	{0x62, ZPG, 2, 2},
	{0x82, ZPG, 2, 2},
	{0xc2, ZPG, 2, 2},
	{0xe2, ZPG, 2, 2},
	{0x03, ACC, 1, 1},
	{0x13, ACC, 1, 1},
	{0x23, ACC, 1, 1},
	{0x33, ACC, 1, 1},
	{0x43, ACC, 1, 1},
	{0x53, ACC, 1, 1},
	{0x63, ACC, 1, 1},
	{0x73, ACC, 1, 1},
	{0x83, ACC, 1, 1},
	{0x93, ACC, 1, 1},
	{0xa3, ACC, 1, 1},
	{0xb3, ACC, 1, 1},
	{0xc3, ACC, 1, 1},
	{0xd3, ACC, 1, 1},
	{0xe3, ACC, 1, 1},
	{0xf3, ACC, 1, 1},
	{0x44, ZPG, 2, 3},
	{0x54, ZPG, 2, 4},
	{0xd4, ZPG, 2, 4},
	{0xf4, ZPG, 2, 4},
	{0x0b, ACC, 1, 1},
	{0x1b, ACC, 1, 1},
	{0x2b, ACC, 1, 1},
	{0x3b, ACC, 1, 1},
	{0x4b, ACC, 1, 1},
	{0x5b, ACC, 1, 1},
	{0x6b, ACC, 1, 1},
	{0x7b, ACC, 1, 1},
	{0x8b, ACC, 1, 1},
	{0x9b, ACC, 1, 1},
	{0xab, ACC, 1, 1},
	{0xbb, ACC, 1, 1},
	{0xcb, ACC, 1, 1},
	{0xdb, ACC, 1, 1},
	{0xeb, ACC, 1, 1},
	{0xfb, ACC, 1, 1},
	{0x5c, ABS, 3, 8},
	{0xdc, ABS, 3, 4},
	{0xfc, ABS, 3, 4},
}

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name     string   // all-caps name of the instruction
	Mode     Mode     // addressing mode
	Opcode   byte     // hexadecimal opcode value
	Length   byte     // combined size of opcode and operand, in bytes
	Cycles   byte     // number of CPU cycles to execute the instruction
	BPCycles byte     // additional cycles required if boundary page crossed
	fn       instfunc // emulator implementation of the function
}

// An InstructionSet defines the set of all possible instructions that
// can run on the emulated CPU.
type InstructionSet struct {
	Variants     VariantSet
	instructions [256]Instruction          // all instructions by opcode
	variants     map[string][]*Instruction // variants of each instruction
}

// Lookup retrieves a CPU instruction corresponding to the requested opcode.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// GetInstructions returns all CPU instructions whose name matches the
// provided string.
func (s *InstructionSet) GetInstructions(name string) []*Instruction {
	return s.variants[strings.ToUpper(name)]
}

// archIndex returns 0 for an NMOS instruction-set realization, 1 for CMOS.
func archIndex(variants VariantSet) int {
	if variants.IsCMOS() {
		return 1
	}
	return 0
}

// newInstructionSet builds an instruction set for the given variant
// combination. A (opcode, mode) entry whose required variant bits aren't
// all present becomes an unused opcode instead of being dropped, since real
// hardware still fetches and times an unrecognized opcode.
func newInstructionSet(variants VariantSet) *InstructionSet {
	set := &InstructionSet{Variants: variants}
	arch := archIndex(variants)

	symToImpl := make(map[opsym]*opcodeImpl, len(impl))
	for i := range impl {
		symToImpl[impl[i].sym] = &impl[i]
	}

	set.variants = make(map[string][]*Instruction)

	unusedName := "???"

	for _, d := range data {
		inst := &set.instructions[d.opcode]

		if !variants.Has(d.reqVariants) {
			inst.Name = unusedName
			inst.Mode = d.mode
			inst.Opcode = d.opcode
			inst.Length = d.length
			inst.Cycles = d.cycles
			inst.BPCycles = 0
			inst.fn = (*CPU).unusedn
			continue
		}

		entryImpl := symToImpl[d.sym]
		if entryImpl.fn[arch] == nil {
			continue
		}

		inst.Name = entryImpl.name
		inst.Mode = d.mode
		inst.Opcode = d.opcode
		inst.Length = d.length
		inst.Cycles = d.cycles
		inst.BPCycles = d.bpcycles
		inst.fn = entryImpl.fn[arch]

		set.variants[inst.Name] = append(set.variants[inst.Name], inst)
	}

	for _, u := range unusedData {
		inst := &set.instructions[u.opcode]
		inst.Name = unusedName
		inst.Mode = u.mode
		inst.Opcode = u.opcode
		inst.Length = u.length
		inst.Cycles = u.cycles
		inst.BPCycles = 0
		if variants.IsCMOS() {
			inst.fn = (*CPU).unusedc
		} else {
			inst.fn = (*CPU).unusedn
		}
	}

	for i := 0; i < 256; i++ {
		if set.instructions[i].Name == "" {
			panic("missing instruction")
		}
	}
	return set
}

var instructionSetCache = map[VariantSet]*InstructionSet{}

// GetInstructionSet returns the (lazily built, then cached) instruction set
// for the requested variant combination.
func GetInstructionSet(variants VariantSet) *InstructionSet {
	if set, ok := instructionSetCache[variants]; ok {
		return set
	}
	set := newInstructionSet(variants)
	instructionSetCache[variants] = set
	return set
}
