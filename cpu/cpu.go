// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements a 6502/65C02-family instruction
// set and emulator.
package cpu

// CPU represents a single emulated 6502-family processor. It contains a
// pointer to the memory bus the CPU is wired to.
type CPU struct {
	Variants VariantSet      // chip variant combination this CPU emulates
	Reg      Registers       // CPU registers
	Mem      Memory          // assigned memory
	Cycles   uint64          // total executed CPU cycles
	LastPC   uint16          // PC of the instruction currently executing
	InstSet  *InstructionSet // instruction set used by the CPU

	pageCrossed bool
	deltaCycles int8
	halted      bool
}

// Interrupt vectors
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

// NewCPU creates an emulated CPU bound to the specified memory, modeling
// the given chip variant combination (one of the CPU6502/CPUR6502/...
// constants, or a custom combination of variant bits).
func NewCPU(variants VariantSet, m Memory) *CPU {
	c := &CPU{
		Variants: variants,
		Mem:      m,
		InstSet:  GetInstructionSet(variants),
	}
	c.Reg.Init()
	return c
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction at the requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := cpu.Mem.LoadByte(addr)
	return cpu.InstSet.Lookup(opcode)
}

// NextAddr returns the address of the instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(addr uint16) uint16 {
	opcode := cpu.Mem.LoadByte(addr)
	inst := cpu.InstSet.Lookup(opcode)
	return addr + uint16(inst.Length)
}

// Execute runs a single instruction at the current PC and reports whether
// the CPU has halted. A CPU halts when it hits an undefined opcode, when a
// branch or jump targets its own address (a tight infinite loop with no
// other effect), or when a vector dispatch loads a PC of zero.
func (cpu *CPU) Execute() bool {
	opcode := cpu.Mem.LoadByte(cpu.Reg.PC)
	inst := cpu.InstSet.Lookup(opcode)

	var buf [2]byte
	operand := buf[:inst.Length-1]
	cpu.Mem.LoadBytes(cpu.Reg.PC+1, operand)
	cpu.LastPC = cpu.Reg.PC
	cpu.Reg.PC += uint16(inst.Length)

	cpu.pageCrossed = false
	cpu.deltaCycles = 0
	cpu.halted = false

	inst.fn(cpu, inst, operand)

	cpu.Cycles += uint64(int8(inst.Cycles) + cpu.deltaCycles)
	if cpu.pageCrossed {
		cpu.Cycles += uint64(inst.BPCycles)
	}

	return cpu.halted
}

// Halted reports whether the most recently executed instruction halted
// the CPU.
func (cpu *CPU) Halted() bool {
	return cpu.halted
}

// Load a byte value using the requested addressing mode and the operand
// to determine where to load it from.
func (cpu *CPU) load(mode Mode, operand []byte) byte {
	switch mode {
	case IMM:
		return operand[0]
	case ZPG:
		zpaddr := operandToAddress(operand)
		return cpu.Mem.LoadByte(zpaddr)
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		return cpu.Mem.LoadByte(zpaddr)
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(zpaddr)
	case ABS:
		addr := operandToAddress(operand)
		return cpu.Mem.LoadByte(addr)
	case ABX:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.X)
		return cpu.Mem.LoadByte(addr)
	case ABY:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(addr)
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := cpu.Mem.LoadAddress(zpaddr)
		return cpu.Mem.LoadByte(addr)
	case IDY:
		zpaddr := operandToAddress(operand)
		addr := cpu.Mem.LoadAddress(zpaddr)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(addr)
	case ZPIND:
		zpaddr := operandToAddress(operand)
		addr := cpu.Mem.LoadAddress(zpaddr)
		return cpu.Mem.LoadByte(addr)
	case ACC:
		return cpu.Reg.A
	default:
		panic("invalid addressing mode")
	}
}

// loadAddress computes a jump target for JMP/JSR-family instructions. On
// NMOS, ABSIND reads its pointer through Memory.LoadAddress, which carries
// the page-wrap bug (a pointer at a page boundary wraps its high byte read
// back to the start of the same page). On CMOS, ABSIND reads the high byte
// from the next address instead and costs one extra cycle.
func (cpu *CPU) loadAddress(mode Mode, operand []byte) uint16 {
	switch mode {
	case ABS:
		return operandToAddress(operand)
	case ABSIND:
		addr := operandToAddress(operand)
		if cpu.Variants.IsCMOS() {
			lo := cpu.Mem.LoadByte(addr)
			hi := cpu.Mem.LoadByte(addr + 1)
			cpu.deltaCycles++
			return uint16(lo) | uint16(hi)<<8
		}
		return cpu.Mem.LoadAddress(addr)
	case ABXIND:
		base := operandToAddress(operand)
		addr, _ := offsetAddress(base, cpu.Reg.X)
		lo := cpu.Mem.LoadByte(addr)
		hi := cpu.Mem.LoadByte(addr + 1)
		return uint16(lo) | uint16(hi)<<8
	default:
		panic("invalid addressing mode")
	}
}

// Store a byte value using the specified addressing mode and the
// variable-sized instruction operand to determine where to store it.
func (cpu *CPU) store(mode Mode, operand []byte, v byte) {
	switch mode {
	case ZPG:
		zpaddr := operandToAddress(operand)
		cpu.Mem.StoreByte(zpaddr, v)
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		cpu.Mem.StoreByte(zpaddr, v)
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		cpu.Mem.StoreByte(zpaddr, v)
	case ABS:
		addr := operandToAddress(operand)
		cpu.Mem.StoreByte(addr, v)
	case ABX:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.X)
		cpu.Mem.StoreByte(addr, v)
	case ABY:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		cpu.Mem.StoreByte(addr, v)
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := cpu.Mem.LoadAddress(zpaddr)
		cpu.Mem.StoreByte(addr, v)
	case IDY:
		zpaddr := operandToAddress(operand)
		addr := cpu.Mem.LoadAddress(zpaddr)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		cpu.Mem.StoreByte(addr, v)
	case ZPIND:
		zpaddr := operandToAddress(operand)
		addr := cpu.Mem.LoadAddress(zpaddr)
		cpu.Mem.StoreByte(addr, v)
	case ACC:
		cpu.Reg.A = v
	default:
		panic("invalid addressing mode")
	}
}

// Execute a branch using the instruction operand. A branch that targets
// the opcode byte of the branch instruction itself is a tight infinite
// loop with no other visible effect, so it halts the CPU rather than
// spinning forever.
func (cpu *CPU) branch(operand []byte) {
	offset := operandToAddress(operand)
	oldPC := cpu.Reg.PC
	if offset < 0x80 {
		cpu.Reg.PC += uint16(offset)
	} else {
		cpu.Reg.PC -= uint16(0x100 - offset)
	}
	cpu.deltaCycles++
	if ((cpu.Reg.PC ^ oldPC) & 0xff00) != 0 {
		cpu.deltaCycles++
	}
	if cpu.Reg.PC == cpu.LastPC {
		cpu.halted = true
	}
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.Mem.StoreByte(stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | (uint16(hi) << 8)
}

// Update the Zero and Sign flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Zero = (v == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
}

// GoVector pushes the current PC and processor status, then transfers
// control to the address stored at vector. It is used for BRK, IRQ and
// NMI. If the loaded address is zero
// (an uninitialized or erased vector), the CPU halts instead of running
// off into the weeds at address 0.
func (cpu *CPU) GoVector(vector uint16, isBrk bool) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(isBrk))

	cpu.Reg.InterruptDisable = true
	if cpu.Variants.IsCMOS() {
		cpu.Reg.Decimal = false
	}

	cpu.Reg.PC = cpu.Mem.LoadAddress(vector)
	if cpu.Reg.PC == 0 {
		cpu.halted = true
	}
}

// ExecuteRTS pops a return address off the stack and resumes execution
// just past it, the way the RTS instruction does. The command's main loop
// calls this after the Apex vector layer handles a system call dispatched
// via JSR into the system page, synthesizing the RTS the caller's JSR is
// expecting.
func (cpu *CPU) ExecuteRTS() {
	addr := cpu.popAddress()
	cpu.Reg.PC = addr + 1
}

// IRQ generates a maskable hardware interrupt request.
func (cpu *CPU) IRQ() {
	if !cpu.Reg.InterruptDisable {
		cpu.GoVector(vectorIRQ, false)
	}
}

// NMI generates a non-maskable interrupt.
func (cpu *CPU) NMI() {
	cpu.GoVector(vectorNMI, false)
}

// Reset loads the reset vector into PC, as if the CPU had just powered on.
func (cpu *CPU) Reset() {
	cpu.Reg.PC = cpu.Mem.LoadAddress(vectorReset)
}

func bcdDigitSignExtend(nibble byte) int8 {
	v := int8(nibble & 0x0f)
	if v >= 8 {
		v -= 16
	}
	return v
}

// Add with carry. Binary mode follows the 6502 datasheet directly; decimal
// mode implements the on-the-fly correction described in US patent
// 3,991,307 (Peddle et al.), the same digit-correction hardware the real
// chip's ALU performs. NMOS and CMOS parts run the identical correction but
// disagree on which intermediate result sets N/Z and whether the decimal
// correction costs an extra cycle.
func (cpu *CPU) adc(inst *Instruction, operand []byte) {
	operandVal := cpu.load(inst.Mode, operand)
	carryIn := boolToByte(cpu.Reg.Carry)
	a := cpu.Reg.A

	binaryResult := uint16(a) + uint16(operandVal) + uint16(carryIn)
	binaryResult7 := (a & 0x7f) + (operandVal & 0x7f) + carryIn
	binaryCarry8 := binaryResult>>8 != 0
	binaryCarry7 := binaryResult7>>7 != 0
	binaryResult &= 0xff

	cpu.Reg.Zero = binaryResult == 0

	if !cpu.Reg.Decimal {
		cpu.updateNZ(byte(binaryResult))
		cpu.Reg.Carry = binaryCarry8
		cpu.Reg.Overflow = binaryCarry8 != binaryCarry7
		cpu.Reg.A = byte(binaryResult)
		return
	}

	bcdLSD := (a & 0x0f) + (operandVal & 0x0f) + carryIn
	bcdMSD := (a >> 4) + (operandVal >> 4)
	bcdCarry4 := bcdLSD > 0x09
	if bcdCarry4 {
		bcdLSD += 0x06
		bcdMSD += 0x01
	}

	if !cpu.Variants.IsCMOS() {
		partial := (bcdMSD << 4) | (bcdLSD & 0x0f)
		cpu.Reg.Sign = partial&0x80 != 0
		cpu.Reg.Zero = binaryResult == 0
	}

	signedMSD := int16(bcdDigitSignExtend(a>>4)) + int16(bcdDigitSignExtend(operandVal>>4))
	if bcdCarry4 {
		signedMSD++
	}
	cpu.Reg.Overflow = signedMSD < -8 || signedMSD > 7

	if bcdMSD > 0x09 {
		bcdMSD += 0x06
	}
	cpu.Reg.Carry = bcdMSD > 0xf

	result := (bcdMSD << 4) | (bcdLSD & 0x0f)
	cpu.Reg.A = result

	if cpu.Variants.IsCMOS() {
		cpu.updateNZ(result)
		cpu.deltaCycles++
	}
}

// Subtract with carry. Mirrors adc's patent-form correction exactly, since
// the chip implements subtraction as addition of the ones' complement.
func (cpu *CPU) sbc(inst *Instruction, operand []byte) {
	operandVal := cpu.load(inst.Mode, operand) ^ 0xff
	carryIn := boolToByte(cpu.Reg.Carry)
	a := cpu.Reg.A

	result := uint16(a) + uint16(operandVal) + uint16(carryIn)
	result7 := (a & 0x7f) + (operandVal & 0x7f) + carryIn
	carry8 := (result>>8)&1 != 0
	carry7 := (result7>>7)&1 != 0
	result &= 0xff

	cpu.updateNZ(byte(result))
	cpu.Reg.Carry = carry8
	cpu.Reg.Overflow = carry8 != carry7

	if !cpu.Reg.Decimal {
		cpu.Reg.A = byte(result)
		return
	}

	result4 := (a & 0x0f) + (operandVal & 0x0f) + carryIn
	carry4 := result4>>4 != 0
	if !carry4 {
		if cpu.Variants.IsCMOS() {
			result = (result + 0xfa) & 0xff
		} else {
			result = (result & 0xf0) | ((result + 0xfa) & 0x0f)
		}
	}
	if !carry8 {
		result = (result + 0xa0) & 0xff
	}
	if cpu.Variants.IsCMOS() {
		cpu.updateNZ(byte(result))
		cpu.deltaCycles++
	}
	cpu.Reg.A = byte(result)
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 0x80) == 0x80)
	v = v << 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
	if cpu.Variants.IsCMOS() && inst.Mode == ABX && !cpu.pageCrossed {
		cpu.deltaCycles--
	}
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction, operand []byte) {
	if cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction, operand []byte) {
	if cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	if inst.Mode != IMM {
		cpu.Reg.Sign = ((v & 0x80) != 0)
		cpu.Reg.Overflow = ((v & 0x40) != 0)
	}
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction, operand []byte) {
	if cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction, operand []byte) {
	if !cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction, operand []byte) {
	if !cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

// Branch Always (CMOS only)
func (cpu *CPU) bra(inst *Instruction, operand []byte) {
	cpu.branch(operand)
}

// Branch on Bit Reset (Rockwell CMOS extension). The bit index is packed
// into the high nibble of the opcode: opcode $0F is bit 0, $7F is bit 7.
func (cpu *CPU) bbr(inst *Instruction, operand []byte) {
	bit := byte(1) << ((inst.Opcode >> 4) & 7)
	v := cpu.Mem.LoadByte(operandToAddress(operand[:1]))
	if v&bit == 0 {
		cpu.branch(operand[1:2])
	}
}

// Branch on Bit Set (Rockwell CMOS extension).
func (cpu *CPU) bbs(inst *Instruction, operand []byte) {
	bit := byte(1) << ((inst.Opcode >> 4) & 7)
	v := cpu.Mem.LoadByte(operandToAddress(operand[:1]))
	if v&bit != 0 {
		cpu.branch(operand[1:2])
	}
}

// Reset Memory Bit (Rockwell CMOS extension).
func (cpu *CPU) rmb(inst *Instruction, operand []byte) {
	bit := byte(1) << ((inst.Opcode >> 4) & 7)
	zpaddr := operandToAddress(operand)
	v := cpu.Mem.LoadByte(zpaddr)
	cpu.Mem.StoreByte(zpaddr, v&^bit)
}

// Set Memory Bit (Rockwell CMOS extension).
func (cpu *CPU) smb(inst *Instruction, operand []byte) {
	bit := byte(1) << ((inst.Opcode >> 4) & 7)
	zpaddr := operandToAddress(operand)
	v := cpu.Mem.LoadByte(zpaddr)
	cpu.Mem.StoreByte(zpaddr, v|bit)
}

// Break
func (cpu *CPU) brk(inst *Instruction, operand []byte) {
	cpu.Reg.PC++
	cpu.GoVector(vectorBRK, true)
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction, operand []byte) {
	if cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction, operand []byte) { cpu.Reg.Carry = false }

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction, operand []byte) { cpu.Reg.Decimal = false }

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction, operand []byte) { cpu.Reg.InterruptDisable = false }

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction, operand []byte) { cpu.Reg.Overflow = false }

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = (cpu.Reg.A >= v)
	cpu.updateNZ(cpu.Reg.A - v)
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = (cpu.Reg.X >= v)
	cpu.updateNZ(cpu.Reg.X - v)
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = (cpu.Reg.Y >= v)
	cpu.updateNZ(cpu.Reg.Y - v)
}

// Decrement memory value (or accumulator, on CMOS opcode $3A)
func (cpu *CPU) dec(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) - 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction, operand []byte) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction, operand []byte) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction, operand []byte) {
	cpu.Reg.A ^= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Increment memory value (or accumulator, on CMOS opcode $1A)
func (cpu *CPU) inc(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) + 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction, operand []byte) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction, operand []byte) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

// Jump to memory address. A jump whose target equals its own opcode
// address halts the CPU: it can never make forward progress.
func (cpu *CPU) jmp(inst *Instruction, operand []byte) {
	addr := cpu.loadAddress(inst.Mode, operand)
	if addr == cpu.LastPC {
		cpu.halted = true
	}
	cpu.Reg.PC = addr
}

// Jump to subroutine
func (cpu *CPU) jsr(inst *Instruction, operand []byte) {
	addr := cpu.loadAddress(inst.Mode, operand)
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = addr
}

// Load Accumulator
func (cpu *CPU) lda(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Load the X register
func (cpu *CPU) ldx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.X)
}

// Load the Y register
func (cpu *CPU) ldy(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.Y)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 1) == 1)
	v = v >> 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
	if cpu.Variants.IsCMOS() && inst.Mode == ABX && !cpu.pageCrossed {
		cpu.deltaCycles--
	}
}

// No-operation
func (cpu *CPU) nop(inst *Instruction, operand []byte) {}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction, operand []byte) {
	cpu.Reg.A |= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction, operand []byte) { cpu.push(cpu.Reg.A) }

// Push Processor flags
func (cpu *CPU) php(inst *Instruction, operand []byte) { cpu.push(cpu.Reg.SavePS(true)) }

// Push X register (CMOS only)
func (cpu *CPU) phx(inst *Instruction, operand []byte) { cpu.push(cpu.Reg.X) }

// Push Y register (CMOS only)
func (cpu *CPU) phy(inst *Instruction, operand []byte) { cpu.push(cpu.Reg.Y) }

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction, operand []byte) {
	cpu.Reg.RestorePS(cpu.pop())
}

// Pull (pop) X register (CMOS only)
func (cpu *CPU) plx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.pop()
	cpu.updateNZ(cpu.Reg.X)
}

// Pull (pop) Y register (CMOS only)
func (cpu *CPU) ply(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.pop()
	cpu.updateNZ(cpu.Reg.Y)
}

// Rotate Left
func (cpu *CPU) rol(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp << 1) | boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = ((tmp & 0x80) != 0)
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
	if cpu.Variants.IsCMOS() && inst.Mode == ABX && !cpu.pageCrossed {
		cpu.deltaCycles--
	}
}

// Rotate Right
func (cpu *CPU) ror(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.Reg.Carry = ((tmp & 1) != 0)
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
	if cpu.Variants.IsCMOS() && inst.Mode == ABX && !cpu.pageCrossed {
		cpu.deltaCycles--
	}
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction, operand []byte) {
	cpu.Reg.RestorePS(cpu.pop())
	cpu.Reg.PC = cpu.popAddress()
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction, operand []byte) {
	cpu.ExecuteRTS()
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction, operand []byte) { cpu.Reg.Carry = true }

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction, operand []byte) { cpu.Reg.Decimal = true }

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction, operand []byte) { cpu.Reg.InterruptDisable = true }

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction, operand []byte) { cpu.store(inst.Mode, operand, cpu.Reg.A) }

// Store X register
func (cpu *CPU) stx(inst *Instruction, operand []byte) { cpu.store(inst.Mode, operand, cpu.Reg.X) }

// Store Y register
func (cpu *CPU) sty(inst *Instruction, operand []byte) { cpu.store(inst.Mode, operand, cpu.Reg.Y) }

// Store Zero (CMOS only)
func (cpu *CPU) stz(inst *Instruction, operand []byte) { cpu.store(inst.Mode, operand, 0) }

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

// Test and Reset Bits (CMOS only)
func (cpu *CPU) trb(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	cpu.store(inst.Mode, operand, v&(cpu.Reg.A^0xff))
}

// Test and Set Bits (CMOS only)
func (cpu *CPU) tsb(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	cpu.store(inst.Mode, operand, v|cpu.Reg.A)
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer X register to the stack pointer
func (cpu *CPU) txs(inst *Instruction, operand []byte) { cpu.Reg.SP = cpu.Reg.X }

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}

// Undefined opcode. Real silicon does something chip-specific and
// unreliable here; this emulator treats it as a halt condition instead of
// emulating undefined behavior.
func (cpu *CPU) unusedn(inst *Instruction, operand []byte) { cpu.halted = true }

// Undefined opcode on a CMOS part, which guarantees its unused opcodes
// behave as NOPs of various lengths rather than doing something
// unpredictable. The CPU still stops here: a program that reaches one of
// these slots has fallen off the end of its intended instruction stream.
func (cpu *CPU) unusedc(inst *Instruction, operand []byte) { cpu.halted = true }
