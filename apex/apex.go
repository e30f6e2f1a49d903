// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

// Package apex emulates the Apex operating system's vector-dispatch
// layer: the fixed system page a loaded executable calls into for
// warm/cold start, byte I/O, and disk block access, plus the character
// devices those calls are routed to.
package apex

import (
	"fmt"
	"os"

	"github.com/ebsmith-labs/apex6502/cpu"
)

// PageSize is the size, in bytes, of an Apex SAV file page.
const PageSize = 0x100

// SysPageAddress is the fixed load address of the Apex system page.
const SysPageAddress = 0xbf00

// SysPageProgramAreaSize is the number of bytes at the start of the
// system page that belong to the loaded program rather than to Apex.
const SysPageProgramAreaSize = 0x50

// SysPageOffsets are byte offsets within the system page at SysPageAddress.
const (
	// Offsets 0x00-0x4f belong to the program.
	VRSTRT = 0x00 // 3 (JMP) program restart vector
	VSTART = 0x03 // 3 (JMP) program start vector
	VEXIT  = 0x06 // 3 (JMP) program normal exit address, usually KRENTR
	VERROR = 0x09 // 3 (JMP) program error exit address, usually KRELOD
	VABORT = 0x0c // 3 (JMP) user abort exit address, usually KSAVER

	USRMEM = 0x15 // 2 base addr of user program
	PROSIZ = 0x17 // 1 user program size in 256-byte pages

	RERUNF = 0x20 // 1 rerun flag
	DEXTO  = 0x21 // 3 default extension for output files
	DESTI  = 0x24 // 3 default extension for input files
	DEFAUL = 0x27 // 1 single bit default flags
	SYBOMB = 0x28 // 1 $ff if program bombs system
	USRTOP = 0x29 // 1 last page+1 for user program (max $b0)

	OTBUFD = 0x36 // 2 base of output buffer
	OTBUFE = 0x38 // 2 end of output buffer
	INBUFD = 0x3a // 2 base of input buffer
	INBUFE = 0x3c // 2 end of input buffer

	// Offsets 0x50-0xff belong to Apex.
	SYSENF = 0x50 // 1 flag showing re-entry condition
	DEVMSK = 0x51 // 1 mask showing valid units
	SYSDEV = 0x52 // 1 unit system is on
	SYSBLK = 0x53 // 2 block system file is on
	SWPBLK = 0x55 // 2 block swap file is on
	SYSDAT = 0x57 // 3 system date
	LINIDX = 0x5a // 2 input line pointer ($ff = null)
	NOWDEV = 0x5c // 1 current byte I/O device
	EXECUT = 0x5d // 1 zero if exec mode is on
	LOWER  = 0x5e // 1 lower case switch (0 = upper)

	ERRDEV = 0x5f // 1 error device number
	ERRNUM = 0x60 // 1 device handler error number
	LINPTR = 0x61 // 1 "real" input line pointer of handler ($ff = null)
	SAVBLK = 0x62 // 2 disk driver aux word
	LOKMSK = 0x64 // 1 disk driver locked units mask
	CONHOR = 0x65 // console horizontal width, characters per line

	// I/O information block for unit drivers.
	UNIT   = 0x68 // 1 current unit number
	BLKNO  = 0x69 // 2 current block number
	NBLKS  = 0x6b // 1 number of blocks to transfer
	FADDR  = 0x6c // 2 address pointer
	ENDBLK = 0x6e // 2 auxiliary parameter

	// Output file information.
	OTLBLK = 0x70 // 2 first block of output file
	OTHBLK = 0x72 // 2 last block of output file
	OTFLG  = 0x74 // 1 status flags
	OTNO   = 0x75 // 1 directory number of output file
	OTDEV  = 0x76 // 1 unit number of output file

	// Input file information.
	INLBLK = 0x78 // 2 first block of input file
	INHBLK = 0x7a // 2 last block of input file
	INFLG  = 0x7c // 1 status flags
	INNO   = 0x7d // 1 directory number of input file
	INDEV  = 0x7e // 1 unit number of input file

	DRVTAB = 0xc0 // 16 8 pointers to I/O device handlers

	// Entry vectors to resident code.
	KRENTR = 0xd0 // 3 (JMP) boot in Apex (warm start)
	KSAVER = 0xd3 // 3 (JMP) preserve current user image
	KRELOD = 0xd6 // 3 (JMP) reload Apex (cold start)
	KHAND  = 0xd9 // 3 (JMP) byte I/O routine
	KSCAN  = 0xdc // 3 (JMP) file lookup routine
	KRESTD = 0xdf // 3 (JMP) reset disk driver
	KREAD  = 0xe2 // 3 (JMP) read contiguous disk blocks
	KWRITE = 0xe5 // 3 (JMP) write contiguous disk blocks

	KSSPND = 0xfd // 3 suspend
)

// VectorStart and VectorEnd bound the absolute address range occupied by
// the resident entry vectors, used to recognize a syscall dispatch.
const (
	VectorStart = SysPageAddress + KRENTR
	VectorEnd   = SysPageAddress + KWRITE + 3
)

// MaxCharDevice is the number of character device slots KHAND can address.
const MaxCharDevice = 8

// KHAND function codes, passed in the X register.
const (
	khandOpenInput          = 0x00
	khandOpenOutput         = 0x03
	khandInputByte          = 0x06
	khandOutputByte         = 0x09
	khandClose              = 0x0c
	khandInputByteAvailable = 0x0f
)

// HaltReason classifies why an Apex vector dispatch stopped the run, so a
// caller can tell a clean program exit from a failed or unsupported call.
type HaltReason int

const (
	// NotHalted means the dispatched call completed normally; execution
	// should continue.
	NotHalted HaltReason = iota
	// NormalExit means the program exited via KRENTR, KSAVER, or KRELOD.
	NormalExit
	// AbnormalHalt means the call failed: an unrecognized entry vector,
	// an unimplemented Apex call, or a KHAND dispatch naming a device
	// that isn't installed.
	AbnormalHalt
)

// Apex emulates the system page's dispatch behavior for a single memory
// bus and its installed character devices.
type Apex struct {
	mem     cpu.Memory
	devices [MaxCharDevice]CharacterDevice
}

// New creates an Apex dispatch layer bound to mem.
func New(mem cpu.Memory) *Apex {
	return &Apex{mem: mem}
}

// InstallCharacterDevice assigns device to the given device number
// (0-7). KHAND calls reference devices only by number, via NOWDEV.
func (a *Apex) InstallCharacterDevice(deviceNumber int, device CharacterDevice) {
	if deviceNumber < 0 || deviceNumber >= MaxCharDevice {
		panic(fmt.Sprintf("invalid character device number %d", deviceNumber))
	}
	a.devices[deviceNumber] = device
}

// Init sets system page values in preparation to run a loaded program.
func (a *Apex) Init() {
	a.mem.StoreByte(SysPageAddress+LINIDX, 0xff)
	// for unknown reasons, the original input-line-pointer logic uses the
	// console device handler's LINPTR offset but refers to it as LINIDX
	a.mem.StoreByte(SysPageAddress+LINPTR, 0xff)
}

// VectorExec emulates an Apex system call. c.Reg.PC must fall within
// [VectorStart, VectorEnd). It reports why (if at all) the call halted.
func (a *Apex) VectorExec(c *cpu.CPU) HaltReason {
	switch int(c.Reg.PC) - SysPageAddress {
	case KRENTR:
		return a.krentr(c)
	case KSAVER:
		return a.ksaver(c)
	case KRELOD:
		return a.krelod(c)
	case KHAND:
		return a.khand(c)
	case KSCAN:
		return a.kscan(c)
	case KRESTD:
		return a.krestd(c)
	case KREAD:
		return a.kread(c)
	case KWRITE:
		return a.kwrite(c)
	}
	fmt.Fprintf(os.Stderr, "unrecognized APEX entry vector %04x\n", c.Reg.PC)
	return AbnormalHalt
}

func (a *Apex) krentr(c *cpu.CPU) HaltReason {
	fmt.Fprintln(os.Stderr, "program exited via KRENTR")
	return NormalExit
}

func (a *Apex) ksaver(c *cpu.CPU) HaltReason {
	fmt.Fprintln(os.Stderr, "program exited via KSAVER")
	return NormalExit
}

func (a *Apex) krelod(c *cpu.CPU) HaltReason {
	fmt.Fprintln(os.Stderr, "program exited via KRELOD")
	return NormalExit
}

// khand dispatches a byte I/O call to the device selected by NOWDEV.
// The function code (device handler entry offset) arrives in X;
// arguments, if any, arrive in A and Y.
func (a *Apex) khand(c *cpu.CPU) HaltReason {
	function := c.Reg.X
	nowdev := a.mem.LoadByte(SysPageAddress + NOWDEV)

	if int(nowdev) < MaxCharDevice && a.devices[nowdev] != nil {
		dev := a.devices[nowdev]
		switch function {
		case khandOpenInput:
			c.Reg.Carry = !dev.OpenForInput(&c.Reg)
			return NotHalted
		case khandOpenOutput:
			c.Reg.Carry = !dev.OpenForOutput(&c.Reg)
			return NotHalted
		case khandInputByte:
			c.Reg.Carry = !dev.InputByte(&c.Reg)
			return NotHalted
		case khandOutputByte:
			c.Reg.Carry = !dev.OutputByte(&c.Reg)
			return NotHalted
		case khandClose:
			c.Reg.Carry = !dev.Close(&c.Reg)
			return NotHalted
		case khandInputByteAvailable:
			if nowdev > 1 {
				break
			}
			c.Reg.Carry = !dev.InputByteAvailable(&c.Reg)
			return NotHalted
		}
	}

	fmt.Fprintf(os.Stderr, "bad KHAND call, NOWDEV %02x, A %02x, X %02x, Y %02x\n",
		nowdev, c.Reg.A, c.Reg.X, c.Reg.Y)
	return AbnormalHalt
}

func (a *Apex) kscan(c *cpu.CPU) HaltReason {
	// Takes a pointer to an 11-character (8 name, 3 ext) blank-filled file
	// name in (A, Y). Returns carry clear for success, set for failure, and
	// on success fills in BLKNO/ENDBLK.
	fmt.Fprintln(os.Stderr, "KSCAN not implemented")
	return AbnormalHalt
}

func (a *Apex) krestd(c *cpu.CPU) HaltReason {
	fmt.Fprintln(os.Stderr, "KRESTD called, does nothing.")
	c.Reg.Carry = false
	return NotHalted
}

func (a *Apex) kread(c *cpu.CPU) HaltReason {
	fmt.Fprintln(os.Stderr, "KREAD not implemented")
	return AbnormalHalt
}

func (a *Apex) kwrite(c *cpu.CPU) HaltReason {
	fmt.Fprintln(os.Stderr, "KWRITE not implemented")
	return AbnormalHalt
}
