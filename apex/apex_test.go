// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex_test

import (
	"io"
	"os"
	"testing"

	"github.com/ebsmith-labs/apex6502/apex"
	"github.com/ebsmith-labs/apex6502/cpu"
)

func TestNullDevice(t *testing.T) {
	d := apex.NewNullDevice()
	var reg cpu.Registers
	reg.A = 0x42

	if !d.OutputByte(&reg) {
		t.Error("NullDevice.OutputByte should always succeed")
	}
	if !d.InputByte(&reg) {
		t.Error("NullDevice.InputByte should always succeed")
	}
	if reg.A != apex.EOFCharacter {
		t.Errorf("exp A=$%02X (EOF), got $%02X", apex.EOFCharacter, reg.A)
	}
}

func TestFileByteDeviceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	outPath := dir + "/out.txt"

	d := apex.NewFileByteDevice()
	if err := d.OpenOutputFile(outPath, false); err != nil {
		t.Fatalf("OpenOutputFile: %v", err)
	}
	var reg cpu.Registers
	if !d.OpenForOutput(&reg) {
		t.Fatal("OpenForOutput failed")
	}

	reg.A = '\r'
	if !d.OutputByte(&reg) {
		t.Fatal("OutputByte failed")
	}
	d.Close(&reg)

	if err := d.OpenInputFile(outPath, false); err != nil {
		t.Fatalf("OpenInputFile: %v", err)
	}
	if !d.OpenForInput(&reg) {
		t.Fatal("OpenForInput failed")
	}
	if !d.InputByte(&reg) {
		t.Fatal("InputByte failed")
	}
	// text mode: CR was translated to LF on write, and back to CR on read
	if reg.A != '\r' {
		t.Errorf("exp CR round-trip, got $%02X", reg.A)
	}

	if !d.InputByte(&reg) {
		t.Fatal("InputByte at EOF should still report success")
	}
	if reg.A != apex.EOFCharacter {
		t.Errorf("exp EOF byte at end of file, got $%02X", reg.A)
	}
}

func TestFileByteDeviceNotOpenFails(t *testing.T) {
	d := apex.NewFileByteDevice()
	var reg cpu.Registers
	if d.InputByte(&reg) {
		t.Error("InputByte on an unopened device should fail")
	}
	if d.OutputByte(&reg) {
		t.Error("OutputByte on an unopened device should fail")
	}
}

func TestPrinterDeviceCannotOpenForInput(t *testing.T) {
	d := apex.NewPrinterDevice()
	var reg cpu.Registers
	if d.OpenForInput(&reg) {
		t.Error("printer device should never open for input")
	}
	if d.InputByte(&reg) {
		t.Error("printer device InputByte should report failure")
	}
	if reg.A != apex.EOFCharacter {
		t.Errorf("exp A=$%02X even on failure, got $%02X", apex.EOFCharacter, reg.A)
	}
}

func newTestApex() (*apex.Apex, cpu.Memory, *cpu.CPU) {
	mem := cpu.NewFlatMemory()
	a := apex.New(mem)
	c := cpu.NewCPU(cpu.CPU6502, mem)
	return a, mem, c
}

func TestVectorExecUnrecognizedVectorHalts(t *testing.T) {
	a, _, c := newTestApex()
	c.SetPC(apex.SysPageAddress + apex.KSSPND) // not a dispatchable entry vector
	if reason := a.VectorExec(c); reason != apex.AbnormalHalt {
		t.Errorf("expected an unrecognized vector to report AbnormalHalt, got %v", reason)
	}
}

func TestVectorExecKRENTRHalts(t *testing.T) {
	a, _, c := newTestApex()
	c.SetPC(apex.SysPageAddress + apex.KRENTR)
	if reason := a.VectorExec(c); reason != apex.NormalExit {
		t.Errorf("expected KRENTR to report NormalExit, got %v", reason)
	}
}

func TestVectorExecKHANDInputByte(t *testing.T) {
	a, mem, c := newTestApex()
	a.InstallCharacterDevice(7, apex.NewNullDevice())
	mem.StoreByte(apex.SysPageAddress+apex.NOWDEV, 7)

	c.SetPC(apex.SysPageAddress + apex.KHAND)
	c.Reg.X = 0x06 // input byte function code

	if reason := a.VectorExec(c); reason != apex.NotHalted {
		t.Errorf("expected KHAND dispatch to an installed device to not halt, got %v", reason)
	}
	if c.Reg.Carry {
		t.Error("expected carry clear on successful device call")
	}
	if c.Reg.A != apex.EOFCharacter {
		t.Errorf("exp A=$%02X from null device, got $%02X", apex.EOFCharacter, c.Reg.A)
	}
}

func TestVectorExecKHANDUnknownDeviceHalts(t *testing.T) {
	a, mem, c := newTestApex()
	mem.StoreByte(apex.SysPageAddress+apex.NOWDEV, 5) // no device installed at 5

	c.SetPC(apex.SysPageAddress + apex.KHAND)
	c.Reg.X = 0x06

	if reason := a.VectorExec(c); reason != apex.AbnormalHalt {
		t.Errorf("expected a KHAND call to an uninstalled device to report AbnormalHalt, got %v", reason)
	}
}

func TestKRESTDIsANoOp(t *testing.T) {
	a, _, c := newTestApex()
	c.SetPC(apex.SysPageAddress + apex.KRESTD)
	c.Reg.Carry = true

	if reason := a.VectorExec(c); reason != apex.NotHalted {
		t.Errorf("expected KRESTD to not halt, got %v", reason)
	}
	if c.Reg.Carry {
		t.Error("KRESTD should clear carry")
	}
}

// Scenario 6: Apex KHAND output-byte dispatches through the console
// device installed at NOWDEV 0 and writes the character to stdout.
func TestScenarioKHANDOutputByteToConsole(t *testing.T) {
	mem := cpu.NewFlatMemory()
	a := apex.New(mem)
	c := cpu.NewCPU(cpu.CPU6502, mem)
	a.InstallCharacterDevice(0, apex.NewConsoleDevice())
	mem.StoreByte(apex.SysPageAddress+apex.NOWDEV, 0)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	saved := os.Stdout
	os.Stdout = w

	c.SetPC(apex.SysPageAddress + apex.KHAND)
	c.Reg.A = 'H'
	c.Reg.X = 0x09 // output-byte function code
	reason := a.VectorExec(c)

	os.Stdout = saved
	w.Close()
	out, readErr := io.ReadAll(r)
	if readErr != nil {
		t.Fatalf("reading captured stdout: %v", readErr)
	}

	if reason != apex.NotHalted {
		t.Errorf("expected KHAND output-byte dispatch to an installed console to not halt, got %v", reason)
	}
	if c.Reg.Carry {
		t.Error("expected carry clear on successful output")
	}
	if string(out) != "H" {
		t.Errorf("expected stdout to contain %q, got %q", "H", string(out))
	}
}

func TestInitSetsLineIndexOffsets(t *testing.T) {
	a, mem, _ := newTestApex()
	a.Init()

	if got := mem.LoadByte(apex.SysPageAddress + apex.LINIDX); got != 0xff {
		t.Errorf("exp LINIDX $ff, got $%02X", got)
	}
	if got := mem.LoadByte(apex.SysPageAddress + apex.LINPTR); got != 0xff {
		t.Errorf("exp LINPTR $ff, got $%02X", got)
	}
}
