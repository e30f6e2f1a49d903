// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex

import (
	"fmt"
	"os"

	"github.com/ebsmith-labs/apex6502/cpu"
)

// PrinterDevice is output-only: opening for input always fails, and a read
// attempt reports failure even though it still surfaces an EOF byte in A.
type PrinterDevice struct {
	outputFile *os.File
	outputOpen bool
}

// NewPrinterDevice creates a printer device with no output file attached.
func NewPrinterDevice() *PrinterDevice {
	return &PrinterDevice{}
}

// OpenOutputFile attaches filename as the printer's destination.
func (d *PrinterDevice) OpenOutputFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("couldn't open printer file %q: %w", filename, err)
	}
	d.outputFile = f
	return nil
}

func (d *PrinterDevice) OpenForInput(reg *cpu.Registers) bool {
	return false
}

func (d *PrinterDevice) OpenForOutput(reg *cpu.Registers) bool {
	d.outputOpen = true
	return true
}

func (d *PrinterDevice) InputByte(reg *cpu.Registers) bool {
	reg.A = EOFCharacter
	return false
}

func (d *PrinterDevice) OutputByte(reg *cpu.Registers) bool {
	if !d.outputOpen {
		return false
	}
	c := reg.A
	if c == '\r' {
		c = '\n'
	}
	if d.outputFile != nil {
		d.outputFile.Write([]byte{c})
	}
	return true
}

func (d *PrinterDevice) Close(reg *cpu.Registers) bool {
	d.outputOpen = false
	return true
}

func (d *PrinterDevice) InputByteAvailable(reg *cpu.Registers) bool {
	return false
}
