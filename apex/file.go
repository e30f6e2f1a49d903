// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex

import (
	"fmt"
	"io"
	"os"

	"github.com/ebsmith-labs/apex6502/cpu"
)

// FileByteDevice binds Apex's byte-stream input/output calls to host
// files. Binary mode disables the LF<->CR translation that text mode
// applies so that raw data round-trips byte for byte.
type FileByteDevice struct {
	inputFile    *os.File
	inputBinary  bool
	inputOpen    bool

	outputFile   *os.File
	outputBinary bool
	outputOpen   bool
}

// NewFileByteDevice creates a file byte device with no files attached.
// Opening for input/output without a host file configured behaves as an
// already-exhausted input stream or a discarding output stream.
func NewFileByteDevice() *FileByteDevice {
	return &FileByteDevice{}
}

// OpenInputFile attaches filename as the source for subsequent
// OpenForInput/InputByte calls.
func (d *FileByteDevice) OpenInputFile(filename string, binary bool) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("couldn't open input file %q: %w", filename, err)
	}
	d.inputFile = f
	d.inputBinary = binary
	return nil
}

// OpenOutputFile attaches filename as the destination for subsequent
// OpenForOutput/OutputByte calls.
func (d *FileByteDevice) OpenOutputFile(filename string, binary bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("couldn't open output file %q: %w", filename, err)
	}
	d.outputFile = f
	d.outputBinary = binary
	return nil
}

func (d *FileByteDevice) OpenForInput(reg *cpu.Registers) bool {
	if d.inputFile != nil {
		d.inputFile.Seek(0, io.SeekStart)
	}
	d.inputOpen = true
	return true
}

func (d *FileByteDevice) OpenForOutput(reg *cpu.Registers) bool {
	d.outputOpen = true
	return true
}

func (d *FileByteDevice) InputByte(reg *cpu.Registers) bool {
	if !d.inputOpen {
		return false
	}
	if d.inputFile == nil {
		reg.A = EOFCharacter
		return true
	}
	var buf [1]byte
	n, err := d.inputFile.Read(buf[:])
	if n == 0 || err != nil {
		reg.A = EOFCharacter
		return true
	}
	c := buf[0]
	if !d.inputBinary && c == '\n' {
		c = '\r'
	}
	reg.A = c
	return true
}

func (d *FileByteDevice) OutputByte(reg *cpu.Registers) bool {
	if !d.outputOpen {
		return false
	}
	c := reg.A
	if !d.outputBinary && c == '\r' {
		c = '\n'
	}
	if d.outputFile != nil {
		d.outputFile.Write([]byte{c})
	}
	return true
}

func (d *FileByteDevice) Close(reg *cpu.Registers) bool {
	d.inputOpen = false
	d.outputOpen = false
	return true
}

func (d *FileByteDevice) InputByteAvailable(reg *cpu.Registers) bool {
	return false
}
