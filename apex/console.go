// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex

import (
	"bufio"
	"os"

	"golang.org/x/term"

	"github.com/ebsmith-labs/apex6502/cpu"
)

// ConsoleDevice is the interactive terminal: a single shared byte stream
// translating LF to CR on input and CR to LF on output, matching the line
// discipline Apex programs expect from a serial console.
type ConsoleDevice struct {
	in         *bufio.Reader
	isTerminal bool
	lastWasCR  bool
}

// NewConsoleDevice creates a console device bound to the process's
// standard input and output.
func NewConsoleDevice() *ConsoleDevice {
	return &ConsoleDevice{
		in:         bufio.NewReader(os.Stdin),
		isTerminal: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func (d *ConsoleDevice) OpenForInput(reg *cpu.Registers) bool  { return true }
func (d *ConsoleDevice) OpenForOutput(reg *cpu.Registers) bool { return true }
func (d *ConsoleDevice) Close(reg *cpu.Registers) bool         { return true }

func (d *ConsoleDevice) InputByte(reg *cpu.Registers) bool {
	c, err := d.in.ReadByte()
	if err != nil {
		reg.A = EOFCharacter
		return true
	}
	if c == '\n' {
		c = '\r'
	}
	reg.A = c
	return true
}

func (d *ConsoleDevice) OutputByte(reg *cpu.Registers) bool {
	c := reg.A
	if c == '\n' && d.lastWasCR {
		// A literal LF immediately following a translated CR is the
		// second half of a CR-LF pair; the CR already produced the LF.
		d.lastWasCR = false
		return true
	}
	d.lastWasCR = c == '\r'
	if c == '\r' {
		c = '\n'
	}
	os.Stdout.Write([]byte{c})
	return true
}

// InputByteAvailable reports whether a byte can be read from the console
// without blocking. On a piped or redirected stdin this is answered from
// the reader's lookahead buffer; on an interactive terminal, determining
// non-blocking readiness would require putting the terminal in raw mode
// (golang.org/x/term.MakeRaw), which would also disable the line editing
// users expect, so this reports unavailable rather than fight the tty.
func (d *ConsoleDevice) InputByteAvailable(reg *cpu.Registers) bool {
	if d.isTerminal {
		return false
	}
	return d.in.Buffered() > 0
}
