// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex

import "github.com/ebsmith-labs/apex6502/cpu"

// EOFCharacter is the byte Apex character devices report on end of file:
// control-Z, ASCII SUB.
const EOFCharacter = 0x1a

// CharacterDevice is one of the eight byte-oriented I/O devices KHAND can
// dispatch to: open for input/output, read/write a byte, close, and poll
// for available input without blocking.
type CharacterDevice interface {
	OpenForInput(reg *cpu.Registers) bool
	OpenForOutput(reg *cpu.Registers) bool
	InputByte(reg *cpu.Registers) bool
	OutputByte(reg *cpu.Registers) bool
	Close(reg *cpu.Registers) bool
	InputByteAvailable(reg *cpu.Registers) bool
}

// BaseDevice supplies the default behavior every concrete device inherits
// unless it overrides: opens and closes always succeed, and a device that
// doesn't track readiness reports no input available rather than blocking
// forever.
type BaseDevice struct{}

func (BaseDevice) OpenForInput(reg *cpu.Registers) bool       { return true }
func (BaseDevice) OpenForOutput(reg *cpu.Registers) bool      { return true }
func (BaseDevice) Close(reg *cpu.Registers) bool              { return true }
func (BaseDevice) InputByteAvailable(reg *cpu.Registers) bool { return false }
