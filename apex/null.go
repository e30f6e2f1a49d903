// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex

import "github.com/ebsmith-labs/apex6502/cpu"

// NullDevice discards everything written to it and reports end of file
// on every read, the way /dev/null behaves for a line-oriented caller.
type NullDevice struct {
	BaseDevice
}

// NewNullDevice creates a null character device.
func NewNullDevice() *NullDevice {
	return &NullDevice{}
}

func (d *NullDevice) InputByte(reg *cpu.Registers) bool {
	reg.A = EOFCharacter
	return true
}

func (d *NullDevice) OutputByte(reg *cpu.Registers) bool {
	return true
}
