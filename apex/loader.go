// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex

import (
	"fmt"
	"os"
	"strings"

	"github.com/ebsmith-labs/apex6502/cpu"
)

const hexDigits = "0123456789abcdef"

// addressHexDigits and dataHexDigits size the ASCII-hex fields an Apex BIN
// file uses for an address record ($XXXX) and a data byte ($XX).
const (
	addressHexDigits = 4
	dataHexDigits    = 2
)

func downcase(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// LoadApexBin loads an Apex BIN file: a stream of ASCII hex digits where a
// leading '*' introduces a 4-digit load address and every subsequent pair
// of hex digits is the next byte to store there. Characters that are
// neither hex digits nor '*' are skipped. Data encountered before the
// first address record is an error.
func LoadApexBin(mem cpu.Memory, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("can't open Apex bin file: %w", err)
	}

	var haveAddress, readingAddress bool
	var address uint16
	var value uint16
	var digitCount int

	for _, raw := range data {
		c := downcase(raw)
		if c == '*' {
			readingAddress = true
			continue
		}
		v := strings.IndexByte(hexDigits, c)
		if v < 0 {
			continue
		}
		value = (value << 4) | uint16(v)
		digitCount++

		if readingAddress {
			if digitCount < addressHexDigits {
				continue
			}
			address = value
			haveAddress = true
			readingAddress = false
			digitCount = 0
			value = 0
			continue
		}

		if digitCount < dataHexDigits {
			continue
		}
		if !haveAddress {
			return fmt.Errorf("object file doesn't start with address")
		}
		mem.StoreByte(address, byte(value))
		address++
		digitCount = 0
		value = 0
	}

	return nil
}

// LoadApexSav loads an Apex SAV file, which is organized as a sequence of
// 256-byte pages. The first page is split: its first
// SysPageProgramAreaSize bytes land in the system page's program area, and
// the remainder lands in zero page starting at SysPageProgramAreaSize. The
// first page's USRMEM field then gives the load address for every
// subsequent page, which is incremented by one page each time. A trailing
// partial page is discarded, matching a truncated save file.
func LoadApexSav(mem cpu.Memory, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("can't open Apex SAV file: %w", err)
	}

	var address uint16
	var loadedSize int
	firstPage := true

	for offset := 0; offset+PageSize <= len(data); offset += PageSize {
		page := data[offset : offset+PageSize]
		if firstPage {
			for i := 0; i < SysPageProgramAreaSize; i++ {
				mem.StoreByte(SysPageAddress+uint16(i), page[i])
			}
			for i := SysPageProgramAreaSize; i < PageSize; i++ {
				mem.StoreByte(uint16(i), page[i])
			}
			address = mem.LoadAddress(SysPageAddress + USRMEM)
			fmt.Fprintf(os.Stderr, "loading at %04x\n", address)
			firstPage = false
		} else {
			for i := 0; i < PageSize; i++ {
				mem.StoreByte(address+uint16(i), page[i])
			}
			address += PageSize
			loadedSize += PageSize
		}
	}

	fmt.Fprintf(os.Stderr, "loading ended at %04x, size %d\n", address-1, loadedSize)
	return nil
}
