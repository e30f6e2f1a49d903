// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

package apex_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ebsmith-labs/apex6502/apex"
	"github.com/ebsmith-labs/apex6502/cpu"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "object")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("couldn't write temp file: %v", err)
	}
	return path
}

func TestLoadApexBin(t *testing.T) {
	// A whitespace-separated object listing: an address record, two data
	// bytes, then a second address record and one more byte. Case and
	// whitespace should be ignored.
	path := writeTempFile(t, []byte("*1000\na9 5E\n*2000\nFF\n"))

	mem := cpu.NewFlatMemory()
	if err := apex.LoadApexBin(mem, path); err != nil {
		t.Fatalf("LoadApexBin: %v", err)
	}

	if got := mem.LoadByte(0x1000); got != 0xa9 {
		t.Errorf("mem[$1000] exp $a9, got $%02X", got)
	}
	if got := mem.LoadByte(0x1001); got != 0x5e {
		t.Errorf("mem[$1001] exp $5e, got $%02X", got)
	}
	if got := mem.LoadByte(0x2000); got != 0xff {
		t.Errorf("mem[$2000] exp $ff, got $%02X", got)
	}
}

func TestLoadApexBinRequiresLeadingAddress(t *testing.T) {
	path := writeTempFile(t, []byte("A9 5E"))
	mem := cpu.NewFlatMemory()
	if err := apex.LoadApexBin(mem, path); err == nil {
		t.Error("expected an error for a data byte with no preceding address record")
	}
}

func TestLoadApexSav(t *testing.T) {
	// Two pages. The first page's program area carries VSTART, and its
	// USRMEM field (offset 0x15) points the second page at $3000.
	page0 := make([]byte, apex.PageSize)
	page0[apex.VSTART] = 0x4c // JMP opcode, just a marker byte
	page0[apex.USRMEM] = 0x00
	page0[apex.USRMEM+1] = 0x30
	for i := range page0 {
		if i >= apex.SysPageProgramAreaSize {
			page0[i] = 0xee // fills zero page with a recognizable marker
		}
	}

	page1 := make([]byte, apex.PageSize)
	for i := range page1 {
		page1[i] = byte(i)
	}

	path := writeTempFile(t, append(append([]byte{}, page0...), page1...))

	mem := cpu.NewFlatMemory()
	if err := apex.LoadApexSav(mem, path); err != nil {
		t.Fatalf("LoadApexSav: %v", err)
	}

	if got := mem.LoadByte(apex.SysPageAddress + apex.VSTART); got != 0x4c {
		t.Errorf("system page VSTART byte exp $4c, got $%02X", got)
	}
	if got := mem.LoadByte(0x0050); got != 0xee {
		t.Errorf("zero page fill exp $ee, got $%02X", got)
	}
	if got := mem.LoadByte(0x3000); got != 0x00 {
		t.Errorf("mem[$3000] exp $00, got $%02X", got)
	}
	if got := mem.LoadByte(0x30ff); got != 0xff {
		t.Errorf("mem[$30ff] exp $ff, got $%02X", got)
	}
}

func TestLoadApexSavDiscardsTrailingPartialPage(t *testing.T) {
	page0 := make([]byte, apex.PageSize)
	page0[apex.USRMEM] = 0x00
	page0[apex.USRMEM+1] = 0x40

	partial := []byte{1, 2, 3}
	path := writeTempFile(t, append(append([]byte{}, page0...), partial...))

	mem := cpu.NewFlatMemory()
	if err := apex.LoadApexSav(mem, path); err != nil {
		t.Fatalf("LoadApexSav: %v", err)
	}
	if got := mem.LoadByte(0x4000); got != 0 {
		t.Errorf("expected trailing partial page to be discarded, found $%02X at $4000", got)
	}
}
