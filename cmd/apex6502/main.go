// Copyright 2025 Eric Smith
// SPDX-License-Identifier: GPL-3.0-only

// Command apex6502 runs an Apex OS executable (SAV or BIN format) or a
// raw binary image on an emulated 6502/R65C02 CPU.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ebsmith-labs/apex6502/apex"
	"github.com/ebsmith-labs/apex6502/cpu"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on a normal
// program exit (KRENTR, KSAVER, or KRELOD), 1 on an argument or setup
// error, 3 on any halt (undefined opcode, tight loop, or unsupported
// Apex call). It's factored out of main so tests can drive it directly
// without exercising a real process exit.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("apex6502", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cmos      = fs.Bool("cmos", false, "emulate a CMOS R65C02 rather than an NMOS 6502")
		binFormat = fs.Bool("bin", false, "executable is in Apex BIN format")
		rawFormat = fs.Bool("raw", false, "executable is a raw binary image")
		inputFn   = fs.String("input", "", "input file for character device 3")
		outputFn  = fs.String("output", "", "output file for character device 3")
		printerFn = fs.String("printer", "", "output file for the printer device")
		statsWant = fs.Bool("stats", false, "print execution statistics on exit")
		trace     = fs.Bool("trace", false, "trace instruction execution")
		memTrace  = fs.Bool("memtrace", false, "trace memory writes")
		dumpFn    = fs.String("dump", "", "dump the 64KiB address space here on exit")
		loadAddr  = fs.Uint("load-addr", 0x0000, "raw format: address to load the image at")
		execAddr  = fs.Uint("exec-addr", 0x0400, "raw format: address to begin execution at")
	)
	fs.BoolVar(cmos, "c", false, "shorthand for -cmos")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: apex6502 [options] executable\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *binFormat && *rawFormat {
		fmt.Fprintln(stderr, "-bin and -raw are mutually exclusive")
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "executable file must be specified")
		return 1
	}
	executableFn := fs.Arg(0)

	variants := cpu.CPU6502
	if *cmos {
		variants = cpu.CPUR65C02
	}

	mem := cpu.NewFlatMemory()
	c := cpu.NewCPU(variants, mem)
	a := apex.New(mem)

	a.InstallCharacterDevice(7, apex.NewNullDevice())

	console := apex.NewConsoleDevice()
	a.InstallCharacterDevice(0, console)
	a.InstallCharacterDevice(1, console)

	printer := apex.NewPrinterDevice()
	if *printerFn != "" {
		if err := printer.OpenOutputFile(*printerFn); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	a.InstallCharacterDevice(2, printer)

	fileDevice := apex.NewFileByteDevice()
	if *inputFn != "" {
		if err := fileDevice.OpenInputFile(*inputFn, false); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	if *outputFn != "" {
		if err := fileDevice.OpenOutputFile(*outputFn, false); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	a.InstallCharacterDevice(3, fileDevice)

	c.Reg.Decimal = false

	a.Init()
	switch {
	case *binFormat:
		if err := apex.LoadApexBin(mem, executableFn); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		c.SetPC(apex.SysPageAddress + apex.VSTART)
	case *rawFormat:
		if err := mem.LoadRawBinary(executableFn, uint16(*loadAddr)); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		c.SetPC(uint16(*execAddr))
	default:
		if err := apex.LoadApexSav(mem, executableFn); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		c.SetPC(apex.SysPageAddress + apex.VSTART)
	}

	c.Reg.A = 0x00
	c.Reg.X = 0x00
	c.Reg.Y = 0x00
	c.Reg.SP = 0xff
	c.Reg.RestorePS(0x34)

	mem.SetTrace(*memTrace)
	_ = trace // accepted for compatibility; no per-instruction trace is implemented

	startTime := time.Now()
	var instructionCount, apexCallCount uint64

	finish := func() {
		elapsed := time.Since(startTime).Seconds()
		if *dumpFn != "" {
			if err := mem.Dump(*dumpFn); err != nil {
				fmt.Fprintf(stderr, "couldn't write memory dump: %v\n", err)
			}
		}
		if *statsWant {
			total := instructionCount + apexCallCount
			fmt.Fprintf(stderr, "elapsed time (s): %f\n", elapsed)
			fmt.Fprintf(stderr, "%d instructions executed\n", instructionCount)
			fmt.Fprintf(stderr, "%d apex calls executed\n", apexCallCount)
			if elapsed > 0 {
				fmt.Fprintf(stderr, "%f instructions executed per second\n", float64(instructionCount)/elapsed)
			}
			fmt.Fprintf(stderr, "%d cycles executed\n", c.Cycles)
			if elapsed > 0 {
				fmt.Fprintf(stderr, "%f cycles executed per second\n", float64(c.Cycles)/elapsed)
			}
			if total > 0 {
				fmt.Fprintf(stderr, "average clocks per instruction: %f\n", float64(c.Cycles)/float64(total))
			}
		}
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		finish()
		os.Exit(130)
	}()

	for {
		if c.Reg.PC >= apex.VectorStart && c.Reg.PC < apex.VectorEnd {
			reason := a.VectorExec(c)
			c.ExecuteRTS()
			apexCallCount++
			switch reason {
			case apex.NormalExit:
				finish()
				return 0
			case apex.AbnormalHalt:
				fmt.Fprintln(stderr, "apex halt")
				finish()
				return 3
			}
		} else {
			halted := c.Execute()
			instructionCount++
			if halted {
				fmt.Fprintln(stderr, "cpu halt")
				finish()
				return 3
			}
		}
	}
}
