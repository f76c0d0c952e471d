// This file is part of sim6502.
//
// sim6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sim6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sim6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/disassembly"
	"github.com/jetsetilly/sim6502/hardware/audio"
	"github.com/jetsetilly/sim6502/hardware/cpu"
	"github.com/jetsetilly/sim6502/hardware/preferences"
	"github.com/jetsetilly/sim6502/logger"
	"github.com/jetsetilly/sim6502/modalflag"
	"github.com/jetsetilly/sim6502/prefs"
	"github.com/jetsetilly/sim6502/programloader"
	"github.com/jetsetilly/sim6502/statsview"
	"github.com/jetsetilly/sim6502/version"
	"github.com/jetsetilly/sim6502/wavwriter"
	"github.com/pkg/term"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the command line and runs the selected mode. returns the
// exit code of the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "STATE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "DISASM":
		err = disasm(md)

	case "STATE":
		err = showState(md)

	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to the modes that create a CPU.
type cpuOptions struct {
	prefs  *string
	origin *uint16
	log    *bool
}

func addCPUOptions(md *modalflag.Modes) cpuOptions {
	return cpuOptions{
		prefs:  md.AddString("prefs", "", "preferences for this run (eg. \"cpu.origin::0x0600\")"),
		origin: md.AddAddress("origin", 0x0000, "load address of program (default from preferences)"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// creates the preferences and the CPU and loads the program or state named
// on the command line.
func setupCPU(md *modalflag.Modes, opts cpuOptions) (*cpu.CPU, *preferences.Preferences, error) {
	if *opts.log {
		logger.SetEcho(md.Output)
	}

	prefs.PushCommandLineStack(*opts.prefs)
	defer prefs.PopCommandLineStack()

	prf, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	// origin on the command line takes priority over the preferences
	md.Visit(func(flag string) {
		if flag == "origin" {
			_ = prf.Origin.Set(*opts.origin)
		}
	})

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, curated.Errorf("program or state file required for %s mode", md)
	case 1:
	default:
		return nil, nil, curated.Errorf("too many arguments for %s mode", md)
	}

	pl := programloader.NewLoader(md.GetArg(0))
	err = pl.Load()
	if err != nil {
		return nil, nil, err
	}

	mc, err := cpu.NewCPU(prf)
	if err != nil {
		return nil, nil, err
	}

	if pl.IsState {
		err = mc.Load(pl.Data)
	} else {
		err = mc.LoadProgram(pl.Data, uint16(prf.Origin.Get().(int)))
	}
	if err != nil {
		return nil, nil, err
	}

	return mc, prf, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	opts := addCPUOptions(md)
	save := md.AddString("save", "", "save CPU state to file when execution ends")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	irq := md.AddUint64("irq", 0, "raise a hardware interrupt every n cycles")
	maxCycles := md.AddUint64("maxcycles", 0, "stop after n cycles (0 is unlimited)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, prf, err := setupCPU(md, opts)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var au *audio.Unit
	if *wav != "" {
		aw, err := wavwriter.New(*wav, prf.SampleRate.Get().(int))
		if err != nil {
			return err
		}
		au, err = audio.NewUnit(prf, aw)
		if err != nil {
			return err
		}
	}

	err = execute(mc, au, *irq, *maxCycles)
	if err != nil {
		return err
	}

	if au != nil {
		err = au.EndMixing()
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%s\n%d cycles\n", mc, mc.State().Ticks())

	if *save != "" {
		err = os.WriteFile(*save, mc.Save(), 0o644)
		if err != nil {
			return curated.Errorf("save: %v", err)
		}
	}

	return nil
}

// runs the CPU until the program ends or until the maximum number of cycles
// has been reached. a maxCycles value of zero means there is no maximum.
func execute(mc *cpu.CPU, au *audio.Unit, irq uint64, maxCycles uint64) error {
	var callback func() error
	if au != nil {
		callback = func() error {
			return au.Cycle(mc.State())
		}
	}

	for {
		running, err := mc.Cycle(callback)
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		ticks := mc.State().Ticks()
		if irq > 0 && ticks%irq == 0 {
			mc.RequestHardwareInterrupt()
		}
		if maxCycles > 0 && ticks >= maxCycles {
			return nil
		}
	}
}

func step(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Press any key to execute the next instruction. Press q to quit.")

	opts := addCPUOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, _, err := setupCPU(md, opts)
	if err != nil {
		return err
	}

	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return curated.Errorf("step: %v", err)
	}
	defer func() {
		_ = t.Restore()
		_ = t.Close()
	}()

	key := make([]byte, 1)
	for {
		v := mc.State()
		fmt.Fprintf(md.Output, "%s\n  %s\n", mc.Disassemble(v.Registers().PC.Address()), mc)

		_, err := t.Read(key)
		if err != nil {
			return curated.Errorf("step: %v", err)
		}
		if key[0] == 'q' || key[0] == 'Q' {
			return nil
		}

		running, err := stepInstruction(mc)
		if err != nil {
			return err
		}
		if !running {
			fmt.Fprintf(md.Output, "program ended after %d cycles\n", mc.State().Ticks())
			return nil
		}
	}
}

// runs the CPU until the current instruction has completed.
func stepInstruction(mc *cpu.CPU) (bool, error) {
	for {
		running, err := mc.Cycle(nil)
		if err != nil || !running {
			return running, err
		}
		if mc.State().CyclesLeft() == 0 {
			return true, nil
		}
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x0000, "load address of program")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("program file required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
			Cycles:   *cycles,
		}

		pl := programloader.NewLoader(md.GetArg(0))
		err = pl.Load()
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromProgram(pl.Data, *origin, nil)
		if err != nil {
			return err
		}

		err = dsm.Write(md.Output, attr)
		if err != nil {
			return err
		}
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showState(md *modalflag.Modes) error {
	md.NewMode()

	viz := md.AddString("memviz", "", "write graphviz representation of the registers to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("state file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	pl := programloader.NewLoader(md.GetArg(0))
	err = pl.Load()
	if err != nil {
		return err
	}

	mc, err := cpu.NewCPU(nil)
	if err != nil {
		return err
	}
	err = mc.Load(pl.Data)
	if err != nil {
		return err
	}

	writeState(md.Output, mc)

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()

		regs := mc.State().Registers()
		flags := mc.State().Status()
		memviz.Map(f, &regs, &flags)
	}

	return nil
}

// writes a summary of the CPU state to io.Writer.
func writeState(output io.Writer, mc *cpu.CPU) {
	v := mc.State()
	fmt.Fprintf(output, "%s\n", mc)
	fmt.Fprintf(output, "cycles left: %d\n", v.CyclesLeft())
	fmt.Fprintf(output, "executing opcode: 0x%02x\n", v.ExecutingOpcode())
	fmt.Fprintf(output, "next: %s\n", mc.Disassemble(v.Registers().PC.Address()))
}
