package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hexaflex/sim86/cpu"
	"github.com/hexaflex/sim86/decoder"
	"github.com/hexaflex/sim86/dump"
)

// App defines application context.
type App struct {
	config *Config        // Application configuration.
	out    io.Writer      // Listing and machine state go here.
	log    *logrus.Logger // Diagnostics and trace output.
	cpu    *CPUController // VM with program to be run.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config, out io.Writer, log *logrus.Logger) *App {
	var a App
	a.config = config
	a.out = out
	a.log = log
	a.cpu = NewCPUController(a.printTrace)
	return &a
}

// Run loads the program, prints its listing, executes it and prints
// the final machine state. The state is printed even when execution fails.
func (a *App) Run() error {
	a.log.Info(Version())

	program, err := a.loadProgram()
	if err != nil {
		return err
	}

	listing, err := decoder.Disassemble(program)
	if err := decoder.WriteListing(a.out, listing); err != nil {
		return err
	}
	if err != nil {
		a.log.WithError(err).Warn("listing is incomplete")
	}

	runErr := a.cpu.Run(a.config.MaxSteps)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Final registers:")
	if err := a.cpu.CPU().WriteState(a.out); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	a.log.WithFields(logrus.Fields{
		"steps":     a.cpu.CPU().Steps(),
		"elapsed":   a.cpu.Elapsed(),
		"frequency": prettyFrequency(a.cpu.Frequency()),
	}).Info("halted")

	return a.writeDumps()
}

// loadProgram loads the current program from disk and resets the cpu.
func (a *App) loadProgram() ([]byte, error) {
	a.log.WithField("file", a.config.Program).Info("loading")

	program, err := dump.ReadFile(a.config.Program, cpu.MemoryCapacity)
	if err != nil {
		return nil, err
	}

	if err := a.cpu.Load(program); err != nil {
		return nil, err
	}
	return program, nil
}

// writeDumps writes the requested memory dumps, if any.
func (a *App) writeDumps() error {
	mem := a.cpu.CPU().Memory()

	if a.config.Dump != "" {
		a.log.WithField("file", a.config.Dump).Info("writing memory dump")
		err := dump.WriteFile(a.config.Dump, func(w io.Writer) error {
			return dump.WriteMemory(w, mem)
		})
		if err != nil {
			return err
		}
	}

	if a.config.DumpImage != "" {
		a.log.WithFields(logrus.Fields{
			"file":   a.config.DumpImage,
			"region": fmt.Sprintf("%04x %dx%d", a.config.Image.Address, a.config.Image.Width, a.config.Image.Height),
		}).Info("writing memory image")
		err := dump.WriteFile(a.config.DumpImage, func(w io.Writer) error {
			return dump.WriteImage(w, mem, a.config.Image)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// printTrace logs every instruction just before it executes.
func (a *App) printTrace(i *decoder.Instruction) {
	a.log.WithFields(logrus.Fields{
		"ip":   fmt.Sprintf("%04x", i.Offset),
		"size": i.Size,
	}).Debug(i.String())
}
