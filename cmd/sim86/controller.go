package main

import (
	"fmt"
	"time"

	"github.com/hexaflex/sim86/cpu"
)

// CPUController controls the execution of a CPU and keeps
// timing statistics for the current run.
type CPUController struct {
	cpu     *cpu.CPU
	start   time.Time
	elapsed time.Duration
}

// NewCPUController creates a new CPU controller.
func NewCPUController(trace cpu.TraceFunc) *CPUController {
	return &CPUController{
		cpu: cpu.New(trace),
	}
}

// CPU returns the controlled machine.
func (c *CPUController) CPU() *cpu.CPU {
	return c.cpu
}

// Load resets the cpu and loads the given program.
func (c *CPUController) Load(program []byte) error {
	c.elapsed = 0
	return c.cpu.Load(program)
}

// Run executes the program until it ends, fails or exceeds limit steps.
func (c *CPUController) Run(limit int) error {
	c.start = time.Now()
	err := c.cpu.Run(limit)
	c.elapsed = time.Since(c.start)
	return err
}

// Elapsed returns the wall time spent in the last call to Run.
func (c *CPUController) Elapsed() time.Duration {
	return c.elapsed
}

// Frequency returns the instruction rate of the last run in herz.
func (c *CPUController) Frequency() float64 {
	if c.elapsed <= 0 {
		return 0
	}
	return float64(c.cpu.Steps()) / c.elapsed.Seconds()
}

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2f GHz", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
