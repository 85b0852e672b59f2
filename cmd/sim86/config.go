package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexaflex/sim86/dump"
)

// Config defines program configuration.
type Config struct {
	Program   string      // Path to the program image to run.
	Trace     bool        // Log every executed instruction?
	MaxSteps  int         // Stop after this many instructions. 0 means no limit.
	Dump      string      // Optional path for a raw dump of memory after the run.
	DumpImage string      // Optional path for a BMP picture of Image after the run.
	Image     dump.Region // Memory region written to DumpImage.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Image = dump.Region{Address: 256, Width: 64, Height: 64}

	flag.Usage = func() {
		fmt.Printf("%s [options] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.BoolVar(&c.Trace, "trace", c.Trace, "Log every executed instruction.")
	flag.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "Stop with an error after this many instructions. 0 means no limit.")
	flag.StringVar(&c.Dump, "dump", c.Dump, "Write the final contents of memory to this file.")
	flag.StringVar(&c.DumpImage, "dump-image", c.DumpImage, "Write the image region of memory to this file as a BMP picture.")
	flag.IntVar(&c.Image.Address, "image-addr", c.Image.Address, "Address of the first RGBA pixel of the image region.")
	flag.IntVar(&c.Image.Width, "image-width", c.Image.Width, "Width of the image region in pixels.")
	flag.IntVar(&c.Image.Height, "image-height", c.Image.Height, "Height of the image region in pixels.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.Program = flag.Arg(0)
	return &c
}
