package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hexaflex/sim86/decoder"
	"github.com/hexaflex/sim86/dump"
)

func main() {
	os.Exit(main1())
}

func main1() int {
	config := parseArgs()

	program, err := dump.ReadFile(config.Program, dump.MaxProgram)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if config.Bytes {
		err = printBytes(os.Stdout, program)
	} else {
		err = printListing(os.Stdout, program)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// printListing writes the assembly listing of program to w.
// Instructions decoded before an error are still written.
func printListing(w io.Writer, program []byte) error {
	list, err := decoder.Disassemble(program)
	if werr := decoder.WriteListing(w, list); werr != nil {
		return werr
	}
	return err
}

// printBytes writes every byte of program in binary, one per line.
func printBytes(w io.Writer, program []byte) error {
	for _, b := range program {
		if _, err := fmt.Fprintf(w, "0b%08b\n", b); err != nil {
			return err
		}
	}
	return nil
}
