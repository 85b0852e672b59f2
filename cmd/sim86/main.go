package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(main1())
}

func main1() int {
	config := parseArgs()
	log := newLogger(os.Stderr, config.Trace)

	if err := NewApp(config, os.Stdout, log).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
