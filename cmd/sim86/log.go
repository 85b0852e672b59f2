package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// newLogger creates the diagnostics logger. Colours are only used when
// w is a terminal.
func newLogger(w io.Writer, trace bool) *logrus.Logger {
	colors := false
	if fd, ok := w.(*os.File); ok {
		colors = term.IsTerminal(int(fd.Fd()))
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !colors,
		DisableTimestamp: true,
	})

	log.SetLevel(logrus.InfoLevel)
	if trace {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
