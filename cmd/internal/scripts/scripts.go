// Package scripts holds custom commands shared by the command line
// test scripts.
package scripts

import (
	"bufio"
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/testscript"
)

// Commands returns the custom commands available to test scripts.
func Commands() map[string]func(ts *testscript.TestScript, neg bool, args []string) {
	return map[string]func(ts *testscript.TestScript, neg bool, args []string){
		"unhex": Unhex,
	}
}

// Unhex implements `unhex <src> <dst>`. It reads hexadecimal text from src
// and writes the decoded bytes to dst. Whitespace is ignored and '#' starts
// a comment that runs to the end of the line.
func Unhex(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! unhex")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: unhex <src> <dst>")
	}

	data, err := DecodeHex(ts.ReadFile(args[0]))
	ts.Check(err)
	ts.Check(os.WriteFile(ts.MkAbs(args[1]), data, 0644))
}

// DecodeHex decodes commented hexadecimal text.
func DecodeHex(text string) ([]byte, error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		sb.WriteString(strings.Join(strings.Fields(line), ""))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "invalid hex")
	}

	data, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex")
	}
	return data, nil
}
