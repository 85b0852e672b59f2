package dump

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ReadFile reads a program image of at most limit bytes from disk.
func ReadFile(file string, limit int) ([]byte, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer fd.Close()
	return ReadProgram(fd, limit)
}

// WriteFile creates file, including its parent directory, and hands it
// to write.
func WriteFile(file string, write func(io.Writer) error) (err error) {
	dir, _ := filepath.Split(file)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			return errors.Wrapf(err, "dump")
		}
	}

	fd, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "dump")
	}

	defer func() {
		if cerr := fd.Close(); err == nil {
			err = errors.Wrapf(cerr, "dump")
		}
	}()

	return write(fd)
}
