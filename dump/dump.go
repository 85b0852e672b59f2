// Package dump reads raw program images and writes memory snapshots:
// a verbatim byte dump, or a picture of a region holding RGBA pixels.
package dump

import (
	"image"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// MaxProgram is the largest program image accepted from disk: the
// 16-bit address space.
const MaxProgram = 0x10000

// Known errors.
var (
	ErrTooLarge = errors.New("image too large")
	ErrRegion   = errors.New("region outside memory")
)

// ReadProgram reads a raw program image of at most limit bytes.
// There is no header: the first byte is the first instruction.
func ReadProgram(r io.Reader, limit int) ([]byte, error) {
	p, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, errors.Wrapf(err, "dump: read program")
	}

	if len(p) > limit {
		return nil, errors.Wrapf(ErrTooLarge, "dump: program exceeds %d bytes", limit)
	}

	return p, nil
}

// WriteMemory writes mem to w verbatim.
func WriteMemory(w io.Writer, mem []byte) error {
	_, err := w.Write(mem)
	return errors.Wrapf(err, "dump: write memory")
}

// Region describes a block of memory holding Width*Height pixels of
// 4 bytes each, in R, G, B, A order, rows top to bottom.
type Region struct {
	Address int // Address of the first pixel.
	Width   int // Pixels per row.
	Height  int // Number of rows.
}

// Size returns the number of bytes covered by the region.
func (r Region) Size() int {
	return r.Width * r.Height * 4
}

// Image copies the region out of mem.
func (r Region) Image(mem []byte) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 || r.Address < 0 || r.Address+r.Size() > len(mem) {
		return nil, errors.Wrapf(ErrRegion, "dump: %dx%d pixels at %04x in %d bytes",
			r.Width, r.Height, r.Address, len(mem))
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, mem[r.Address:r.Address+r.Size()])
	return img, nil
}

// WriteImage writes the given region of mem to w as a BMP picture.
func WriteImage(w io.Writer, mem []byte, r Region) error {
	img, err := r.Image(mem)
	if err != nil {
		return err
	}
	return errors.Wrapf(bmp.Encode(w, img), "dump: encode image")
}
