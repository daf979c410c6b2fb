package frame

import (
	"fmt"
	"io"

	"github.com/opd-ai/vcrop/pixfmt"
)

// RawSize returns the byte size of a tightly packed raw frame.
func RawSize(format pixfmt.Format, width, height int) int {
	d := format.Descriptor()
	total := 0
	for p := 0; p < d.PlaneCount(); p++ {
		rowBytes, rows := PlaneSize(d, p, width, height)
		total += rowBytes * rows
	}
	return total
}

// ReadRaw reads one tightly packed raw frame into a newly allocated frame
// whose rows start on multiples of align bytes.
func ReadRaw(r io.Reader, format pixfmt.Format, width, height, align int) (*Ref, error) {
	ref, err := Alloc(format, width, height, align)
	if err != nil {
		return nil, err
	}
	d := format.Descriptor()
	for p := 0; p < d.PlaneCount(); p++ {
		_, rows := PlaneSize(d, p, width, height)
		for y := 0; y < rows; y++ {
			if _, err := io.ReadFull(r, ref.Row(p, y)); err != nil {
				ref.Release()
				return nil, fmt.Errorf("reading plane %d row %d: %w", p, y, err)
			}
		}
	}
	return ref, nil
}

// WriteRaw writes the visible area of ref as a tightly packed raw frame.
func WriteRaw(w io.Writer, ref *Ref) error {
	d := ref.Format.Descriptor()
	for p := 0; p < d.PlaneCount(); p++ {
		_, rows := PlaneSize(d, p, ref.Width, ref.Height)
		for y := 0; y < rows; y++ {
			if _, err := w.Write(ref.Row(p, y)); err != nil {
				return fmt.Errorf("writing plane %d row %d: %w", p, y, err)
			}
		}
	}
	return nil
}
