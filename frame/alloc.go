package frame

import (
	"fmt"

	"github.com/opd-ai/vcrop/limits"
	"github.com/opd-ai/vcrop/pixfmt"
	"github.com/sirupsen/logrus"
)

// PlaneSize returns the number of visible bytes per row and the number of
// rows of plane p for a frame of the given dimensions. Planes the format
// does not use report 0, 0. The palette plane of palette formats is one row
// of pixfmt.PaletteSize bytes.
func PlaneSize(d pixfmt.Descriptor, p, width, height int) (rowBytes, rows int) {
	if p >= d.PlaneCount() {
		return 0, 0
	}
	if d.IsPalette() && p == 1 {
		return pixfmt.PaletteSize, 1
	}
	step := d.MaxPixSteps()[p]
	if p == 1 || p == 2 {
		return d.ChromaWidth(width) * step, d.ChromaHeight(height)
	}
	return width * step, height
}

// Alloc allocates a frame of the given format and size. Every row starts
// on a multiple of align bytes; align <= 1 packs rows tightly.
func Alloc(format pixfmt.Format, width, height, align int) (*Ref, error) {
	d, ok := pixfmt.Lookup(format)
	if !ok {
		return nil, fmt.Errorf("%w: %d", pixfmt.ErrUnknownFormat, int(format))
	}
	if err := limits.ValidateFrameSize(width, height); err != nil {
		return nil, err
	}
	if align < 1 {
		align = 1
	}

	var planes [4][]byte
	var linesize [4]int
	for p := 0; p < d.PlaneCount(); p++ {
		rowBytes, rows := PlaneSize(d, p, width, height)
		linesize[p] = (rowBytes + align - 1) / align * align
		size := linesize[p] * rows
		if d.IsPalette() && p == 1 {
			linesize[p] = 4
			size = pixfmt.PaletteSize
		}
		if err := limits.ValidatePlaneSize(size); err != nil {
			return nil, fmt.Errorf("plane %d: %w", p, err)
		}
		planes[p] = make([]byte, size)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Alloc",
		"format":   d.Name,
		"width":    width,
		"height":   height,
		"linesize": linesize,
	}).Debug("Allocated frame")

	return NewBuffer(planes, nil).NewRef(format, width, height, linesize), nil
}
