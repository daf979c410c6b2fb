package pixfmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates a format name or tag this package does not describe.
var ErrUnknownFormat = errors.New("unknown pixel format")

// Format identifies a pixel format.
type Format int

// Known pixel formats.
const (
	None Format = iota
	RGB48BE
	RGB48LE
	ARGB
	RGBA
	ABGR
	BGRA
	RGB24
	BGR24
	RGB565BE
	RGB565LE
	RGB555BE
	RGB555LE
	BGR565BE
	BGR565LE
	BGR555BE
	BGR555LE
	GRAY16BE
	GRAY16LE
	YUV420P16LE
	YUV420P16BE
	YUV422P16LE
	YUV422P16BE
	YUV444P16LE
	YUV444P16BE
	YUV444P
	YUV422P
	YUV420P
	YUV411P
	YUV410P
	YUV440P
	YUVJ444P
	YUVJ422P
	YUVJ420P
	YUVJ440P
	YUVA420P
	RGB8
	BGR8
	RGB4Byte
	BGR4Byte
	PAL8
	GRAY8
	YUYV422
	NV12
	formatCount
)

// String returns the conventional lower-case name of the format.
func (f Format) String() string {
	if d, ok := Lookup(f); ok {
		return d.Name
	}
	return fmt.Sprintf("pixfmt(%d)", int(f))
}

// Descriptor returns the layout descriptor of f. It panics for tags
// without a descriptor; use Lookup when the tag comes from outside.
func (f Format) Descriptor() Descriptor {
	d, ok := Lookup(f)
	if !ok {
		panic(fmt.Sprintf("pixfmt: no descriptor for %d", int(f)))
	}
	return d
}

// Lookup returns the descriptor of f.
func Lookup(f Format) (Descriptor, bool) {
	if f <= None || f >= formatCount {
		return Descriptor{}, false
	}
	d := descriptors[f]
	d.Format = f
	return d, true
}

// ParseFormat resolves a format from its name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for f := None + 1; f < formatCount; f++ {
		if descriptors[f].Name == key {
			return f, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
