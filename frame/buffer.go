package frame

import (
	"fmt"
	"sync/atomic"

	"github.com/opd-ai/vcrop/pixfmt"
	"github.com/sirupsen/logrus"
)

// Buffer is shared, reference-counted plane storage.
type Buffer struct {
	planes  [4][]byte
	refs    atomic.Int32
	release func(*Buffer)
}

// NewBuffer wraps plane memory in a Buffer. release, if not nil, is called
// once when the last reference is released. The buffer starts with no
// references; obtain one with NewRef.
func NewBuffer(planes [4][]byte, release func(*Buffer)) *Buffer {
	return &Buffer{planes: planes, release: release}
}

// Plane returns the full storage of plane p.
func (b *Buffer) Plane(p int) []byte {
	return b.planes[p]
}

// RefCount returns the number of live references.
func (b *Buffer) RefCount() int {
	return int(b.refs.Load())
}

// NewRef returns a reference covering the whole storage of every plane.
func (b *Buffer) NewRef(format pixfmt.Format, width, height int, linesize [4]int) *Ref {
	b.refs.Add(1)
	return &Ref{
		buf:      b,
		Data:     b.planes,
		Linesize: linesize,
		Width:    width,
		Height:   height,
		Format:   format,
	}
}

func (b *Buffer) unref() {
	n := b.refs.Add(-1)
	if n < 0 {
		panic(fmt.Sprintf("frame: buffer reference count dropped to %d", n))
	}
	if n > 0 {
		return
	}
	logrus.WithFields(logrus.Fields{
		"function": "Buffer.unref",
	}).Debug("Releasing frame storage")
	if b.release != nil {
		b.release(b)
	}
}
