package frame

import "github.com/opd-ai/vcrop/pixfmt"

// Ref is a reference to frame storage with its own view of the planes.
//
// Data[p] starts at the first byte of the first visible pixel of plane p;
// rows are Linesize[p] bytes apart. Absent planes are nil. The storage is
// shared with every other Ref of the same Buffer, so writes through Data
// are visible to all of them.
type Ref struct {
	buf      *Buffer
	offsets  [4]int
	released bool

	Data     [4][]byte
	Linesize [4]int
	Width    int
	Height   int
	Format   pixfmt.Format
}

// Clone returns a new reference to the same storage with the same view.
// The clone must be released independently.
func (r *Ref) Clone() *Ref {
	if r.released {
		panic("frame: Clone of released reference")
	}
	r.buf.refs.Add(1)
	c := *r
	return &c
}

// Release drops the reference. The storage is released with the last one.
// Releasing twice is a programming error and panics.
func (r *Ref) Release() {
	if r.released {
		panic("frame: reference released twice")
	}
	r.released = true
	r.buf.unref()
}

// Buffer returns the storage the reference points into.
func (r *Ref) Buffer() *Buffer {
	return r.buf
}

// Offset returns the byte offset of Data[p] from the start of the plane's
// storage.
func (r *Ref) Offset(p int) int {
	return r.offsets[p]
}

// Advance moves the start of plane p forward by n bytes. Absent planes are
// left untouched.
func (r *Ref) Advance(p, n int) {
	if r.Data[p] == nil || n == 0 {
		return
	}
	r.Data[p] = r.Data[p][n:]
	r.offsets[p] += n
}

// SharesStorage reports whether r and o point into the same Buffer.
func (r *Ref) SharesStorage(o *Ref) bool {
	return o != nil && r.buf == o.buf
}

// Row returns the visible bytes of row y of plane p.
func (r *Ref) Row(p, y int) []byte {
	rowBytes, _ := PlaneSize(r.Format.Descriptor(), p, r.Width, r.Height)
	start := y * r.Linesize[p]
	return r.Data[p][start : start+rowBytes]
}

// Direction is the order in which the slices of a frame are delivered.
type Direction int

const (
	// TopToBottom delivers slices with increasing row numbers.
	TopToBottom Direction = 1
	// BottomToTop delivers slices with decreasing row numbers.
	BottomToTop Direction = -1
)

// Slice is a band of H rows starting at row Y, delivered in direction Dir.
type Slice struct {
	Y   int
	H   int
	Dir Direction
}
