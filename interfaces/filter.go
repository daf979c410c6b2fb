package interfaces

import (
	"github.com/opd-ai/vcrop/frame"
	"github.com/opd-ai/vcrop/pixfmt"
)

// LinkConfig describes the frames flowing over one link between two nodes.
type LinkConfig struct {
	Width  int
	Height int
	Format pixfmt.Format
}

// IVideoFilter defines the operations a host pipeline invokes on a filter node.
type IVideoFilter interface {
	// Name returns the filter name for identification
	Name() string

	// QueryFormats returns the formats the filter accepts, in preference order
	QueryFormats() []pixfmt.Format

	// Negotiate picks a format from those the neighbor can produce
	Negotiate(offered []pixfmt.Format) (pixfmt.Descriptor, error)

	// ConfigureInput fixes the input link geometry. A failure is fatal for
	// the node until it is configured again.
	ConfigureInput(link LinkConfig) error

	// ConfigureOutput reports the geometry of the output link
	ConfigureOutput() (LinkConfig, error)

	// DeriveView returns a new reference to the frame as seen downstream.
	// The input reference is left unchanged and still owned by the caller.
	DeriveView(ref *frame.Ref) *frame.Ref

	// ClipSlice maps an input slice to output coordinates. It returns false
	// when nothing of the slice is visible downstream.
	ClipSlice(s frame.Slice) (frame.Slice, bool)
}

// ISliceSink receives frames slice by slice.
type ISliceSink interface {
	// StartFrame announces a frame; the sink takes ownership of ref
	StartFrame(ref *frame.Ref) error

	// DrawSlice delivers rows of the current frame
	DrawSlice(s frame.Slice) error

	// EndFrame marks the end of the current frame
	EndFrame() error
}
