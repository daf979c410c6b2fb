package pipeline

import (
	"sort"

	"github.com/opd-ai/vcrop/frame"
	"github.com/opd-ai/vcrop/interfaces"
)

var _ interfaces.ISliceSink = (*Collector)(nil)

// Collector is a sink that keeps the most recent frame and its slices.
type Collector struct {
	view    *frame.Ref
	slices  []frame.Slice
	frames  int
	inFrame bool
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// StartFrame takes ownership of ref, releasing the previous frame.
func (c *Collector) StartFrame(ref *frame.Ref) error {
	if c.view != nil {
		c.view.Release()
	}
	c.view = ref
	c.slices = c.slices[:0]
	c.inFrame = true
	return nil
}

// DrawSlice records s.
func (c *Collector) DrawSlice(s frame.Slice) error {
	if !c.inFrame {
		return ErrNoFrame
	}
	c.slices = append(c.slices, s)
	return nil
}

// EndFrame completes the current frame.
func (c *Collector) EndFrame() error {
	if !c.inFrame {
		return ErrNoFrame
	}
	c.inFrame = false
	c.frames++
	return nil
}

// View returns the most recent frame, or nil.
func (c *Collector) View() *frame.Ref {
	return c.view
}

// Slices returns the slices of the most recent frame in delivery order.
func (c *Collector) Slices() []frame.Slice {
	return append([]frame.Slice(nil), c.slices...)
}

// Frames returns the number of completed frames.
func (c *Collector) Frames() int {
	return c.frames
}

// Covered reports whether the slices of the most recent frame cover every
// row of the frame exactly once.
func (c *Collector) Covered() bool {
	if c.view == nil {
		return false
	}
	sorted := c.Slices()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Y < sorted[j].Y })

	next := 0
	for _, s := range sorted {
		if s.Y != next || s.H <= 0 {
			return false
		}
		next += s.H
	}
	return next == c.view.Height
}

// Close releases the most recent frame.
func (c *Collector) Close() {
	if c.view != nil {
		c.view.Release()
		c.view = nil
	}
}
