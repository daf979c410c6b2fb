package crop

import "github.com/opd-ai/vcrop/frame"

// ClipSlice intersects an input slice with the rows of r and translates the
// result to output coordinates. It returns false when the slice has no row
// inside r. The delivery direction is preserved.
func ClipSlice(s frame.Slice, r Rect) (frame.Slice, bool) {
	if s.Y >= r.Y+r.H || s.Y+s.H <= r.Y {
		return frame.Slice{}, false
	}

	if s.Y < r.Y {
		s.H -= r.Y - s.Y
		s.Y = r.Y
	}
	if s.Y+s.H > r.Y+r.H {
		s.H = r.Y + r.H - s.Y
	}
	if s.H <= 0 {
		return frame.Slice{}, false
	}

	s.Y -= r.Y
	return s, true
}
