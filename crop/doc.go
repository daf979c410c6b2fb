// Package crop implements a zero-copy crop filter for raster video frames.
//
// Cropping happens in three steps, each usable on its own:
//
//   - Resolve turns an "x:y:w:h" request into a Rect for a given input size
//     and chroma subsampling. Zero W or H extend to the input's edge, X and Y
//     are aligned down to the chroma grid, and areas outside the input fail
//     with ErrInvalidGeometry.
//
//   - PlaneOffsets computes the byte offset of the crop area in every plane
//     of a frame. Chroma planes are addressed on the subsampled grid, the
//     palette plane of palette formats is never offset, and the alpha plane
//     is addressed at full resolution.
//
//   - ClipSlice maps a band of input rows to the band of output rows it
//     covers, or reports that it covers none.
//
// Filter ties the steps together behind interfaces.IVideoFilter:
//
//	f, err := crop.NewFilter(crop.Config{Geometry: "100:50:640:480"})
//	if err != nil {
//	    return err
//	}
//	rect, err := f.Configure(interfaces.LinkConfig{Width: 1920, Height: 1080, Format: pixfmt.YUV420P})
//	if err != nil {
//	    return err // wraps ErrInvalidGeometry
//	}
//	view := f.DeriveView(src) // shares src's storage
//	defer view.Release()
//
//	if out, ok := f.ClipSlice(frame.Slice{Y: 30, H: 40, Dir: frame.TopToBottom}); ok {
//	    // out == frame.Slice{Y: 0, H: 20, Dir: frame.TopToBottom}
//	}
//
// # Malformed Geometry
//
// ParseGeometry rejects text that is not up to four colon-separated base-10
// integers with ErrInvalidArgument. Config.Lenient switches to
// ParseGeometryLenient, which maps malformed text to the full-frame
// geometry.
package crop
