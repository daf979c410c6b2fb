// Package frame provides reference-counted frame storage and buffer
// references for the crop pipeline.
//
// A Buffer owns the plane memory of one frame. Every Ref obtained from it,
// directly with Buffer.NewRef or indirectly with Ref.Clone, holds one
// reference; the buffer's release callback runs once the last Ref is
// released. A Ref carries its own plane slices, strides and dimensions, so
// a derived view can point into the middle of the shared planes and report
// a smaller size without touching the storage or the Ref it came from:
//
//	src, _ := frame.Alloc(pixfmt.YUV420P, 1920, 1080, 32)
//	view := src.Clone()
//	view.Advance(0, 50*view.Linesize[0]+100)
//	view.Width, view.Height = 640, 480
//	src.Release() // storage stays alive for view
//	view.Release()
//
// Raw frames (tightly packed planes, the palette appended for palette
// formats) are read with ReadRaw and written with WriteRaw.
package frame
