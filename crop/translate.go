package crop

import "github.com/opd-ai/vcrop/pixfmt"

// PlaneOffsets returns, for each plane, the byte offset of the crop area's
// top-left sample from the start of a full frame with the given strides.
//
// Plane 0 and the alpha plane 3 are addressed at full resolution. Chroma
// planes 1 and 2 are addressed on the subsampled grid; for palette formats
// plane 1 is the palette table and gets no offset. Planes the format does
// not use get no offset.
func PlaneOffsets(r Rect, d pixfmt.Descriptor, linesize [4]int) [4]int {
	var off [4]int
	steps := d.MaxPixSteps()
	planes := d.PlaneCount()

	off[0] = r.Y*linesize[0] + r.X*steps[0]

	if !d.IsPalette() {
		hsub, vsub := d.Log2ChromaW, d.Log2ChromaH
		for p := 1; p < 3 && p < planes; p++ {
			off[p] = (r.Y>>vsub)*linesize[p] + (r.X*steps[p])>>hsub
		}
	}

	if planes > 3 {
		off[3] = r.Y*linesize[3] + r.X*steps[3]
	}

	return off
}
