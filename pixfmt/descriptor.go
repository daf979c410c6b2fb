package pixfmt

// Flag describes layout properties of a format.
type Flag uint32

const (
	// FlagBigEndian marks multi-byte samples stored most significant byte first.
	FlagBigEndian Flag = 1 << iota
	// FlagPalette marks formats whose plane 0 holds indices into a palette
	// stored in plane 1.
	FlagPalette
	// FlagPlanar marks formats with at least one component outside plane 0.
	FlagPlanar
	// FlagRGB marks formats whose components are R, G, B rather than Y, U, V.
	FlagRGB
	// FlagAlpha marks formats carrying an alpha component.
	FlagAlpha
)

// PaletteSize is the byte size of the palette plane of a palette format:
// 256 entries of 4 bytes each.
const PaletteSize = 256 * 4

// Component locates one color component inside a frame.
type Component struct {
	Plane  int // plane holding the component
	Step   int // bytes between two horizontally consecutive samples
	Offset int // bytes before the first sample
	Shift  int // bits to shift right to reach the sample
	Depth  int // bits per sample
}

// Descriptor describes the memory layout of a pixel format.
type Descriptor struct {
	Format      Format
	Name        string
	Components  []Component
	Log2ChromaW int // hsub: chroma width is width >> Log2ChromaW
	Log2ChromaH int // vsub: chroma height is height >> Log2ChromaH
	Flags       Flag
}

// Has reports whether all bits of flag are set.
func (d Descriptor) Has(flag Flag) bool {
	return d.Flags&flag == flag
}

// IsPalette reports whether plane 0 holds palette indices.
func (d Descriptor) IsPalette() bool {
	return d.Has(FlagPalette)
}

// HasAlphaPlane reports whether a component lives in the dedicated alpha
// plane 3. Packed formats with an alpha component return false.
func (d Descriptor) HasAlphaPlane() bool {
	for _, c := range d.Components {
		if c.Plane == 3 {
			return true
		}
	}
	return false
}

// PlaneCount returns the number of planes a frame of this format uses,
// counting the palette plane of palette formats.
func (d Descriptor) PlaneCount() int {
	n := 0
	for _, c := range d.Components {
		if c.Plane+1 > n {
			n = c.Plane + 1
		}
	}
	if d.IsPalette() && n < 2 {
		n = 2
	}
	return n
}

// MaxPixSteps returns, for each plane, the largest byte step of the
// components stored in it. Planes without components report 0.
func (d Descriptor) MaxPixSteps() [4]int {
	var steps [4]int
	for _, c := range d.Components {
		if c.Step > steps[c.Plane] {
			steps[c.Plane] = c.Step
		}
	}
	return steps
}

// ChromaWidth returns the width of a chroma plane for a luma width w,
// rounding up.
func (d Descriptor) ChromaWidth(w int) int {
	return -((-w) >> d.Log2ChromaW)
}

// ChromaHeight returns the height of a chroma plane for a luma height h,
// rounding up.
func (d Descriptor) ChromaHeight(h int) int {
	return -((-h) >> d.Log2ChromaH)
}

func packed(step int, offsets ...int) []Component {
	comps := make([]Component, len(offsets))
	for i, off := range offsets {
		comps[i] = Component{Plane: 0, Step: step, Offset: off, Depth: depthOf(step, len(offsets))}
	}
	return comps
}

// depthOf returns the per-component depth of a byte-aligned packed format.
func depthOf(step, n int) int {
	if step == 6 {
		return 16
	}
	if n == 1 {
		return 8 * step
	}
	return 8
}

func bitfield(step int, fields ...[2]int) []Component {
	comps := make([]Component, len(fields))
	for i, f := range fields {
		comps[i] = Component{Plane: 0, Step: step, Shift: f[0], Depth: f[1]}
	}
	return comps
}

func planar(step, depth, planes int) []Component {
	comps := make([]Component, planes)
	for p := range comps {
		comps[p] = Component{Plane: p, Step: step, Depth: depth}
	}
	return comps
}

var descriptors = [formatCount]Descriptor{
	RGB48BE: {Name: "rgb48be", Components: packed(6, 0, 2, 4), Flags: FlagRGB | FlagBigEndian},
	RGB48LE: {Name: "rgb48le", Components: packed(6, 0, 2, 4), Flags: FlagRGB},
	ARGB:    {Name: "argb", Components: packed(4, 1, 2, 3, 0), Flags: FlagRGB | FlagAlpha},
	RGBA:    {Name: "rgba", Components: packed(4, 0, 1, 2, 3), Flags: FlagRGB | FlagAlpha},
	ABGR:    {Name: "abgr", Components: packed(4, 3, 2, 1, 0), Flags: FlagRGB | FlagAlpha},
	BGRA:    {Name: "bgra", Components: packed(4, 2, 1, 0, 3), Flags: FlagRGB | FlagAlpha},
	RGB24:   {Name: "rgb24", Components: packed(3, 0, 1, 2), Flags: FlagRGB},
	BGR24:   {Name: "bgr24", Components: packed(3, 2, 1, 0), Flags: FlagRGB},

	RGB565BE: {Name: "rgb565be", Components: bitfield(2, [2]int{11, 5}, [2]int{5, 6}, [2]int{0, 5}), Flags: FlagRGB | FlagBigEndian},
	RGB565LE: {Name: "rgb565le", Components: bitfield(2, [2]int{11, 5}, [2]int{5, 6}, [2]int{0, 5}), Flags: FlagRGB},
	RGB555BE: {Name: "rgb555be", Components: bitfield(2, [2]int{10, 5}, [2]int{5, 5}, [2]int{0, 5}), Flags: FlagRGB | FlagBigEndian},
	RGB555LE: {Name: "rgb555le", Components: bitfield(2, [2]int{10, 5}, [2]int{5, 5}, [2]int{0, 5}), Flags: FlagRGB},
	BGR565BE: {Name: "bgr565be", Components: bitfield(2, [2]int{0, 5}, [2]int{5, 6}, [2]int{11, 5}), Flags: FlagRGB | FlagBigEndian},
	BGR565LE: {Name: "bgr565le", Components: bitfield(2, [2]int{0, 5}, [2]int{5, 6}, [2]int{11, 5}), Flags: FlagRGB},
	BGR555BE: {Name: "bgr555be", Components: bitfield(2, [2]int{0, 5}, [2]int{5, 5}, [2]int{10, 5}), Flags: FlagRGB | FlagBigEndian},
	BGR555LE: {Name: "bgr555le", Components: bitfield(2, [2]int{0, 5}, [2]int{5, 5}, [2]int{10, 5}), Flags: FlagRGB},

	GRAY16BE: {Name: "gray16be", Components: packed(2, 0), Flags: FlagBigEndian},
	GRAY16LE: {Name: "gray16le", Components: packed(2, 0)},

	YUV420P16LE: {Name: "yuv420p16le", Components: planar(2, 16, 3), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},
	YUV420P16BE: {Name: "yuv420p16be", Components: planar(2, 16, 3), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar | FlagBigEndian},
	YUV422P16LE: {Name: "yuv422p16le", Components: planar(2, 16, 3), Log2ChromaW: 1, Flags: FlagPlanar},
	YUV422P16BE: {Name: "yuv422p16be", Components: planar(2, 16, 3), Log2ChromaW: 1, Flags: FlagPlanar | FlagBigEndian},
	YUV444P16LE: {Name: "yuv444p16le", Components: planar(2, 16, 3), Flags: FlagPlanar},
	YUV444P16BE: {Name: "yuv444p16be", Components: planar(2, 16, 3), Flags: FlagPlanar | FlagBigEndian},

	YUV444P:  {Name: "yuv444p", Components: planar(1, 8, 3), Flags: FlagPlanar},
	YUV422P:  {Name: "yuv422p", Components: planar(1, 8, 3), Log2ChromaW: 1, Flags: FlagPlanar},
	YUV420P:  {Name: "yuv420p", Components: planar(1, 8, 3), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},
	YUV411P:  {Name: "yuv411p", Components: planar(1, 8, 3), Log2ChromaW: 2, Flags: FlagPlanar},
	YUV410P:  {Name: "yuv410p", Components: planar(1, 8, 3), Log2ChromaW: 2, Log2ChromaH: 2, Flags: FlagPlanar},
	YUV440P:  {Name: "yuv440p", Components: planar(1, 8, 3), Log2ChromaH: 1, Flags: FlagPlanar},
	YUVJ444P: {Name: "yuvj444p", Components: planar(1, 8, 3), Flags: FlagPlanar},
	YUVJ422P: {Name: "yuvj422p", Components: planar(1, 8, 3), Log2ChromaW: 1, Flags: FlagPlanar},
	YUVJ420P: {Name: "yuvj420p", Components: planar(1, 8, 3), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},
	YUVJ440P: {Name: "yuvj440p", Components: planar(1, 8, 3), Log2ChromaH: 1, Flags: FlagPlanar},
	YUVA420P: {Name: "yuva420p", Components: planar(1, 8, 4), Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar | FlagAlpha},

	RGB8:     {Name: "rgb8", Components: bitfield(1, [2]int{6, 2}, [2]int{3, 3}, [2]int{0, 3}), Flags: FlagRGB | FlagPalette},
	BGR8:     {Name: "bgr8", Components: bitfield(1, [2]int{0, 3}, [2]int{3, 3}, [2]int{6, 2}), Flags: FlagRGB | FlagPalette},
	RGB4Byte: {Name: "rgb4_byte", Components: bitfield(1, [2]int{3, 1}, [2]int{1, 2}, [2]int{0, 1}), Flags: FlagRGB | FlagPalette},
	BGR4Byte: {Name: "bgr4_byte", Components: bitfield(1, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 1}), Flags: FlagRGB | FlagPalette},
	PAL8:     {Name: "pal8", Components: packed(1, 0), Flags: FlagPalette},
	GRAY8:    {Name: "gray", Components: packed(1, 0)},

	YUYV422: {Name: "yuyv422", Components: []Component{
		{Plane: 0, Step: 2, Offset: 0, Depth: 8},
		{Plane: 0, Step: 4, Offset: 1, Depth: 8},
		{Plane: 0, Step: 4, Offset: 3, Depth: 8},
	}, Log2ChromaW: 1},
	NV12: {Name: "nv12", Components: []Component{
		{Plane: 0, Step: 1, Offset: 0, Depth: 8},
		{Plane: 1, Step: 2, Offset: 0, Depth: 8},
		{Plane: 1, Step: 2, Offset: 1, Depth: 8},
	}, Log2ChromaW: 1, Log2ChromaH: 1, Flags: FlagPlanar},
}
