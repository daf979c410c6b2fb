package pixfmt

// supported lists the formats whose planes can be cropped by pointer and
// stride arithmetic alone, in negotiation preference order.
var supported = [...]Format{
	RGB48BE, RGB48LE,
	ARGB, RGBA,
	ABGR, BGRA,
	RGB24, BGR24,
	RGB565BE, RGB565LE,
	RGB555BE, RGB555LE,
	BGR565BE, BGR565LE,
	BGR555BE, BGR555LE,
	GRAY16BE, GRAY16LE,
	YUV420P16LE, YUV420P16BE,
	YUV422P16LE, YUV422P16BE,
	YUV444P16LE, YUV444P16BE,
	YUV444P, YUV422P,
	YUV420P, YUV411P,
	YUV410P, YUV440P,
	YUVJ444P, YUVJ422P,
	YUVJ420P, YUVJ440P,
	YUVA420P,
	RGB8, BGR8,
	RGB4Byte, BGR4Byte,
	PAL8, GRAY8,
}

var supportedSet = func() (set [formatCount]bool) {
	for _, f := range supported {
		set[f] = true
	}
	return set
}()

// Supported returns the capability set offered during format negotiation.
// The returned slice is a copy and may be modified by the caller.
func Supported() []Format {
	out := make([]Format, len(supported))
	copy(out, supported[:])
	return out
}

// IsSupported reports whether f belongs to the capability set.
func IsSupported(f Format) bool {
	return f > None && f < formatCount && supportedSet[f]
}
