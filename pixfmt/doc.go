// Package pixfmt describes the memory layout of raster pixel formats.
//
// A Descriptor records, for every color component, which plane holds it,
// the byte distance between two consecutive pixels of that component, and
// the log2 chroma subsampling factors of the format. Addressing code uses
// the derived per-plane maximum step (MaxPixSteps) and the palette and
// alpha flags to turn pixel coordinates into byte offsets.
//
// # Formats
//
// Formats are identified by the Format tag. Every tag known to this package
// has a Descriptor, available through Format.Descriptor or Lookup:
//
//	desc, ok := pixfmt.Lookup(pixfmt.YUV420P)
//	steps := desc.MaxPixSteps() // [1 1 1 0]
//
// Tags can be resolved from their conventional lower-case names:
//
//	f, err := pixfmt.ParseFormat("yuv420p")
//
// # Capability Set
//
// Supported returns the closed set of formats the crop addressing model
// handles: packed RGB/BGR/gray at 8, 16 and 48 bits per pixel in both byte
// orders, planar YUV with and without subsampling at 8 and 16 bits,
// palette-indexed 8-bit formats and YUVA420P. Formats outside that set
// (for example YUYV422 or NV12) are described but rejected during
// negotiation.
package pixfmt
