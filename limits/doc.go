// Package limits provides centralized frame dimension limits and validation
// functions for the crop pipeline. Every negotiated input link and every
// frame allocation is checked against these limits so that address
// arithmetic on plane offsets can never overflow.
//
// # Dimension Limits
//
//   - MaxFrameDimension (32768): the largest width or height accepted on a
//     link. Larger values are rejected before any geometry is resolved.
//
//   - MaxFramePixels: the absolute maximum of width*height for one frame,
//     derived from the largest sample step any supported format uses so
//     that y*linesize+x*step stays well inside an int on 32-bit platforms.
//
// # Validation Functions
//
//	err := limits.ValidateFrameSize(width, height)
//	if err != nil {
//	    // ErrFrameEmpty or ErrFrameTooLarge
//	}
//
// For plane allocations, ValidatePlaneSize checks the byte length of a
// single plane against MaxPlaneBytes.
package limits
