// Package limits provides centralized frame size limits for the crop pipeline.
// This ensures consistent validation across link configuration and allocation.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxFrameDimension is the largest accepted width or height in pixels.
	MaxFrameDimension = 32768

	// MaxSampleStep is the widest per-pixel byte step of any supported
	// packed format (RGB48).
	MaxSampleStep = 6

	// MaxFramePixels is the absolute maximum pixel count of one frame.
	// (w+128)*(h+128) must stay below this bound.
	MaxFramePixels = (1<<31 - 1) / 8

	// MaxPlaneBytes is the largest single plane allocation in bytes.
	MaxPlaneBytes = 1 << 30
)

var (
	// ErrFrameEmpty indicates a zero or negative frame dimension
	ErrFrameEmpty = errors.New("empty frame")

	// ErrFrameTooLarge indicates a frame exceeds the dimension limits
	ErrFrameTooLarge = errors.New("frame too large")
)

// ValidateFrameSize validates frame dimensions against MaxFrameDimension and
// MaxFramePixels. Returns an error with context including the offending size.
func ValidateFrameSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrFrameEmpty, width, height)
	}
	if width > MaxFrameDimension || height > MaxFrameDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d on one axis", ErrFrameTooLarge, width, height, MaxFrameDimension)
	}
	if uint64(width+128)*uint64(height+128) >= MaxFramePixels {
		return fmt.Errorf("%w: %dx%d exceeds pixel limit %d", ErrFrameTooLarge, width, height, MaxFramePixels)
	}
	return nil
}

// ValidatePlaneSize validates the byte length of one plane.
func ValidatePlaneSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: plane size %d", ErrFrameEmpty, size)
	}
	if size > MaxPlaneBytes {
		return fmt.Errorf("%w: plane size %d exceeds limit %d", ErrFrameTooLarge, size, MaxPlaneBytes)
	}
	return nil
}
