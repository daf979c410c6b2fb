package pipeline

import "errors"

var (
	// ErrNotConfigured indicates a frame was pushed before Configure succeeded.
	ErrNotConfigured = errors.New("link not configured")

	// ErrFormatMismatch indicates a frame whose format differs from the link's.
	ErrFormatMismatch = errors.New("frame format does not match link")

	// ErrDimensionMismatch indicates a frame whose size differs from the link's.
	ErrDimensionMismatch = errors.New("frame size does not match link")

	// ErrNoFrame indicates a slice delivered outside StartFrame/EndFrame.
	ErrNoFrame = errors.New("no frame in progress")
)
