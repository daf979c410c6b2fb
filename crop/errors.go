package crop

import "errors"

// Sentinel errors for crop operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrInvalidGeometry indicates the resolved crop area does not fit in the
	// input frame or is zero-sized.
	ErrInvalidGeometry = errors.New("invalid crop geometry")

	// ErrInvalidArgument indicates malformed geometry text.
	ErrInvalidArgument = errors.New("invalid crop argument")

	// ErrUnsupportedFormat indicates a pixel format outside the capability set.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrNotConfigured indicates the input link has not been configured.
	ErrNotConfigured = errors.New("crop filter not configured")
)
