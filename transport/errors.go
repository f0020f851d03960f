package transport

import "errors"

// Transport errors.
var (
	// ErrClosed is returned when an operation is attempted on a closed transport.
	ErrClosed = errors.New("transport: closed")

	// ErrBadMagic is returned when a report does not start with the expected marker.
	ErrBadMagic = errors.New("transport: bad report marker")

	// ErrFrameTooLarge is returned when a frame header announces a payload
	// above MaxPayloadSize.
	ErrFrameTooLarge = errors.New("transport: frame too large")

	// ErrTruncatedFrame is returned when the input ends inside a frame.
	ErrTruncatedFrame = errors.New("transport: truncated frame")
)
