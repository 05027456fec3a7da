package tns

import "errors"

var (
	// ErrInvalidBlockLength is returned when cipher input is not a multiple
	// of the 8-byte block size.
	ErrInvalidBlockLength = errors.New("data length must be a multiple of 8 bytes")

	// ErrCompression is returned when the deflate encoder fails.
	ErrCompression = errors.New("compression failed")

	// ErrDecompression is returned when the deflate decoder fails.
	ErrDecompression = errors.New("decompression failed")
)
