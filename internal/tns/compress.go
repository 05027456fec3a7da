package tns

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Deflate compresses data using raw deflate: no zlib header, no gzip
// wrapper. The calculator's decoder expects the bare bitstream directly
// after the length fields, so a self-describing container would break it.
// Compression level is the library default; the exact compressed bytes are
// not part of the format contract, only that they inflate back losslessly.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}

	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}

	return buf.Bytes(), nil
}

// Inflate decompresses raw deflate data produced by Deflate. The
// conversion pipeline itself never inflates; this exists for round-trip
// verification.
func Inflate(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}

	return out, nil
}
