package tns

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// Entry is one named payload stored in the archive. Bodies arrive fully
// processed (compressed and/or protected); the writer serializes them as
// given and never reorders entries.
type Entry struct {
	Name   string
	Body   []byte
	Method Method

	// UncompressedSize is the pre-compression size declared in headers.
	// For protected entries it equals the stored body length.
	UncompressedSize uint32

	// CRC32 is the checksum declared in headers. Protected entries are
	// checksummed over the stored bytes, deflated entries over the
	// original uncompressed bytes. The calculator validates them
	// differently per method, so the asymmetry is part of the format.
	CRC32 uint32
}

// NewProtectedEntry builds an entry for a protected payload. The checksum
// covers the stored (post-cipher) bytes and both sizes equal the stored
// length.
func NewProtectedEntry(name string, body []byte) Entry {
	return Entry{
		Name:             name,
		Body:             body,
		Method:           MethodProtected,
		UncompressedSize: uint32(len(body)),
		CRC32:            crc32.ChecksumIEEE(body),
	}
}

// NewDeflatedEntry builds an entry for a plainly deflated payload. The
// caller supplies the original size and a checksum over the original
// uncompressed bytes, since neither can be derived from the compressed
// body.
func NewDeflatedEntry(name string, compressed []byte, originalSize uint32, crc uint32) Entry {
	return Entry{
		Name:             name,
		Body:             compressed,
		Method:           MethodDeflated,
		UncompressedSize: originalSize,
		CRC32:            crc,
	}
}

// writtenEntry records what was actually serialized for one entry. The
// ledger is built in emission order and is the sole input to central
// directory generation.
type writtenEntry struct {
	name              string
	method            Method
	crc32             uint32
	compressedSize    uint32
	uncompressedSize  uint32
	localHeaderOffset uint32
}

// BuildArchive serializes entries into a complete .tns archive image.
//
// The first entry gets the TI local header (HeaderMagic + version tag),
// subsequent entries get standard PK\x03\x04 local headers. A standard
// central directory follows the entry bodies, terminated by the TI end
// record (EndSig in place of PK\x05\x06). The caller flushes the returned
// image to storage in a single write.
func BuildArchive(entries []Entry, version Version) ([]byte, error) {
	buf := new(bytes.Buffer)
	written := make([]writtenEntry, 0, len(entries))

	for i, entry := range entries {
		offset := uint32(buf.Len())

		var err error
		if i == 0 {
			err = writeTILocalHeader(buf, entry, version)
		} else {
			err = writeStdLocalHeader(buf, entry)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to write local header for %s: %w", entry.Name, err)
		}

		if _, err := buf.Write(entry.Body); err != nil {
			return nil, fmt.Errorf("failed to write body for %s: %w", entry.Name, err)
		}

		written = append(written, writtenEntry{
			name:              entry.Name,
			method:            entry.Method,
			crc32:             entry.CRC32,
			compressedSize:    uint32(len(entry.Body)),
			uncompressedSize:  entry.UncompressedSize,
			localHeaderOffset: offset,
		})
	}

	centralDirOffset := uint32(buf.Len())

	for _, w := range written {
		if err := writeCentralDirEntry(buf, w); err != nil {
			return nil, fmt.Errorf("failed to write central directory entry for %s: %w", w.name, err)
		}
	}

	centralDirSize := uint32(buf.Len()) - centralDirOffset

	if err := writeEndOfCentralDir(buf, uint16(len(written)), centralDirSize, centralDirOffset); err != nil {
		return nil, fmt.Errorf("failed to write end of central directory: %w", err)
	}

	return buf.Bytes(), nil
}

// writeTILocalHeader writes the vendor local header used for the first entry:
//
//	6 bytes  HeaderMagic ("*TIMLP")
//	4 bytes  version tag ("0500" or "0700")
//	2 bytes  version needed to extract
//	2 bytes  general purpose flags (always 0)
//	2 bytes  compression method
//	4 bytes  DOS date/time (fixed constant)
//	4 bytes  CRC-32
//	4 bytes  compressed size
//	4 bytes  uncompressed size
//	2 bytes  filename length
//	2 bytes  extra field length (always 0)
//	n bytes  filename
func writeTILocalHeader(buf *bytes.Buffer, entry Entry, version Version) error {
	if _, err := buf.Write(HeaderMagic[:]); err != nil {
		return err
	}
	if _, err := buf.Write(version[:]); err != nil {
		return err
	}
	return writeHeaderFields(buf, entry.Method, entry.CRC32, uint32(len(entry.Body)), entry.UncompressedSize, entry.Name)
}

// writeStdLocalHeader writes a standard ZIP local header, used for every
// entry after the first. Identical field layout except the 4-byte PK
// signature replaces magic + version tag.
func writeStdLocalHeader(buf *bytes.Buffer, entry Entry) error {
	if _, err := buf.Write(localHeaderSig[:]); err != nil {
		return err
	}
	return writeHeaderFields(buf, entry.Method, entry.CRC32, uint32(len(entry.Body)), entry.UncompressedSize, entry.Name)
}

// writeHeaderFields writes the fields shared by both local header variants,
// from version-needed through the filename.
func writeHeaderFields(buf *bytes.Buffer, method Method, crc, compressedSize, uncompressedSize uint32, name string) error {
	fields := []any{
		versionNeeded,
		uint16(0), // general purpose flags
		uint16(method),
		dosTimestamp,
		crc,
		compressedSize,
		uncompressedSize,
		uint16(len(name)),
		uint16(0), // extra field length
	}
	for _, f := range fields {
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	_, err := buf.WriteString(name)
	return err
}

// writeCentralDirEntry writes one standard central directory record from
// the ledger.
func writeCentralDirEntry(buf *bytes.Buffer, w writtenEntry) error {
	if _, err := buf.Write(centralDirSig[:]); err != nil {
		return err
	}

	fields := []any{
		versionMadeBy,
		versionNeeded,
		uint16(0), // general purpose flags
		uint16(w.method),
		dosTimestamp,
		w.crc32,
		w.compressedSize,
		w.uncompressedSize,
		uint16(len(w.name)),
		uint16(0), // extra field length
		uint16(0), // file comment length
		uint16(0), // disk number start
		uint16(0), // internal file attributes
		uint32(0), // external file attributes
		w.localHeaderOffset,
	}
	for _, f := range fields {
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	_, err := buf.WriteString(w.name)
	return err
}

// writeEndOfCentralDir writes the TI end record. Multi-disk archives are
// never produced, so both entry counts carry the same value and the disk
// fields stay zero.
func writeEndOfCentralDir(buf *bytes.Buffer, numEntries uint16, centralDirSize, centralDirOffset uint32) error {
	if _, err := buf.Write(EndSig[:]); err != nil {
		return err
	}

	fields := []any{
		uint16(0), // number of this disk
		uint16(0), // disk where central directory starts
		numEntries,
		numEntries,
		centralDirSize,
		centralDirOffset,
		uint16(0), // comment length
	}
	for _, f := range fields {
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	return nil
}
