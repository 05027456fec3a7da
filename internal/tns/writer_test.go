package tns_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calclabs/tnspack/internal/tns"
)

func buildTestEntries() []tns.Entry {
	original := []byte("print('hello')\n")
	return []tns.Entry{
		tns.NewProtectedEntry("Document.xml", []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}),
		tns.NewDeflatedEntry("script.py", []byte{0x4B, 0x2C, 0x4A}, uint32(len(original)), crc32.ChecksumIEEE(original)),
	}
}

func TestBuildArchive_TIHeader(t *testing.T) {
	image, err := tns.BuildArchive(buildTestEntries(), tns.VersionDefault)
	require.NoError(t, err)

	require.Greater(t, len(image), 10)
	assert.Equal(t, []byte("*TIMLP"), image[0:6], "archive must start with the TI magic")
	assert.Equal(t, []byte("0500"), image[6:10], "version tag must follow the magic")
}

func TestBuildArchive_BitmapVersionTag(t *testing.T) {
	image, err := tns.BuildArchive(buildTestEntries(), tns.VersionBitmap)
	require.NoError(t, err)

	assert.Equal(t, []byte("0700"), image[6:10])
}

func TestBuildArchive_SecondEntryStandardSignature(t *testing.T) {
	entries := buildTestEntries()
	image, err := tns.BuildArchive(entries, tns.VersionDefault)
	require.NoError(t, err)

	// TI local header: magic(6) + tag(4) + fixed fields(26) + name
	secondOffset := 36 + len(entries[0].Name) + len(entries[0].Body)
	require.Greater(t, len(image), secondOffset+4)
	assert.Equal(t, []byte{0x50, 0x4B, 0x03, 0x04}, image[secondOffset:secondOffset+4],
		"second entry must use the standard local header signature")
}

func TestBuildArchive_EndRecord(t *testing.T) {
	image, err := tns.BuildArchive(buildTestEntries(), tns.VersionDefault)
	require.NoError(t, err)

	// end record is fixed 22 bytes: sig(4) disks(4) counts(4) size(4) offset(4) comment(2)
	record := image[len(image)-22:]
	assert.Equal(t, []byte("TIPD"), record[0:4], "end record must use the TI signature")

	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(record[4:6]), "disk number")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(record[6:8]), "central directory disk")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(record[8:10]), "entries on this disk")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(record[10:12]), "total entries")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(record[20:22]), "comment length")

	// the recorded offset must land on the first central directory record
	dirOffset := binary.LittleEndian.Uint32(record[16:20])
	require.Greater(t, len(image), int(dirOffset)+4)
	assert.Equal(t, []byte{0x50, 0x4B, 0x01, 0x02}, image[dirOffset:dirOffset+4])

	dirSize := binary.LittleEndian.Uint32(record[12:16])
	assert.Equal(t, len(image)-22, int(dirOffset+dirSize), "directory must run up to the end record")
}

func TestBuildArchive_EndSignatureScansFromBack(t *testing.T) {
	image, err := tns.BuildArchive(buildTestEntries(), tns.VersionDefault)
	require.NoError(t, err)

	assert.Equal(t, len(image)-22, bytes.LastIndex(image, []byte("TIPD")),
		"backward scan must find the end signature")
}

func TestBuildArchive_CentralDirectoryLedger(t *testing.T) {
	entries := buildTestEntries()
	image, err := tns.BuildArchive(entries, tns.VersionDefault)
	require.NoError(t, err)

	record := image[len(image)-22:]
	dirOffset := int(binary.LittleEndian.Uint32(record[16:20]))

	// first central directory record describes the first entry at offset 0
	cd := image[dirOffset:]
	assert.Equal(t, uint16(0x0D), binary.LittleEndian.Uint16(cd[10:12]), "method")
	assert.Equal(t, entries[0].CRC32, binary.LittleEndian.Uint32(cd[16:20]), "crc")
	assert.Equal(t, uint32(len(entries[0].Body)), binary.LittleEndian.Uint32(cd[20:24]), "compressed size")
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(cd[42:46]), "local header offset")
	nameLen := int(binary.LittleEndian.Uint16(cd[28:30]))
	assert.Equal(t, entries[0].Name, string(cd[46:46+nameLen]))
}

func TestNewProtectedEntry_ChecksumOverStoredBytes(t *testing.T) {
	body := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}
	entry := tns.NewProtectedEntry("Problem1.xml", body)

	assert.Equal(t, tns.MethodProtected, entry.Method)
	assert.Equal(t, crc32.ChecksumIEEE(body), entry.CRC32)
	assert.Equal(t, uint32(len(body)), entry.UncompressedSize)
}

func TestBuildArchive_Deterministic(t *testing.T) {
	first, err := tns.BuildArchive(buildTestEntries(), tns.VersionDefault)
	require.NoError(t, err)
	second, err := tns.BuildArchive(buildTestEntries(), tns.VersionDefault)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
