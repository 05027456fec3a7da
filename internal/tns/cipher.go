package tns

import (
	"crypto/des"
	"encoding/binary"
	"fmt"
)

// Constants for document protection
const (
	// ivecBase is the base value the block counter is added to in order to
	// obtain the keystream seed for the current block.
	ivecBase uint32 = 0x6fe21307

	// counterWrap is the short period of the block counter. The counter
	// resets to 0 after this many blocks, so the same masks repeat across
	// the rest of the document.
	counterWrap uint32 = 1024

	// blockSize is the DES block size in bytes.
	blockSize = 8
)

// protectKey is the 24-byte 3DES-EDE3 key used for document protection:
// three fixed 8-byte keys concatenated. This is a shared device-format
// constant baked into the calculator OS, not a secret.
var protectKey = [24]byte{
	0x16, 0xA7, 0xA7, 0x32, 0x68, 0xA7, 0xBA, 0x73,
	0xD9, 0xA8, 0x86, 0xA4, 0x34, 0x45, 0x94, 0x10,
	0x3D, 0x80, 0x8C, 0xB5, 0xDF, 0xB3, 0x80, 0x6B,
}

// Protect encrypts document data in place using TI's keystream scheme.
//
// This is not a standard block cipher mode. For each 8-byte block:
//  1. seed = ivecBase + counter (uint32 wrap); counter wraps to 0 at 1024
//  2. build a counter block: 4 zero bytes, then the seed little-endian
//  3. encrypt the counter block with 3DES-EDE3 (single block, no chaining)
//  4. XOR the encrypted block into the plaintext
//
// The data length must be a multiple of 8 bytes; Protect validates this
// before touching the buffer and returns ErrInvalidBlockLength otherwise.
// Output is fully deterministic: no randomness, no wall clock.
func Protect(data []byte) error {
	if len(data)%blockSize != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidBlockLength, len(data))
	}

	cipher, err := des.NewTripleDESCipher(protectKey[:])
	if err != nil {
		// protectKey is a valid 24-byte key, so this cannot happen
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}

	var counter uint32
	ivec := make([]byte, blockSize)
	mask := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		seed := ivecBase + counter

		counter++
		if counter == counterWrap {
			counter = 0
		}

		// counter block: ivec[0..3] stay zero, ivec[4..7] hold the seed
		binary.LittleEndian.PutUint32(ivec[4:], seed)

		cipher.Encrypt(mask, ivec)

		for i := 0; i < blockSize; i++ {
			data[off+i] ^= mask[i]
		}
	}

	return nil
}

// Pad returns data zero-padded up to the next multiple of 8 bytes, as
// required by Protect. Data already on a block boundary is returned as is.
func Pad(data []byte) []byte {
	if rem := len(data) % blockSize; rem != 0 {
		return append(data, make([]byte, blockSize-rem)...)
	}
	return data
}
