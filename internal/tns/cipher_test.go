package tns_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calclabs/tnspack/internal/tns"
)

func TestProtect_InvalidLength(t *testing.T) {
	data := make([]byte, 7)
	err := tns.Protect(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, tns.ErrInvalidBlockLength)
}

func TestProtect_Empty(t *testing.T) {
	data := []byte{}
	require.NoError(t, tns.Protect(data))
	assert.Empty(t, data)
}

func TestProtect_ModifiesData(t *testing.T) {
	data := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	original := append([]byte(nil), data...)

	require.NoError(t, tns.Protect(data))
	assert.NotEqual(t, original, data, "ciphertext should differ from plaintext")
}

func TestProtect_Deterministic(t *testing.T) {
	data1 := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	data2 := append([]byte(nil), data1...)

	require.NoError(t, tns.Protect(data1))
	require.NoError(t, tns.Protect(data2))

	assert.Equal(t, data1, data2, "identical input must yield identical output")
}

func TestProtect_DifferentInputs(t *testing.T) {
	zeros := make([]byte, 8)
	ones := bytes.Repeat([]byte{0xFF}, 8)

	require.NoError(t, tns.Protect(zeros))
	require.NoError(t, tns.Protect(ones))

	assert.NotEqual(t, zeros, ones)
}

// The block counter wraps at 1024, so the 1025th block reuses the first
// block's keystream seed. With all-zero plaintext the ciphertext is the
// raw mask, making the recurrence directly observable.
func TestProtect_CounterWrap(t *testing.T) {
	const blocks = 1025
	data := make([]byte, blocks*8)
	require.NoError(t, tns.Protect(data))

	first := data[0:8]
	second := data[8:16]
	wrapped := data[1024*8 : 1025*8]

	assert.Equal(t, first, wrapped, "mask must repeat after the counter wraps")
	assert.NotEqual(t, first, second, "consecutive blocks must use different masks")
}
