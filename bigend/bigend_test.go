package bigend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore32RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	Store32(buf, 2, 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), Load32(buf, 2))
}

func TestLoadStore16RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	Store16(buf, 1, 0xABCD)
	assert.Equal(t, uint16(0xABCD), Load16(buf, 1))
}

func TestFindBytes(t *testing.T) {
	buf := []byte("xxLOADER80xx")
	off, ok := FindBytes(buf, 0, []byte("LOADER"))
	require.True(t, ok)
	assert.Equal(t, 2, off)

	_, ok = FindBytes(buf, 0, []byte("NOPE"))
	assert.False(t, ok)

	_, ok = FindBytes(buf, 0, nil)
	assert.False(t, ok)

	_, ok = FindBytes([]byte{}, 0, []byte("a"))
	assert.False(t, ok)
}

func TestFindBytesReverse(t *testing.T) {
	buf := []byte("AAABBBAAA")
	off, ok := FindBytesReverse(buf, len(buf)-1, []byte("AAA"))
	require.True(t, ok)
	assert.Equal(t, 6, off)
}

func TestFindU32Aligned(t *testing.T) {
	buf := make([]byte, 16)
	Store32(buf, 8, 0x12345678)
	off, ok := FindU32(buf, 0, 0x12345678)
	require.True(t, ok)
	assert.Equal(t, 8, off)

	// Same bytes, misaligned placement must not match.
	buf2 := make([]byte, 16)
	Store32(buf2, 1, 0x12345678)
	_, ok = FindU32(buf2, 0, 0x12345678)
	assert.False(t, ok)
}

func TestFindU32Reverse(t *testing.T) {
	buf := make([]byte, 16)
	Store32(buf, 0, 0xAABBCCDD)
	Store32(buf, 8, 0xAABBCCDD)
	off, ok := FindU32Reverse(buf, 12, 0xAABBCCDD)
	require.True(t, ok)
	assert.Equal(t, 8, off)
}

func TestFindU16(t *testing.T) {
	buf := make([]byte, 8)
	Store16(buf, 4, 0xFEED)
	off, ok := FindU16(buf, 0, 0xFEED)
	require.True(t, ok)
	assert.Equal(t, 4, off)
}
