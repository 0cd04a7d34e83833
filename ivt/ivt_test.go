package ivt

import (
	"testing"

	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalIVT() []byte {
	buf := make([]byte, 256)
	bigend.Store32(buf, 0, 0x00000104)
	bigend.Store32(buf, 4, 0xFFFF7FFC)
	bigend.Store32(buf, 8, 0x00000104)
	bigend.Store32(buf, 12, 0xFFFF7FFC)
	return buf
}

func TestCheckCanonical(t *testing.T) {
	assert.True(t, Check(canonicalIVT(), 256))
}

func TestCheckTooShort(t *testing.T) {
	assert.False(t, Check(canonicalIVT(), 200))
}

func TestCheckResetMismatch(t *testing.T) {
	buf := canonicalIVT()
	bigend.Store32(buf, 8, 0x00000108) // manual reset PC differs
	assert.False(t, Check(buf, 256))
}

func TestCheckPCOutOfRange(t *testing.T) {
	buf := canonicalIVT()
	bigend.Store32(buf, 0, 0x02000000)
	bigend.Store32(buf, 8, 0x02000000)
	assert.False(t, Check(buf, 256))
}

func TestCheckPCUnaligned(t *testing.T) {
	buf := canonicalIVT()
	bigend.Store32(buf, 0, 0x00000105)
	bigend.Store32(buf, 8, 0x00000105)
	assert.False(t, Check(buf, 256))
}

func TestCheckSPOutOfRange(t *testing.T) {
	buf := canonicalIVT()
	bigend.Store32(buf, 4, 0x00001000)
	bigend.Store32(buf, 12, 0x00001000)
	assert.False(t, Check(buf, 256))
}

func TestFindLocatesCanonicalWindow(t *testing.T) {
	buf := make([]byte, 512)
	copy(buf[32:], canonicalIVT())
	off, ok := Find(buf, 0)
	require.True(t, ok)
	assert.Equal(t, 32, off)
}

func TestConfidenceScoring(t *testing.T) {
	buf := canonicalIVT()
	assert.Equal(t, 75, Confidence(buf, 0))

	bigend.Store32(buf, 4, 0xFFFF7FF0)
	bigend.Store32(buf, 12, 0xFFFF7FF0)
	assert.Equal(t, 50, Confidence(buf, 0))
}
