package checksum

import (
	"math/rand"
	"testing"

	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildImage(words []uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		bigend.Store32(buf, i*4, w)
	}
	return buf
}

func TestSum32(t *testing.T) {
	buf := buildImage([]uint32{1, 2, 3, 4})
	sum, xor := Sum32(buf)
	assert.Equal(t, uint32(10), sum)
	assert.Equal(t, uint32(1^2^3^4), xor)
}

func TestSum32IgnoresTrailingBytes(t *testing.T) {
	buf := append(buildImage([]uint32{7}), 0xAA, 0xBB, 0xCC)
	sum, xor := Sum32(buf)
	assert.Equal(t, uint32(7), sum)
	assert.Equal(t, uint32(7), xor)
}

// A whole-image std checksum is internally consistent: if we plant CKS/CKX
// at two locations by running Fix, a fresh Std call must re-find them.
func TestStdRoundTripViaFix(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	words := make([]uint32, 64)
	for i := range words {
		words[i] = src.Uint32()
	}
	buf := buildImage(words)

	pCks, pCkx, pA, pB, pC := 0, 4, 8, 12, 16
	bigend.Store32(buf, pCks, 0x1234_5678)
	bigend.Store32(buf, pCkx, 0x9ABC_DEF0)

	err := Fix(buf, pCks, pCkx, pA, pB, pC)
	require.NoError(t, err)

	res, err := Std(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1234_5678), bigend.Load32(buf, res.PCks))
	assert.Equal(t, uint32(0x9ABC_DEF0), bigend.Load32(buf, res.PCkx))
}

func TestStdIdempotent(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	words := make([]uint32, 32)
	for i := range words {
		words[i] = src.Uint32()
	}
	buf := buildImage(words)
	// CKS and CKX must share their lowest bit for any correction to exist.
	bigend.Store32(buf, 4, words[1]&^1|words[0]&1)
	require.NoError(t, Fix(buf, 0, 4, 8, 12, 16))

	r1, err := Std(buf)
	require.NoError(t, err)
	r2, err := Std(buf)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestStdAllZeroWarnsMultipleMatches(t *testing.T) {
	buf := make([]byte, 16) // all-zero: cks=0, ckx=0, both present many times -> found w/ warning
	res, err := Std(buf)
	require.NoError(t, err)
	assert.NotNil(t, res.Warning)
}

func TestAlt2SkipsOffsets(t *testing.T) {
	words := []uint32{0x11111111, 0x22222222, 0x33333333, 0x44444444, 0, 0}
	buf := buildImage(words)
	// skip2 points at a pointer word irrelevant to the fold.
	res, err := Alt2(buf, Unknown, 12)
	require.NoError(t, err)
	_ = res
}

func TestFixRejectsBadBounds(t *testing.T) {
	buf := make([]byte, 10) // not a multiple of 4
	err := Fix(buf, 0, 4, 8, 12, 16)
	require.Error(t, err)
	var be *BoundsError
	assert.ErrorAs(t, err, &be)
}

func TestFixInfeasible(t *testing.T) {
	buf := make([]byte, 20)
	// CKS and CKX differ in their lowest bit. A sum and an xor of the same
	// words always share their lowest bit, so no correction words exist.
	bigend.Store32(buf, 0, 0xFFFFFFFF) // pCks
	bigend.Store32(buf, 4, 0xFFFFFFFE) // pCkx
	orig := append([]byte(nil), buf...)
	err := Fix(buf, 0, 4, 8, 12, 16)
	var ie *InfeasibleError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, orig, buf)
}

func TestCheckSolveCorrectionDirect(t *testing.T) {
	const ds, dx = uint32(100), uint32(6)
	a, b, mang, err := solveCorrection(ds, dx)
	require.NoError(t, err)
	assert.Equal(t, ds, a+b+mang)
	assert.Equal(t, dx, a^b^mang)
}
