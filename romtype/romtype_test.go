package romtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureHas(t *testing.T) {
	f := StdCks | IVT2
	assert.True(t, f.Has(StdCks))
	assert.True(t, f.Has(IVT2))
	assert.False(t, f.Has(AltCks))
}

func TestLookupMatch(t *testing.T) {
	ft, ok := Lookup(ReferenceCatalog, []byte("SH7055S\x00trailing"))
	require.True(t, ok)
	assert.Equal(t, "SH7055S", ft.Name)
}

func TestLookupNoMatch(t *testing.T) {
	_, ok := Lookup(ReferenceCatalog, []byte("UNKNOWN\x00"))
	assert.False(t, ok)
}

func TestLookupShortCPU(t *testing.T) {
	_, ok := Lookup(ReferenceCatalog, []byte("short"))
	assert.False(t, ok)
}
