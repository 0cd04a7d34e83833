package recover

import (
	"testing"

	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romimage"
	"github.com/fenugrec/nisrom-go/romtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeLoaderStruct writes a LOADER struct at off: tag + 2-digit version,
// an embedded DATABASE marker, and an 8-byte CPU string.
func writeLoaderStruct(buf []byte, off int, version string, cpu string) {
	copy(buf[off:], loaderTag)
	copy(buf[off+len(loaderTag):], version)
	copy(buf[off+loaderDatabaseOff:], fidDatabaseTag)
	copy(buf[off+loaderCPUOff:], cpu)
}

// writeFidStruct writes a FID struct at off: DATABASE marker, firmware-ID
// string, and CPU string.
func writeFidStruct(buf []byte, off int, fid string, cpu string) {
	copy(buf[off+fidDatabaseOff:], fidDatabaseTag)
	copy(buf[off+fidStringOff:], fid)
	copy(buf[off+fidCPUOff:], cpu)
}

func newRomFile(buf []byte) *romfile.RomFile {
	return romfile.New(&romimage.Image{Filename: "test.bin", Buf: buf})
}

func TestFindLoaderBasic(t *testing.T) {
	buf := make([]byte, 4096)
	writeLoaderStruct(buf, 0x100, "80", "SH7055S\x00")
	rf := newRomFile(buf)

	require.NoError(t, FindLoader(rf))
	assert.Equal(t, romfile.Offset(0x100), rf.PLoader)
	assert.Equal(t, 80, rf.LoaderV)
	assert.Equal(t, "SH7055S\x00", string(rf.LoaderCPU))
}

func TestFindLoaderNotFound(t *testing.T) {
	buf := make([]byte, 4096)
	rf := newRomFile(buf)
	err := FindLoader(rf)
	require.Error(t, err)
	assert.False(t, rf.PLoader.IsKnown())
}

func TestFindFIDSkipsLoaderDatabase(t *testing.T) {
	buf := make([]byte, 4096)
	writeLoaderStruct(buf, 0x100, "80", "SH7055S\x00")
	fidOff := 0x100 + loaderStructSize + 0x40
	writeFidStruct(buf, fidOff, "SOMEFID", "SH7055S\x00")
	rf := newRomFile(buf)

	require.NoError(t, FindLoader(rf))
	require.NoError(t, FindFID(rf, romtype.ReferenceCatalog))
	assert.Equal(t, romfile.Offset(fidOff), rf.PFid)
	assert.Equal(t, "SH7055S", rf.FidType.Name)
}

func TestFindFIDUnknownCPU(t *testing.T) {
	buf := make([]byte, 4096)
	writeLoaderStruct(buf, 0x100, "80", "SH7055S\x00")
	fidOff := 0x100 + loaderStructSize + 0x40
	writeFidStruct(buf, fidOff, "SOMEFID", "NOPE\x00\x00\x00\x00")
	rf := newRomFile(buf)

	require.NoError(t, FindLoader(rf))
	err := FindFID(rf, romtype.ReferenceCatalog)
	require.Error(t, err)
	var uerr *UnknownFidTypeError
	assert.ErrorAs(t, err, &uerr)
}

func TestFindRAMFDrift(t *testing.T) {
	buf := make([]byte, 1024*1024)
	writeLoaderStruct(buf, 0x100, "90", "SH7058\x00\x00")
	fidOff := 0x100 + loaderStructSize + 0x40
	writeFidStruct(buf, fidOff, "SOMEFID", "SH7058\x00\x00")
	rf := newRomFile(buf)
	require.NoError(t, FindLoader(rf))
	require.NoError(t, FindFID(rf, romtype.ReferenceCatalog))

	naiveRamf := int(rf.PFid) + int(rf.FidType.FIDBaseSize)
	drift := 8
	bigend.Store32(buf, naiveRamf+drift, rf.FidType.RAMFHeader)

	require.NoError(t, FindRAMF(rf))
	assert.Equal(t, int32(drift), rf.RamfOffset)
	assert.Equal(t, romfile.Offset(naiveRamf+drift), rf.PRamf)
}

func TestFindRAMFAndValidateAltChecksum(t *testing.T) {
	buf := make([]byte, 1024*1024)
	writeLoaderStruct(buf, 0x100, "90", "SH7058\x00\x00")
	fidOff := 0x100 + loaderStructSize + 0x40
	writeFidStruct(buf, fidOff, "SOMEFID", "SH7058\x00\x00")
	rf := newRomFile(buf)
	require.NoError(t, FindLoader(rf))
	require.NoError(t, FindFID(rf, romtype.ReferenceCatalog))

	ft := rf.FidType
	ramf := int(rf.PFid) + int(ft.FIDBaseSize)
	bigend.Store32(buf, ramf, ft.RAMFHeader)

	// A three-word block [acStart, acEnd] whose sum and xor are easy to
	// check by hand and distinct from each other: words 1, 2, 5 sum to 8
	// and xor to 6.
	acStart, acEnd := 0x10000, 0x10008
	bigend.Store32(buf, ramf+int(ft.PacksStart), uint32(acStart))
	bigend.Store32(buf, ramf+int(ft.PacksEnd), uint32(acEnd))
	bigend.Store32(buf, acStart, 1)
	bigend.Store32(buf, acStart+4, 2)
	bigend.Store32(buf, acStart+8, 5)

	var acs uint32 = 8
	var acx uint32 = 6
	plant := acStart - 16
	bigend.Store32(buf, plant, acs)
	bigend.Store32(buf, plant+4, acx)

	require.NoError(t, FindRAMF(rf))
	assert.True(t, rf.CksAltGood)
	assert.Equal(t, romfile.Offset(plant), rf.PAcs)
	assert.Equal(t, romfile.Offset(plant+4), rf.PAcx)
}

func TestFindECURECVariant(t *testing.T) {
	buf := make([]byte, 2048*1024)
	writeLoaderStruct(buf, 0x100, "95", "SH7059E\x00")
	fidOff := 0x100 + loaderStructSize + 0x40
	writeFidStruct(buf, fidOff, "SOMEFID", "SH7059E\x00")
	rf := newRomFile(buf)
	require.NoError(t, FindLoader(rf))
	require.NoError(t, FindFID(rf, romtype.ReferenceCatalog))

	ft := rf.FidType
	ppEcurec := 0x1FFF00 // near the end of the 2 MiB buffer
	bigend.Store32(buf, ppEcurec, uint32(ppEcurec))
	bigend.Store32(buf, ppEcurec+int(ft.PacksStart), 0x1000)
	bigend.Store32(buf, ppEcurec+int(ft.PacksEnd), 0x2000)
	bigend.Store32(buf, ppEcurec+int(ft.PROMend), ft.ROMSize-1)
	bigend.Store32(buf, ppEcurec+int(ft.PIVT2), ft.IVT2Expected)

	// A valid-looking vector table at the IVT2 address itself, so
	// sanitizeIVT2's shape check doesn't discard what FindECUREC found.
	ivt2Off := int(ft.IVT2Expected)
	bigend.Store32(buf, ivt2Off, 0x1000)
	bigend.Store32(buf, ivt2Off+4, 0xFFFF7FFC)
	bigend.Store32(buf, ivt2Off+8, 0x1000)
	bigend.Store32(buf, ivt2Off+12, 0xFFFF7FFC)

	require.NoError(t, FindRAMF(rf))
	assert.Equal(t, romfile.Offset(ft.IVT2Expected), rf.PIvt2)
	assert.Equal(t, romfile.Offset(0x1000), rf.PAcstart)
	assert.Equal(t, romfile.Offset(0x2000), rf.PAcend)
}

func TestDetectRM160(t *testing.T) {
	buf := make([]byte, 4096)
	rf := newRomFile(buf)
	DetectRM160(rf)
	assert.False(t, rf.HasRM160)

	bigend.Store32(buf, 0x40, ripemd160InitA)
	bigend.Store32(buf, 0x80, ripemd160InitC)
	DetectRM160(rf)
	assert.True(t, rf.HasRM160)
}
