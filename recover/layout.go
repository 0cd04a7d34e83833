package recover

// Byte layout of the LOADER and FID structs. These offsets are constant
// across every known MCU variant (only the RAMF/ECUREC side of things
// varies, which is why it lives in the per-variant romtype.FidType
// instead).
const (
	// loaderTag is the ASCII needle marking the start of the version
	// suffix inside a LOADER struct: "LOADER80" etc.
	loaderTag = "LOADER"
	// loaderVersionLen is the number of ASCII decimal digits making up
	// the version suffix immediately following loaderTag.
	loaderVersionLen = 2

	// loaderDatabaseOff is the offset of the embedded "DATABASE" marker
	// within a LOADER struct, relative to the struct's start (i.e. to
	// the start of loaderTag).
	loaderDatabaseOff = 0x10
	// loaderCPUOff is the offset of the 8-byte CPU tag within a LOADER
	// struct.
	loaderCPUOff = 0x20
	// loaderStructSize is sizeof(struct loader_t).
	loaderStructSize = 0x30

	// fidDatabaseTag is the full marker; fidDatabaseNeedle is the
	// shorter anchor actually searched for, sufficient to disambiguate
	// from other text in the image.
	fidDatabaseTag    = "DATABASE"
	fidDatabaseNeedle = "DATAB"

	// fidDatabaseOff is the offset of the "DATABASE" marker within a FID
	// struct, constant across every fid_base variant.
	fidDatabaseOff = 0x04
	// fidStringOff, fidStringLen describe the firmware-ID string field.
	fidStringOff = 0x10
	fidStringLen = 16
	// fidCPUOff is the offset of the 8-byte CPU tag within a FID struct.
	fidCPUOff = 0x20
	// fidMaxSize bounds how close to EOF a FID struct may start; used to
	// reject a dump that is truncated right after the marker.
	fidMaxSize = 0x40
)
