package romtype

import "bytes"

// Feature is a fixed bitmask selecting which parts of the structural
// recovery pipeline apply to a given MCU variant.
type Feature uint8

const (
	// StdCks means the classical whole-image dual checksum is present.
	StdCks Feature = 1 << iota
	// AltCks means an alternate checksum protects a bounded sub-range,
	// with bounds pointers carried in RAMF or ECUREC.
	AltCks
	// Alt2Cks means a second alternate checksum, anchored at ECUREC, is
	// present.
	Alt2Cks
	// ECURec means there is no RAMF record; the alt-cks bounds and the
	// IVT2 pointer instead live in an ECUREC record near the end of ROM.
	ECURec
	// IVT2 means the image carries a secondary interrupt vector table.
	IVT2
)

// Has reports whether f includes bit.
func (f Feature) Has(bit Feature) bool {
	return f&bit != 0
}

// CPUTagSize is the fixed width of the CPU identification tag used both
// as a catalog lookup key and as a slice view into the image.
const CPUTagSize = 8

// FidType describes one known MCU variant.
type FidType struct {
	// Name is a human-readable label, for diagnostics only.
	Name string
	// CPU is the 8-byte CPU tag this entry matches against.
	CPU [CPUTagSize]byte

	// ROMSize is the expected image size in bytes for this variant.
	ROMSize uint32
	// FIDBaseSize is sizeof(struct fid_base) for this variant: the
	// distance from the start of the FID struct to the start of RAMF.
	FIDBaseSize uint32

	// RAMFHeader is the RAMF sentinel word (e.g. 0xFFFF8000), or 0 if
	// this variant carries no RAMF record at all (see ECURec).
	RAMFHeader uint32
	// RAMFMaxDist bounds how far find_ramf will drift its search for
	// RAMFHeader away from the naive p_fid + FIDBaseSize offset.
	RAMFMaxDist int

	// Field offsets within the RAMF record or, for ECURec variants, within
	// the ECUREC record.
	PRAMjump    uint32
	PRAMDLAmax  uint32
	PacksStart  uint32
	PacksEnd    uint32
	PIVT2       uint32
	PECUREC     uint32
	PROMend     uint32

	// IVT2Expected is the address this variant's secondary vector table
	// is expected to be found at. For ECURec variants it is the anchor the
	// ECUREC search looks for; the pipeline does not use it otherwise.
	IVT2Expected uint32

	// Features selects which pipeline stages/variants apply.
	Features Feature
}

// Lookup scans catalog for an entry whose CPU tag matches cpu exactly.
// cpu must be at least CPUTagSize bytes; only the first CPUTagSize are
// compared.
func Lookup(catalog []FidType, cpu []byte) (*FidType, bool) {
	if len(cpu) < CPUTagSize {
		return nil, false
	}
	for i := range catalog {
		if bytes.Equal(catalog[i].CPU[:], cpu[:CPUTagSize]) {
			return &catalog[i], true
		}
	}
	return nil, false
}
