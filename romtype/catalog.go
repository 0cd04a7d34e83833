package romtype

// tag builds a fixed CPUTagSize array from a string, for catalog literals.
func tag(s string) [CPUTagSize]byte {
	var t [CPUTagSize]byte
	copy(t[:], s)
	return t
}

// ReferenceCatalog is a small, illustrative FidType table covering the
// three shapes the recovery pipeline distinguishes: a plain whole-image
// checksum variant, a RAMF+alt-cks variant, and an ECUREC variant with no
// RAMF at all. It is not a production romdb, that is the external
// collaborator's job, but it is enough to drive the package's tests and
// the demo command against synthetic images.
var ReferenceCatalog = []FidType{
	{
		Name:        "SH7055S",
		CPU:         tag("SH7055S\x00"),
		ROMSize:     512 * 1024,
		FIDBaseSize: 0x20,
		RAMFHeader:  0,
		Features:    StdCks,
	},
	{
		Name:        "SH7058",
		CPU:         tag("SH7058\x00\x00"),
		ROMSize:     1024 * 1024,
		FIDBaseSize: 0x20,
		RAMFHeader:  0xFFFF8000,
		RAMFMaxDist: 0x20,
		PRAMjump:    0x04,
		PRAMDLAmax:  0x08,
		PacksStart:  0x0C,
		PacksEnd:    0x10,
		PIVT2:       0x14,
		PECUREC:     0x18,
		Features:    StdCks | AltCks | IVT2,
	},
	{
		Name:         "SH7059E",
		CPU:          tag("SH7059E\x00"),
		ROMSize:      2048 * 1024,
		FIDBaseSize:  0x20,
		RAMFHeader:   0,
		PacksStart:   0x04,
		PacksEnd:     0x08,
		PROMend:      0x0C,
		PIVT2:        0x10,
		IVT2Expected: 0x7FF00,
		Features:     StdCks | AltCks | Alt2Cks | ECURec | IVT2,
	},
}
