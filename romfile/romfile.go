// Package romfile holds the analysis record the structural recovery
// pipeline fills in, and the Offset type used for every position within
// an image that may or may not be known.
package romfile

import (
	"github.com/fenugrec/nisrom-go/romimage"
	"github.com/fenugrec/nisrom-go/romtype"
)

// Offset is a byte position within an Image, or Unknown if the position
// has not been (or could not be) recovered.
type Offset uint32

// Unknown is the sentinel value meaning "position not recovered". It
// mirrors the 0xFFFFFFFF sentinel used throughout the reference tool this
// module is modeled on, kept as the literal in-memory representation so
// downstream renderers that format offsets as raw hex see the same value.
const Unknown Offset = 0xFFFFFFFF

// IsKnown reports whether o is a real, recovered offset.
func (o Offset) IsKnown() bool {
	return o != Unknown
}

// FromInt converts a search result (as returned by the bigend/checksum
// packages, which use -1 for "not found") into an Offset. Negative i maps
// to Unknown.
func FromInt(i int) Offset {
	if i < 0 {
		return Unknown
	}
	return Offset(i)
}

// RomFile is the populated analysis record: the image plus every offset,
// flag, and slice view the structural recovery pipeline and checksum
// kernel discover about it.
type RomFile struct {
	Image *romimage.Image

	// Structural offsets.
	PLoader Offset
	PFid    Offset
	PRamf   Offset
	PIvt2   Offset
	PEcurec Offset

	// Standard checksum word locations.
	PCks Offset
	PCkx Offset

	// Alternate checksum word locations and block bounds.
	PAcs     Offset
	PAcx     Offset
	PAcstart Offset
	PAcend   Offset

	// Second alternate checksum word locations and block start.
	PA2cs     Offset
	PA2cx     Offset
	PAc2start Offset

	// FidType selected for this image, or nil if none matched yet.
	FidType *romtype.FidType

	// LoaderV is the parsed LOADER version number, or -1 if unknown.
	LoaderV int

	// RamfOffset is the signed drift (in bytes) between the naive RAMF
	// position (PFid + FidType.FIDBaseSize) and where RAMF was actually
	// found.
	RamfOffset int32

	// Slice views into Image.Buf. These do not outlive the RomFile.
	LoaderCPU []byte
	FID       []byte
	FIDCPU    []byte

	CksAltGood  bool
	CksAlt2Good bool
	HasRM160    bool
}

// New returns a RomFile with every offset set to Unknown and every flag
// cleared.
func New(img *romimage.Image) *RomFile {
	return &RomFile{
		Image:      img,
		PLoader:    Unknown,
		PFid:       Unknown,
		PRamf:      Unknown,
		PIvt2:      Unknown,
		PEcurec:    Unknown,
		PCks:       Unknown,
		PCkx:       Unknown,
		PAcs:       Unknown,
		PAcx:       Unknown,
		PAcstart:   Unknown,
		PAcend:     Unknown,
		PA2cs:      Unknown,
		PA2cx:      Unknown,
		PAc2start:  Unknown,
		LoaderV:    -1,
	}
}
