package recover

import (
	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/fenugrec/nisrom-go/checksum"
	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romtype"
)

// ValidateAltChecksum recomputes the fold over [PAcstart, PAcend] and
// locates the resulting (sum, xor) pair anywhere in the image, setting
// PAcs/PAcx and CksAltGood on success.
//
// The block's end is rounded up to a word boundary with a quirk observed
// in real images, where PAcend is sometimes two bytes short of word
// alignment: size = (((PAcend+1) - PAcstart) & ^3) + 4.
func ValidateAltChecksum(rf *romfile.RomFile) error {
	ft := rf.FidType
	if ft == nil || !ft.Features.Has(romtype.AltCks) {
		return nil
	}
	if !rf.PAcstart.IsKnown() || !rf.PAcend.IsKnown() {
		return &NotFoundError{Stage: "validate_altcks", What: "alt-cks bounds"}
	}
	start, end := int(rf.PAcstart), int(rf.PAcend)
	if start >= end {
		rf.PAcstart, rf.PAcend = romfile.Unknown, romfile.Unknown
		return &MalformedError{Stage: "validate_altcks", Reason: "start >= end"}
	}

	size := (((end + 1) - start) &^ 0x03) + 4
	buf := rf.Image.Buf
	if start+size > len(buf) {
		rf.PAcstart, rf.PAcend = romfile.Unknown, romfile.Unknown
		return &MalformedError{Stage: "validate_altcks", Reason: "block runs past end of image"}
	}

	acs, acx := checksum.Sum32(buf[start : start+size])

	pAcs, okS := bigend.FindU32(buf, 0, acs)
	pAcx, okX := bigend.FindU32(buf, 0, acx)
	if !okS || !okX {
		return &NotFoundError{Stage: "validate_altcks", What: "alt-cks values"}
	}
	rf.PAcs = romfile.Offset(pAcs)
	rf.PAcx = romfile.Offset(pAcx)
	rf.CksAltGood = true
	return nil
}
