package recover

import (
	"github.com/fenugrec/nisrom-go/checksum"
	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romtype"
)

// AnchorAlt2Checksum runs the alt2 checksum fold over [PEcurec, end of
// image), skipping the word at PIvt2-4, just before the secondary vector
// table, and records PA2cs/PA2cx/CksAlt2Good when both checksum words are
// located.
//
// No-op unless the selected FidType has romtype.Alt2Cks and both PEcurec
// and PIvt2 are known.
func AnchorAlt2Checksum(rf *romfile.RomFile) error {
	ft := rf.FidType
	if ft == nil || !ft.Features.Has(romtype.Alt2Cks) {
		return nil
	}
	if !rf.PEcurec.IsKnown() || !rf.PIvt2.IsKnown() {
		return nil
	}

	buf := rf.Image.Buf
	pecurec := int(rf.PEcurec)
	if pecurec < 0 || pecurec >= len(buf) {
		return nil
	}

	skip2 := (int(rf.PIvt2) - 4) - pecurec
	rf.PAc2start = romfile.Offset(pecurec)

	res, err := checksum.Alt2(buf[pecurec:], checksum.Unknown, skip2)
	if err != nil {
		return err
	}
	if res.PCks < 0 || res.PCkx < 0 {
		return &NotFoundError{Stage: "alt2_checksum", What: "alt2 checksum words"}
	}
	rf.PA2cs = romfile.Offset(res.PCks + pecurec)
	rf.PA2cx = romfile.Offset(res.PCkx + pecurec)
	rf.CksAlt2Good = true
	return nil
}
