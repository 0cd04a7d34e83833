package recover

import (
	"github.com/fenugrec/nisrom-go/ivt"
	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romtype"
)

// FindRAMF locates the RAMF record (or, for ECUREC variants, delegates to
// FindECUREC), parses its alt-cks bounds and IVT2 pointer, validates the
// IVT2 location, and, if IVT2 was expected but not confirmed, runs a
// bounded brute-force search for a secondary vector table.
//
// FindLoader and FindFID must have already run successfully.
func FindRAMF(rf *romfile.RomFile) error {
	ft := rf.FidType
	if ft == nil || !rf.PFid.IsKnown() {
		return &NotFoundError{Stage: "find_ramf", What: "prerequisite FID struct"}
	}

	pRamf := int(rf.PFid) + int(ft.FIDBaseSize)
	buf := rf.Image.Buf

	if ft.RAMFHeader == 0 {
		if !ft.Features.Has(romtype.ECURec) {
			return nil
		}
		if _, err := FindECUREC(rf); err != nil {
			return err
		}
	} else {
		found, adj := locateRAMFHeader(buf, pRamf, ft.RAMFHeader, ft.RAMFMaxDist)
		if !found {
			return &NotFoundError{Stage: "find_ramf", What: "RAMF header"}
		}
		rf.RamfOffset = int32(adj)
		pRamf += adj
		rf.PRamf = romfile.Offset(pRamf)

		parseRAMF(rf, pRamf, ft)
	}

	if ft.Features.Has(romtype.AltCks) {
		sanitizeAltBounds(rf, len(buf))
		if rf.PAcstart.IsKnown() {
			_ = ValidateAltChecksum(rf)
		}
	}

	sanitizeIVT2(rf, buf)

	if !ft.Features.Has(romtype.ECURec) && rf.PRamf.IsKnown() {
		if w, ok := readWord(buf, int(rf.PRamf)+int(ft.PECUREC)); ok {
			rf.PEcurec = romfile.Offset(w)
		}
	}

	return nil
}

// locateRAMFHeader checks the naive RAMF position first, then sweeps a
// sign-alternating offset pattern (+4, -4, +8, -8, +12, then +16, +20,
// ...) up to maxDist looking for the RAMF header sentinel.
func locateRAMFHeader(buf []byte, pRamf int, header uint32, maxDist int) (bool, int) {
	if w, ok := readWord(buf, pRamf); ok && w == header {
		return true, 0
	}

	adj, sign := 4, 1
	for adj < maxDist {
		off := pRamf + sign*adj
		if w, ok := readWord(buf, off); ok && w == header {
			return true, sign * adj
		}
		if adj < 0x0c {
			sign = -sign
			if sign == 1 {
				adj += 4
			}
		} else {
			sign = 1
			adj += 4
		}
	}
	return false, 0
}

// parseRAMF reads the alt-cks bounds and IVT2 pointer out of the RAMF
// record, but only into fields FindECUREC hasn't already populated
// (mirroring the reference tool's "find_romend may have filled these in"
// guard).
func parseRAMF(rf *romfile.RomFile, pRamf int, ft *romtype.FidType) {
	buf := rf.Image.Buf

	if ft.Features.Has(romtype.AltCks) {
		if !rf.PAcstart.IsKnown() && !rf.PAcend.IsKnown() {
			if w, ok := readWord(buf, pRamf+int(ft.PacksStart)); ok {
				rf.PAcstart = romfile.Offset(w)
			}
			if w, ok := readWord(buf, pRamf+int(ft.PacksEnd)); ok {
				rf.PAcend = romfile.Offset(w)
			}
		}
	} else {
		rf.PAcstart = romfile.Unknown
		rf.PAcend = romfile.Unknown
	}

	if ft.PIVT2 != 0 {
		if !rf.PIvt2.IsKnown() {
			if w, ok := readWord(buf, pRamf+int(ft.PIVT2)); ok {
				rf.PIvt2 = romfile.Offset(w)
			}
		}
	} else {
		rf.PIvt2 = romfile.Unknown
	}
}

func sanitizeAltBounds(rf *romfile.RomFile, n int) {
	if !rf.PAcstart.IsKnown() || !rf.PAcend.IsKnown() {
		return
	}
	start, end := int(rf.PAcstart), int(rf.PAcend)
	if start >= n || end >= n || start >= end {
		rf.PAcstart = romfile.Unknown
		rf.PAcend = romfile.Unknown
	}
}

func sanitizeIVT2(rf *romfile.RomFile, buf []byte) {
	n := len(buf)
	if rf.PIvt2.IsKnown() {
		off := int(rf.PIvt2)
		if off >= n-ivt.MinSize {
			rf.PIvt2 = romfile.Unknown
		} else if !ivt.Check(buf[off:], n-off) {
			rf.PIvt2 = romfile.Unknown
		}
	}

	if !rf.PIvt2.IsKnown() && rf.FidType != nil && rf.FidType.Features.Has(romtype.IVT2) {
		bruteForceIVT2(rf, buf)
	}
}

// bruteForceIVT2 sweeps aligned 4-byte windows past the primary IVT
// looking for a secondary vector table, the fallback used when a
// variant's declared IVT2 pointer turns out to be unusable.
func bruteForceIVT2(rf *romfile.RomFile, buf []byte) {
	off, ok := ivt.FindAligned(buf, ivt.MinSize, 4)
	if !ok {
		return
	}
	rf.PIvt2 = romfile.Offset(off)
	// The first window that passes ivt.Check is taken as is. No confidence
	// score (ivt.Confidence) is computed for it, stored in RomFile, or
	// reported through the diagnostic sink.
}
