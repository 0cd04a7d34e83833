package recover

import (
	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romtype"
)

// minECURECWindow is the minimum remaining image length FindECUREC needs
// past a candidate &IVT2 match to safely read the bytes around it.
const minECURECWindow = 100

// FindECUREC is the fallback structural anchor for variants that carry
// no RAMF record at all: it searches for occurrences of the variant's
// expected IVT2 address and, for each candidate, derives where the
// ECUREC record preceding it would start and checks that record's ROMEND
// field equals ROMSize-1. The first candidate that checks out is
// accepted.
//
// Only applies when rf.FidType.Features has romtype.ECURec; returns
// false otherwise.
func FindECUREC(rf *romfile.RomFile) (bool, error) {
	ft := rf.FidType
	if ft == nil || !ft.Features.Has(romtype.ECURec) {
		return false, nil
	}
	buf := rf.Image.Buf
	n := len(buf)

	start := 0
	for start < n-minECURECWindow {
		cand, ok := bigend.FindU32(buf, start, ft.IVT2Expected)
		if !ok {
			return false, &NotFoundError{Stage: "find_ecurec", What: "IVT2/ROMEND anchor"}
		}
		start = cand + 4

		ppEcurec := cand - int(ft.PIVT2)
		pRomend := ppEcurec + int(ft.PROMend)
		if pRomend < 0 || pRomend+4 > n-4 {
			continue
		}
		romend := bigend.Load32(buf, pRomend)
		if romend+1 != ft.ROMSize {
			continue
		}

		rf.PIvt2 = romfile.Offset(ft.IVT2Expected)
		rf.PAcstart = romfile.FromInt(safeWord(buf, ppEcurec+int(ft.PacksStart)))
		rf.PAcend = romfile.FromInt(safeWord(buf, ppEcurec+int(ft.PacksEnd)))
		if w, ok := readWord(buf, ppEcurec); ok {
			rf.PEcurec = romfile.Offset(w)
		}
		return true, nil
	}
	return false, &NotFoundError{Stage: "find_ecurec", What: "IVT2/ROMEND anchor"}
}

// safeWord returns the value read at off if it can be read as a full
// 32-bit word, or -1 (signalling "unreadable") otherwise. It is used
// where the original algorithm reads a pointer-sized field whose value
// then becomes an offset elsewhere in the image.
func safeWord(buf []byte, off int) int {
	w, ok := readWord(buf, off)
	if !ok {
		return -1
	}
	return int(w)
}

func readWord(buf []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(buf) {
		return 0, false
	}
	return bigend.Load32(buf, off), true
}
