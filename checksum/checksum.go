package checksum

import "github.com/fenugrec/nisrom-go/bigend"

// Unknown is the sentinel skip offset meaning "no offset to skip here".
const Unknown = -1

// Sum32 folds buf as a sequence of big-endian 32-bit words and returns the
// wrapping-add sum and the xor of all words. len(buf) is assumed a
// multiple of 4; any trailing 1-3 bytes are ignored.
func Sum32(buf []byte) (sum, xor uint32) {
	n := len(buf) &^ 3
	for off := 0; off < n; off += 4 {
		w := bigend.Load32(buf, off)
		sum += w
		xor ^= w
	}
	return sum, xor
}

// StdResult holds the outcome of Std.
type StdResult struct {
	// PCks, PCkx are the offsets in the image where the sum-channel and
	// xor-channel words are stored.
	PCks, PCkx int
	// Warning is non-nil if more than one candidate offset was found
	// for either word; the first (lowest-offset) match is still used.
	Warning error
}

// Std computes the whole-image fold and locates where its algebraically
// derived (CKS, CKX) pair is stored. It returns NotFoundError if neither
// word can be located anywhere in buf.
func Std(buf []byte) (StdResult, error) {
	return foldAndLocate(buf, "std", Unknown, Unknown)
}

// Alt2 computes the fold over buf, excluding the words at skip1 and skip2
// (pass Unknown for either to skip nothing), and locates the resulting
// (sum, xor) pair within buf. This is used when a checksum protects a
// bounded sub-range of the image rather than the whole thing, and that
// range contains a pointer word (skip1/skip2) that must not contribute to
// the fold.
func Alt2(buf []byte, skip1, skip2 int) (StdResult, error) {
	return foldAndLocate(buf, "alt2", skip1, skip2)
}

func foldAndLocate(buf []byte, kind string, skip1, skip2 int) (StdResult, error) {
	n := len(buf) &^ 3
	var sumt, xort uint32
	for off := 0; off < n; off += 4 {
		if off == skip1 || off == skip2 {
			continue
		}
		w := bigend.Load32(buf, off)
		sumt += w
		xort ^= w
	}

	cks := xort
	ckx := sumt - 2*xort

	pCks, cksCount := -1, 0
	pCkx, ckxCount := -1, 0
	for off := 0; off < n; off += 4 {
		w := bigend.Load32(buf, off)
		if w == cks {
			if pCks == -1 {
				pCks = off
			}
			cksCount++
		}
		if w == ckx {
			if pCkx == -1 {
				pCkx = off
			}
			ckxCount++
		}
	}

	if cksCount == 0 && ckxCount == 0 {
		return StdResult{}, &NotFoundError{Kind: kind}
	}

	res := StdResult{PCks: pCks, PCkx: pCkx}
	if cksCount > 1 || ckxCount > 1 {
		res.Warning = &MultipleMatchWarning{Kind: kind, CksMatches: cksCount, CkxMatches: ckxCount}
	}
	return res, nil
}
