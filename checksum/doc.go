// Package checksum implements the dual sum+xor integrity fold used
// throughout a ROM image, the locate-by-algebra trick that recovers where
// the fold's own result is stored in the image, and the three-word
// correction solver that forces a chosen region to produce any desired
// (sum, xor) pair.
//
// # The self-referential trick
//
// The device firmware computes a checksum over the whole image while
// skipping the two words that will hold the result (CKS, CKX), because
// folding a word into its own sum/xor would be circular. This package
// instead folds the ENTIRE image, including whatever values currently sit
// at the CKS/CKX locations, and backs out what CKS and CKX must be by
// algebra:
//
//	sumt, xort := Sum32(wholeImage)
//	cks := xort               // xor of a word with itself cancels
//	ckx := sumt - 2*xort      // analogous identity for the additive channel
//
// Std then scans the image for aligned words equal to cks and ckx and
// reports their offsets. Alt2 is the same algebra applied to a sub-range
// of the image, additionally excluding up to two caller-known offsets from
// the fold (e.g. a pointer word that sits inside the protected range but
// is not itself a checksum target).
//
// # Correction solver
//
// Fix is given the existing CKS/CKX and three writable word slots inside
// the protected region. It solves:
//
//	CKS = S + a + b   (mod 2^32)
//	CKX = X ^ a ^ b
//
// where (S, X) is the fold of the region with a, b, and a third "mangler"
// word zeroed. A third free word is needed because the xor equation alone
// cannot always be satisfied by two words; see solveCorrection's doc
// comment for the bit-by-bit construction.
//
// All arithmetic in this package is 32-bit wrapping arithmetic: the
// checksum algebra depends on modular overflow, not saturating or
// checked arithmetic.
package checksum
