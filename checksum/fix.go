package checksum

import "github.com/fenugrec/nisrom-go/bigend"

// Fix solves for three 32-bit correction words and writes them into the
// image at pA, pB, pC so that a fresh Std fold of buf reports the same
// (CKS, CKX) pair currently stored at pCks, pCkx.
//
// pA, pB, pC must be word-aligned, distinct, and inside [0, len(buf)), and
// len(buf) must be a multiple of 4. Fix never reads or writes outside
// those three 4-byte slots plus the whole-buffer fold it needs to compute
// the current (sum, xor). If the correction is provably infeasible, Fix
// returns an *InfeasibleError and leaves buf unmodified.
func Fix(buf []byte, pCks, pCkx, pA, pB, pC int) error {
	n := len(buf)
	if n == 0 || n&3 != 0 {
		return &BoundsError{Reason: "buffer length must be a nonzero multiple of 4"}
	}
	for _, p := range [...]int{pCks, pCkx, pA, pB, pC} {
		if p < 0 || p+4 > n {
			return &BoundsError{Reason: "offset out of range"}
		}
	}

	cks := bigend.Load32(buf, pCks)
	ckx := bigend.Load32(buf, pCkx)

	var ds, dx uint32
	for off := 0; off < n; off += 4 {
		if off == pCks || off == pCkx || off == pA || off == pB || off == pC {
			continue
		}
		w := bigend.Load32(buf, off)
		ds += w
		dx ^= w
	}

	// ds, dx are now the (sum, xor) of everything but CKS/CKX, with the
	// three correction slots counted as zero.
	// Reduce to the correction deltas the three new words must supply.
	ds = cks - ds
	dx = ckx ^ dx

	a, b, mang, err := solveCorrection(ds, dx)
	if err != nil {
		return err
	}

	bigend.Store32(buf, pA, a)
	bigend.Store32(buf, pB, b)
	bigend.Store32(buf, pC, mang)

	res, verr := Std(buf)
	if verr != nil || res.PCks < 0 || res.PCkx < 0 {
		return &VerifyError{WantCks: cks, WantCkx: ckx}
	}
	gotCks := bigend.Load32(buf, res.PCks)
	gotCkx := bigend.Load32(buf, res.PCkx)
	if gotCks != cks || gotCkx != ckx {
		return &VerifyError{WantCks: cks, WantCkx: ckx, GotCks: gotCks, GotCkx: gotCkx}
	}
	return nil
}

// solveCorrection finds a, b, and a mangler word mang such that, having
// first set mang = dx and reduced the targets by it, a+b == ds and
// a^b == dx. It proceeds bit by bit from the MSB down, tracking carry
// into lower bits, exactly the way the bootstrap/tuning tool this is
// ported from does it.
//
// When a bit position demands (a_i, b_i) = (1, 0) with an incoming carry
// and the sum bit also set, the system is infeasible for the current
// mangler value: mang is decremented, the targets are adjusted to match,
// and the bit scan restarts from the MSB. Reaching mang == 1 without a
// solution is a fatal, reported failure.
//
// a+b+mang and a^b^mang always share their lowest bit, so when ds and dx
// differ in their lowest bit no choice of words solves the system and
// solveCorrection returns an *InfeasibleError straight away.
func solveCorrection(ds, dx uint32) (a, b, mang uint32, err error) {
	if (ds^dx)&1 != 0 {
		return 0, 0, 0, &InfeasibleError{}
	}
	mang = dx
	ds -= mang
	dx ^= mang

	for {
		a, b = 0, 0
		var carry, infeasible bool

		for bit := 31; bit >= 0; bit-- {
			mask := uint32(1) << uint(bit)
			xn := dx&mask != 0
			sn := ds&mask != 0

			var an, bn bool
			if xn {
				an, bn = true, false
				if carry {
					if sn {
						infeasible = true
						break
					}
					carry = true
				} else {
					carry = !sn
				}
			} else {
				if carry {
					an, bn = true, true
				}
				carry = sn
			}

			if an {
				a |= mask
			}
			if bn {
				b |= mask
			}
		}

		if !infeasible {
			return a, b, mang, nil
		}
		if mang == 1 {
			return 0, 0, 0, &InfeasibleError{}
		}
		mang--
		ds++
		dx = dx ^ (mang + 1) ^ mang
	}
}
