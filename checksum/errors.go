package checksum

import "fmt"

// NotFoundError indicates that a fold's algebraically-derived (sum, xor)
// pair could not be located anywhere in the scanned region.
type NotFoundError struct {
	// Kind names which fold failed: "std" or "alt2".
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s checksum: no matching words found in image", e.Kind)
}

// MultipleMatchWarning is a non-fatal diagnostic: more than one aligned
// word equal to the derived CKS or CKX value was found. The first match
// is used; this mirrors the reference tool's warning that "the real
// checksums should be close to each other."
type MultipleMatchWarning struct {
	Kind       string
	CksMatches int
	CkxMatches int
}

func (w *MultipleMatchWarning) Error() string {
	return fmt.Sprintf("%s checksum: more than one set of checksums found (cks=%d, ckx=%d matches); "+
		"the real checksums should be close to each other", w.Kind, w.CksMatches, w.CkxMatches)
}

// InfeasibleError indicates that the correction solver found no solution:
// either the sum and xor targets differ in their lowest bit (which no
// choice of words can satisfy), or the mangler reached its floor
// (mang == 1) without a solvable bit pattern. The buffer is left
// unmodified when this error is returned.
type InfeasibleError struct{}

func (e *InfeasibleError) Error() string {
	return "checksum correction is infeasible"
}

// VerifyError indicates that Fix wrote correction values but the
// resulting image does not re-locate to the original CKS/CKX pair.
type VerifyError struct {
	WantCks, WantCkx uint32
	GotCks, GotCkx   uint32
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("checksum fix did not verify: want (cks=%#08x, ckx=%#08x), got (cks=%#08x, ckx=%#08x)",
		e.WantCks, e.WantCkx, e.GotCks, e.GotCkx)
}

// BoundsError indicates an offset or length argument fell outside the
// buffer, or the buffer length was not a multiple of 4.
type BoundsError struct {
	Reason string
}

func (e *BoundsError) Error() string {
	return "checksum: " + e.Reason
}
