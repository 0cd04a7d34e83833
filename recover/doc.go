// Package recover implements the staged structural recovery pipeline:
// find_loader, find_fid, find_ramf (with its find_ecurec fallback and
// validate_altcks / alt2 anchoring side-effects), and a RIPEMD-160
// presence check.
//
// Stages run in a fixed order and each records its result directly into a
// *romfile.RomFile. A stage never panics on malformed or missing input:
// on failure it returns a non-fatal error, leaves the offsets it could not
// recover at romfile.Unknown, and lets the caller decide whether to
// continue. This
// is what lets downstream stages short-circuit to "unknown" instead of
// guessing when an upstream stage fails.
//
// # Pipeline
//
//	err := recover.FindLoader(rf)          // locates LOADER, parses version
//	err  = recover.FindFID(rf, catalog)     // locates FID, selects FidType
//	err  = recover.FindRAMF(rf)             // locates RAMF or ECUREC
//	recover.DetectRM160(rf)                 // scans for RIPEMD-160 constants
//	err  = recover.AnchorAlt2Checksum(rf)   // alt2 checksum, if applicable
//
// FindRAMF internally calls FindECUREC and ValidateAltChecksum where the
// selected FidType's features call for them, matching the reference
// pipeline's control flow.
package recover
