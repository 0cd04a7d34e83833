package recover

import (
	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romtype"
)

// FindFID locates the FID struct's embedded "DATABASE" marker, backs up
// to the struct's start, selects a romtype.FidType by matching the FID-
// CPU string against catalog, and records slice views of the firmware-ID
// and FID-CPU strings.
//
// A match whose LOADER tag sits loaderDatabaseOff bytes before it is the
// LOADER struct's own DATABASE marker; FindFID recognizes it from the
// buffer alone (it does not read rf.PLoader) and searches again further on.
//
// Returns *UnknownFidTypeError if no catalog entry matches; this aborts
// the remainder of the pipeline (the caller, not FindFID, decides to
// stop, since FindFID itself only reports the failure).
func FindFID(rf *romfile.RomFile, catalog []romtype.FidType) error {
	buf := rf.Image.Buf
	needle := []byte(fidDatabaseNeedle)

	match, ok := bigend.FindBytes(buf, 0, needle)
	if !ok {
		return &NotFoundError{Stage: "find_fid", What: "DATABASE marker"}
	}

	sfOffset := match - fidDatabaseOff

	if looksLikeLoaderDatabase(buf, match) {
		searchStart := sfOffset + loaderStructSize
		if searchStart < 0 || searchStart >= len(buf) {
			return &NotFoundError{Stage: "find_fid", What: "FID DATABASE marker"}
		}
		match2, ok2 := bigend.FindBytes(buf, searchStart, needle)
		if !ok2 {
			return &NotFoundError{Stage: "find_fid", What: "FID DATABASE marker"}
		}
		match = match2
		sfOffset = match - fidDatabaseOff
	}

	if sfOffset < 0 || sfOffset+fidMaxSize >= len(buf) {
		return &NotFoundError{Stage: "find_fid", What: "FID struct too close to end of image"}
	}

	rf.PFid = romfile.Offset(sfOffset)
	rf.FID = sliceAt(buf, sfOffset+fidStringOff, fidStringLen)
	rf.FIDCPU = sliceAt(buf, sfOffset+fidCPUOff, romtype.CPUTagSize)

	ft, ok := romtype.Lookup(catalog, rf.FIDCPU)
	if !ok {
		return &UnknownFidTypeError{CPU: string(rf.FIDCPU)}
	}
	rf.FidType = ft
	return nil
}

// looksLikeLoaderDatabase reports whether the DATABASE match at offset
// match actually belongs to the LOADER struct's own embedded marker,
// rather than a FID struct's.
func looksLikeLoaderDatabase(buf []byte, match int) bool {
	probe := match - loaderDatabaseOff
	if probe < 0 || probe+len(loaderTag) > len(buf) {
		return false
	}
	return string(buf[probe:probe+len(loaderTag)]) == loaderTag
}

func sliceAt(buf []byte, off, n int) []byte {
	if off < 0 || off+n > len(buf) {
		return nil
	}
	return buf[off : off+n]
}
