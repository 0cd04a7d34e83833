package recover

import (
	"strconv"

	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/fenugrec/nisrom-go/romfile"
)

// FindLoader locates the ASCII needle "LOADER", backs up to the start of
// the containing struct, parses the two-digit decimal version number
// immediately following the tag, and records a slice view of the 8-byte
// CPU string carried in the same struct.
//
// On failure, rf.PLoader stays romfile.Unknown and rf.LoaderV stays -1.
func FindLoader(rf *romfile.RomFile) error {
	buf := rf.Image.Buf

	off, ok := bigend.FindBytes(buf, 0, []byte(loaderTag))
	if !ok {
		return &NotFoundError{Stage: "find_loader", What: "LOADER tag"}
	}

	verStart := off + len(loaderTag)
	if verStart+loaderVersionLen <= len(buf) {
		if v, err := strconv.Atoi(string(buf[verStart : verStart+loaderVersionLen])); err == nil {
			rf.LoaderV = v
		}
	}

	rf.PLoader = romfile.Offset(off)
	cpuOff := off + loaderCPUOff
	if cpuOff+8 <= len(buf) {
		rf.LoaderCPU = buf[cpuOff : cpuOff+8]
	}
	return nil
}
