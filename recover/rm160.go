package recover

import (
	"github.com/fenugrec/nisrom-go/bigend"
	"github.com/fenugrec/nisrom-go/romfile"
)

// ripemd160InitA and ripemd160InitC are two of RIPEMD-160's standard
// initialization constants. Their joint presence, aligned, anywhere in
// the image is a reasonably strong signal that the image embeds a
// RIPEMD-160 implementation (used by the key-guessing subsystem this
// module treats as an external collaborator).
const (
	ripemd160InitA = 0x67452301
	ripemd160InitC = 0x98BADCFE
)

// DetectRM160 sets rf.HasRM160 iff both RIPEMD-160 initialization
// constants appear as aligned 32-bit words anywhere in the image.
func DetectRM160(rf *romfile.RomFile) {
	buf := rf.Image.Buf
	_, okA := bigend.FindU32(buf, 0, ripemd160InitA)
	_, okC := bigend.FindU32(buf, 0, ripemd160InitC)
	rf.HasRM160 = okA && okC
}
