package analyzer

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/fenugrec/nisrom-go/checksum"
	"github.com/fenugrec/nisrom-go/recover"
	"github.com/fenugrec/nisrom-go/romfile"
	"github.com/fenugrec/nisrom-go/romimage"
	"github.com/fenugrec/nisrom-go/romtype"
)

// Analyze runs the full recovery pipeline over buf: structural recovery
// (LOADER -> FID -> RAMF/ECUREC), the RIPEMD-160 presence check, the
// alt2 checksum anchor, and, once a FidType has been matched, the
// classic whole-image checksum locate.
//
// Analyze always returns a non-nil *romfile.RomFile once image
// construction succeeds (or WithForce lets it past a bounds violation):
// a stage that fails leaves its offsets at romfile.Unknown and the
// pipeline moves on rather than aborting the whole run, except that
// find_loader and find_fid failing skip every later structural stage,
// since there is nothing left to anchor them to.
func Analyze(buf []byte, filename string, catalog []romtype.FidType, opts ...Option) (*romfile.RomFile, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	img, err := romimage.New(filename, buf, cfg.Force)
	if err != nil {
		cfg.diag("input bounds: %v", err)
		if !cfg.Force {
			return nil, &BoundsError{Err: err}
		}
		cfg.diag("continuing past bounds violation: force mode enabled")
	}

	rf := romfile.New(img)

	if err := recover.FindLoader(rf); err != nil {
		cfg.diag("find_loader: %v", errors.Wrapf(err, "analyzing %s", filename))
		recover.DetectRM160(rf)
		return rf, nil
	}
	cfg.diag("find_loader: LOADER%02d at %#06x", rf.LoaderV, rf.PLoader)

	if err := recover.FindFID(rf, catalog); err != nil {
		cfg.diag("find_fid: %v", errors.Wrapf(err, "analyzing %s", filename))
		recover.DetectRM160(rf)
		return rf, nil
	}
	cfg.diag("find_fid: matched %s at %#06x", rf.FidType.Name, rf.PFid)

	if cfg.RAMFMaxDist > 0 && rf.FidType.RAMFMaxDist != cfg.RAMFMaxDist {
		overridden := *rf.FidType
		overridden.RAMFMaxDist = cfg.RAMFMaxDist
		rf.FidType = &overridden
	}

	if err := recover.FindRAMF(rf); err != nil {
		cfg.diag("find_ramf: %v", errors.Wrapf(err, "analyzing %s", filename))
	} else if rf.PRamf.IsKnown() {
		cfg.diag("find_ramf: found at %#06x (drift %+d)", rf.PRamf, rf.RamfOffset)
	} else if rf.PEcurec.IsKnown() {
		cfg.diag("find_ramf: no RAMF record; ECUREC anchor at %#06x", rf.PEcurec)
	}

	recover.DetectRM160(rf)
	if rf.HasRM160 {
		cfg.diag("rm160: RIPEMD-160 constants present in image")
	}

	if err := recover.AnchorAlt2Checksum(rf); err != nil {
		cfg.diag("alt2 checksum: %v", err)
	} else if rf.CksAlt2Good {
		cfg.diag("alt2 checksum: located at cks=%#06x ckx=%#06x", rf.PA2cs, rf.PA2cx)
	}

	if rf.FidType.Features.Has(romtype.StdCks) {
		res, err := checksum.Std(img.Buf)
		if err != nil {
			cfg.diag("checksum_std: %v", err)
		} else {
			if res.Warning != nil {
				cfg.diag("checksum_std: %v", res.Warning)
			}
			rf.PCks = romfile.FromInt(res.PCks)
			rf.PCkx = romfile.FromInt(res.PCkx)
			cfg.diag("checksum_std: cks=%#06x ckx=%#06x", rf.PCks, rf.PCkx)
		}
	}

	return rf, nil
}

// ECUIDFromFilename extracts a 5-character ECU identifier token from an
// image's filename, tokenizing on '-', '_', '.', and ' '. It is a pure
// filename heuristic with no buffer interaction, useful to callers
// building a diagnostic label for a batch of images.
func ECUIDFromFilename(filename string) (string, bool) {
	base := filepath.Base(filename)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	for _, tok := range strings.FieldsFunc(base, func(r rune) bool {
		return strings.ContainsRune("-_. ", r)
	}) {
		if len(tok) == 5 {
			return tok, true
		}
	}
	return "", false
}
