// Package analyzer is the facade over the checksum and recover packages:
// one entry point that runs the full structural recovery pipeline against
// a ROM image and returns the populated romfile.RomFile.
//
// # Basic usage
//
//	buf, err := os.ReadFile("firmware.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rf, err := analyzer.Analyze(buf, "firmware.bin", romtype.ReferenceCatalog)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("FID type: %s, LOADER version: %d\n", rf.FidType.Name, rf.LoaderV)
//
// # Diagnostics
//
// The core never logs on its own; it reports through an optional sink:
//
//	rf, err := analyzer.Analyze(buf, "firmware.bin", catalog,
//	    analyzer.WithDiagSink(func(format string, args ...any) {
//	        log.Printf(format, args...)
//	    }),
//	)
//
// # Bounds
//
// By default, an image outside [romimage.MinSize, romimage.MaxSize] or
// whose length isn't a multiple of 4 fails fast with a *BoundsError.
// WithForce(true) continues past that check; every subsequent read still
// respects its own bounds, so a forced analysis degrades to mostly-Unknown
// offsets rather than panicking.
//
// # Batches
//
// AnalyzeAll fans a slice of images out across a bounded worker pool with
// golang.org/x/sync/errgroup, since analysis of one image never mutates
// another's input.
package analyzer
