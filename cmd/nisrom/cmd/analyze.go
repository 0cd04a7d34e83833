package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fenugrec/nisrom-go/analyzer"
	"github.com/fenugrec/nisrom-go/romtype"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Recover structural layout and checksum placement from a ROM image",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("force", false, "continue past an image-size bounds violation")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	filename := args[0]
	force, _ := cmd.Flags().GetBool("force")

	buf, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}

	runID := uuid.New().String()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("run", runID, "file", filename)

	rf, err := analyzer.Analyze(buf, filename, romtype.ReferenceCatalog,
		analyzer.WithForce(force),
		analyzer.WithDiagSink(func(format string, a ...any) {
			logger.Info(fmt.Sprintf(format, a...))
		}),
	)
	if err != nil {
		return err
	}

	if ecuID, ok := analyzer.ECUIDFromFilename(filename); ok {
		logger.Info("ecu id guess", "ecu_id", ecuID)
	}

	fmt.Printf("loader version: %d\n", rf.LoaderV)
	if rf.FidType != nil {
		fmt.Printf("fid type:       %s\n", rf.FidType.Name)
	}
	fmt.Printf("p_loader:       %#06x\n", rf.PLoader)
	fmt.Printf("p_fid:          %#06x\n", rf.PFid)
	fmt.Printf("p_ramf:         %#06x\n", rf.PRamf)
	fmt.Printf("p_ecurec:       %#06x\n", rf.PEcurec)
	fmt.Printf("p_cks / p_ckx:  %#06x / %#06x\n", rf.PCks, rf.PCkx)
	fmt.Printf("p_acs / p_acx:  %#06x / %#06x\n", rf.PAcs, rf.PAcx)
	fmt.Printf("rm160 present:  %v\n", rf.HasRM160)
	return nil
}
