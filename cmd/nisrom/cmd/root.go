package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nisrom",
	Short: "Offline analyzer for Nissan ECU ROM images",
	Long: `nisrom recovers the structural layout and checksum placement of
automotive ECU firmware ROM images: the LOADER and FID records, the RAMF
or ECUREC anchor, and the classic and alternate checksum word locations.

It never executes the image. Only the fix-checksum subcommand writes a
file: it corrects an in-memory copy of the image and then saves it.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(fixChecksumCmd)
}
