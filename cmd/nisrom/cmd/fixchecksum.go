package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fenugrec/nisrom-go/checksum"
)

var fixChecksumCmd = &cobra.Command{
	Use:   "fix-checksum <file>",
	Short: "Solve and write three correction words so the image's checksum relocates to the given CKS/CKX",
	Long: `fix-checksum solves the three-word correction (two ordinary words
plus a mangler) that checksum_fix needs to make the image's whole-buffer
sum and xor land on the given CKS/CKX targets, then writes the result.

All five offsets are word-aligned byte offsets into the image, hex or
decimal (e.g. --cks 0x7ffc or --cks 32764).`,
	Args: cobra.ExactArgs(1),
	RunE: runFixChecksum,
}

func init() {
	fixChecksumCmd.Flags().String("cks", "", "offset of the CKS word")
	fixChecksumCmd.Flags().String("ckx", "", "offset of the CKX word")
	fixChecksumCmd.Flags().String("a", "", "offset of correction word A")
	fixChecksumCmd.Flags().String("b", "", "offset of correction word B")
	fixChecksumCmd.Flags().String("c", "", "offset of the mangler correction word C")
	fixChecksumCmd.Flags().String("out", "", "output file (defaults to overwriting the input)")
	for _, name := range []string{"cks", "ckx", "a", "b", "c"} {
		_ = fixChecksumCmd.MarkFlagRequired(name)
	}
}

func runFixChecksum(cmd *cobra.Command, args []string) error {
	filename := args[0]

	offsets := make(map[string]int, 5)
	for _, name := range []string{"cks", "ckx", "a", "b", "c"} {
		raw, _ := cmd.Flags().GetString(name)
		v, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "--%s", name)
		}
		offsets[name] = int(v)
	}

	buf, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}

	if err := checksum.Fix(buf, offsets["cks"], offsets["ckx"], offsets["a"], offsets["b"], offsets["c"]); err != nil {
		return errors.Wrap(err, "checksum_fix")
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filename
	}
	if err := os.WriteFile(out, buf, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}

	fmt.Printf("wrote corrected image to %s\n", out)
	return nil
}
