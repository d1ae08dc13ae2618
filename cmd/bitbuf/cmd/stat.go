package cmd

import (
	"encoding/hex"
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuffer"
)

var (
	statHex     string
	statVerbose bool
)

// statCmd represents the stat command.
var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Report size and occupancy of a hex-encoded bit stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(statHex)
		if err != nil {
			return fmt.Errorf("invalid `hex`: %w", err)
		}

		buf, err := newBuffer()
		if err != nil {
			return err
		}
		if err := bitbuffer.WriteValues(buf, data); err != nil {
			return err
		}

		capacity := len(buf.Data()) * bitbuffer.ElementWidth
		occupancy := 100.0
		if capacity > 0 {
			occupancy = float64(buf.Count()) / float64(capacity) * 100
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "bits:      %d\n", buf.Count())
		fmt.Fprintf(out, "elements:  %d\n", len(buf.Data()))
		fmt.Fprintf(out, "size:      %s\n", bytefmt.ByteSize(uint64(len(buf.Data()))))
		fmt.Fprintf(out, "occupancy: %.1f%%\n", occupancy)

		if statVerbose {
			spew.Fdump(out, buf.Data())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statCmd)

	statCmd.Flags().StringVar(&statHex, "hex", "", "hex-encoded input data (required)")
	statCmd.Flags().BoolVar(&statVerbose, "verbose", false, "dump the raw element sequence")
	_ = statCmd.MarkFlagRequired("hex")
}
