package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuffer"
)

var (
	unpackHex   string
	unpackWidth int
	unpackTotal int
)

// unpackCmd represents the unpack command.
var unpackCmd = &cobra.Command{
	Use:   "unpack",
	Short: "Unpack a hex-encoded bit stream into fixed-width chunks",
	Long: `The stream is read in chunks of the given width; the final chunk holds
whatever remains, which may be shorter. Values are reported right-aligned
regardless of the bit order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(unpackHex)
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

		opts := []bitbuffer.Option{bitbuffer.WithValueBits(unpackWidth)}
		if unpackTotal >= 0 {
			opts = append(opts, bitbuffer.WithTotalBits(unpackTotal))
		}
		chunks, err := bitbuffer.ReadValues[uint64](buf, opts...)
		if err != nil {
			return err
		}

		rows := make([][]string, 0)
		offset := 0
		for val, numBits := range chunks {
			if buf.BigEndian() {
				// Undo the left alignment for display.
				val >>= 64 - uint(numBits)
			}
			rows = append(rows, []string{
				strconv.Itoa(offset),
				strconv.Itoa(numBits),
				fmt.Sprintf("%#x", val),
				strconv.FormatUint(val, 10),
			})
			offset += numBits
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"offset", "bits", "hex", "dec"})
		table.SetBorder(true)
		table.AppendBulk(rows)
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)

	unpackCmd.Flags().StringVar(&unpackHex, "hex", "", "hex-encoded input data (required)")
	unpackCmd.Flags().IntVar(&unpackWidth, "width", 8, "bits per chunk (1-64)")
	unpackCmd.Flags().IntVar(&unpackTotal, "total", -1, "total bits to unpack (default: all)")
	_ = unpackCmd.MarkFlagRequired("hex")
}
