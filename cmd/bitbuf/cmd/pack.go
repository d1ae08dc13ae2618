package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuffer"
	"github.com/spacemeshos/bitbuffer/shared"
)

// packCmd represents the pack command.
var packCmd = &cobra.Command{
	Use:   "pack value[:width] [value[:width] ...]",
	Short: "Pack values into a bit stream",
	Long: `Each argument is a non-negative decimal or 0x-prefixed value with an
optional bit width (1-64). Without a width, the minimal number of bits
required to represent the value is used. The packed stream is printed as hex
on stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		buf, err := newBuffer()
		if err != nil {
			return err
		}

		for _, arg := range args {
			val, width, err := parseValueArg(arg)
			if err != nil {
				return err
			}
			if err := bitbuffer.WriteBits(buf, val, width); err != nil {
				return err
			}
			logger.Debug("packed value",
				zap.Uint64("value", val),
				zap.Int("bits", width),
				zap.Int("cursor", buf.WriteCursor()),
			)
		}

		logger.Info("packed stream",
			zap.Int("values", len(args)),
			zap.Int("bits", buf.Count()),
			zap.Int("elements", len(buf.Data())),
		)
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Data()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func parseValueArg(arg string) (uint64, int, error) {
	valStr, widthStr, hasWidth := strings.Cut(arg, ":")
	val, err := strconv.ParseUint(valStr, 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", valStr, err)
	}

	width := shared.NumBits(val)
	if hasWidth {
		width, err = strconv.Atoi(widthStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid width %q: %w", widthStr, err)
		}
	}
	return val, width, nil
}
