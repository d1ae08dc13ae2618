package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbuffer"
)

var (
	// Version is the version of the binary.
	Version string

	// Commit is the commit hash of the binary.
	Commit string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitbuf",
	Short: "Inspect and build bit-packed data",
	Long: `bitbuf packs values of arbitrary bit width into a bit-addressable buffer
and unpacks existing bit-packed data at any granularity, independent of how
the bits were originally grouped.`,
	SilenceUsage: true,
}

func Execute() {
	rootCmd.Version = fmt.Sprintf("%s+%s", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("order", "be", "bit order: \"be\" stores a value's most significant bits first, \"le\" its least significant")
	flags.String("logLevel", zapcore.InfoLevel.String(), "log level (debug, info, warn, error, dpanic, panic, fatal)")

	// Flags take precedence over BITBUF_* environment variables.
	viper.SetEnvPrefix("BITBUF")
	viper.AutomaticEnv()
	bindFlag(flags, "order")
	bindFlag(flags, "logLevel")
}

func bindFlag(flags *pflag.FlagSet, name string) {
	if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
		log.Fatalf("failed to bind `%s` flag: %v", name, err)
	}
}

// newBuffer returns an empty buffer in the configured bit order.
func newBuffer() (*bitbuffer.Buffer, error) {
	switch order := viper.GetString("order"); order {
	case "be":
		return bitbuffer.New(), nil
	case "le":
		return bitbuffer.NewLittleEndian(), nil
	default:
		return nil, fmt.Errorf("invalid `order`; expected: \"be\" or \"le\", given: %q", order)
	}
}

func newLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.Set(viper.GetString("logLevel")); err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
