package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zeozeozeo/restdiv/config"
	"github.com/zeozeozeo/restdiv/logger"
)

const serviceName = "restdiv"

var (
	// Default values may be set at compile time.
	version   = "0.1.0"
	buildDate = "2026-10-14T00:00+0000"

	cfgFile   string
	logLevel  string
	logFormat string
	cfg       *config.Config
	log       *logger.LoggerImpl
)

var rootCmd = &cobra.Command{
	Use:   "restdiv",
	Short: "Bit-exact emulation of a 32 bit hardware integer divider",
	Long: `restdiv emulates the integer divide unit of a 32 bit CPU. Quotient and
remainder are built one bit per cycle on a combined 64 bit P:A register
pair, with the sign fix-up, zero divisor and signed overflow handling a
hardware divider has.

Operands and mode default to the values in ~/.restdiv/config.yaml
(or RESTDIV_* environment variables).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.restdiv/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

// setup loads the config and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(cfgFile); err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if log, err = logger.NewLogger(serviceName, cfg.LogLevel); err != nil {
		return err
	}
	switch logFormat {
	case "text":
	case "json":
		log.SetJSON()
	default:
		return errors.Errorf("unknown log format %q", logFormat)
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.Debug("loaded config: mode=", cfg.Mode, " dividend=", cfg.Dividend, " divisor=", cfg.Divisor)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Execute() prints the error.
		os.Exit(1)
	}
}
