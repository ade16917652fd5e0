package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zeozeozeo/restdiv/divider"
)

// addModeFlag registers --mode on a command's flag set.
func addModeFlag(flags *pflag.FlagSet, mode *string) {
	flags.StringVarP(mode, "mode", "m", "", "division mode: signed or unsigned (default from config)")
}

// resolveMode returns the --mode value, falling back to the config.
func resolveMode(flagMode string) (divider.Mode, error) {
	if flagMode != "" {
		return divider.ParseMode(flagMode)
	}
	return cfg.ParsedMode()
}

// resolveOperands takes "A B" from args or the configured operand pair.
func resolveOperands(args []string, flagMode string) (dividend, divisor uint32, mode divider.Mode, err error) {
	mode, err = resolveMode(flagMode)
	if err != nil {
		return 0, 0, mode, err
	}
	switch len(args) {
	case 0:
		dividend, err = divider.ParseOperand(cfg.Dividend, mode)
		if err != nil {
			return 0, 0, mode, errors.Wrap(err, "configured dividend")
		}
		divisor, err = divider.ParseOperand(cfg.Divisor, mode)
		return dividend, divisor, mode, errors.Wrap(err, "configured divisor")
	case 2:
		if dividend, err = divider.ParseOperand(args[0], mode); err != nil {
			return 0, 0, mode, errors.Wrap(err, "dividend")
		}
		divisor, err = divider.ParseOperand(args[1], mode)
		return dividend, divisor, mode, errors.Wrap(err, "divisor")
	default:
		return 0, 0, mode, errors.Errorf("expected DIVIDEND DIVISOR or no arguments, got %d arguments", len(args))
	}
}

// resolveTrap returns --trap if it was given, the config value otherwise.
func resolveTrap(cmd *cobra.Command, flagTrap bool) bool {
	if cmd.Flags().Changed("trap") {
		return flagTrap
	}
	return cfg.TrapDivideErrors
}

// divideError prefixes divider errors with their kind.
func divideError(err error) error {
	if kind := divider.ErrorKind(err); kind != "" {
		return errors.Errorf("%s: %v", kind, err)
	}
	return err
}
