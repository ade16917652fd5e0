package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeozeozeo/restdiv/divider"
	"github.com/zeozeozeo/restdiv/emulator"
)

var divideFlags struct {
	mode string
	cpu  bool
	trap bool
}

var divideCmd = &cobra.Command{
	Use:   "divide [DIVIDEND DIVISOR]",
	Short: "Divide two 32 bit integers",
	Long: `Divide two 32 bit integers and print the quotient and remainder.
Operands may be decimal, negative (signed mode) or 0x bit patterns.
With --cpu the division runs as DIV/DIVU on the emulated R3000.
Put -- before negative operands: restdiv divide -m signed -- -121 10`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runDivide,
}

func init() {
	addModeFlag(divideCmd.Flags(), &divideFlags.mode)
	divideCmd.Flags().BoolVar(&divideFlags.cpu, "cpu", false, "run the divide as an R3000 DIV/DIVU instruction")
	divideCmd.Flags().BoolVar(&divideFlags.trap, "trap", false, "with --cpu, raise BREAK on divide errors (default from config)")
	rootCmd.AddCommand(divideCmd)
}

func runDivide(cmd *cobra.Command, args []string) error {
	a, b, mode, err := resolveOperands(args, divideFlags.mode)
	if err != nil {
		return err
	}
	l := log.WithFields(map[string]interface{}{"dividend": a, "divisor": b, "mode": mode.String()})

	var res divider.Result
	var condition string
	if divideFlags.cpu {
		trap := resolveTrap(cmd, divideFlags.trap)
		l.Debug("running on the emulated cpu, trap=", trap)
		if _, derr := divider.Divide(a, b, mode); derr != nil && !trap {
			condition = divider.ErrorKind(derr)
			l.Warn(condition, ": HI/LO hold the R3000 result")
		}
		res.Quotient, res.Remainder, err = emulator.RunDivide(a, b, mode, trap)
		if err == nil {
			l.WithFields(map[string]interface{}{
				emulator.GetRegisterName(emulator.REG_V0): fmt.Sprintf("0x%08x", res.Quotient),
				emulator.GetRegisterName(emulator.REG_V1): fmt.Sprintf("0x%08x", res.Remainder),
			}).Debug("cpu halted")
		}
	} else {
		res, err = divider.Divide(a, b, mode)
	}
	if err != nil {
		l.Debug("divide failed: ", err)
		return divideError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "quotient:  %s (0x%08x)\n", divider.FormatOperand(res.Quotient, mode), res.Quotient)
	fmt.Fprintf(out, "remainder: %s (0x%08x)\n", divider.FormatOperand(res.Remainder, mode), res.Remainder)
	if condition != "" {
		fmt.Fprintf(out, "condition: %s (R3000 result)\n", condition)
	}
	return nil
}
