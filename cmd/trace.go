package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeozeozeo/restdiv/divider"
	"github.com/zeozeozeo/restdiv/emulator"
	"golang.org/x/term"
)

// Terminals narrower than this get hex register dumps.
const binaryTraceWidth = 100

var traceFlags struct {
	mode   string
	binary bool
	hex    bool
	cpu    bool
}

var traceCmd = &cobra.Command{
	Use:   "trace [DIVIDEND DIVISOR]",
	Short: "Show every cycle of the divide loop",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runTrace,
}

func init() {
	addModeFlag(traceCmd.Flags(), &traceFlags.mode)
	traceCmd.Flags().BoolVar(&traceFlags.binary, "binary", false, "always print registers in binary")
	traceCmd.Flags().BoolVar(&traceFlags.hex, "hex", false, "always print registers in hex")
	traceCmd.Flags().BoolVar(&traceFlags.cpu, "cpu", false, "also list the R3000 program that performs the divide")
	rootCmd.AddCommand(traceCmd)
}

// wideTerminal reports whether stdout is a terminal wide enough for binary dumps.
func wideTerminal() bool {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false
	}
	width, _, err := term.GetSize(fd)
	return err == nil && width >= binaryTraceWidth
}

func runTrace(cmd *cobra.Command, args []string) error {
	a, b, mode, err := resolveOperands(args, traceFlags.mode)
	if err != nil {
		return err
	}
	steps, res, err := divider.Trace(a, b, mode)
	if err != nil {
		return divideError(err)
	}

	binary := traceFlags.binary || (!traceFlags.hex && wideTerminal())
	out := cmd.OutOrStdout()
	if traceFlags.cpu {
		for _, line := range emulator.Listing(emulator.DivideProgram(a, b, mode)) {
			fmt.Fprintln(out, line)
		}
	}
	fmt.Fprintf(out, "%s / %s (%s)\n", divider.FormatOperand(a, mode), divider.FormatOperand(b, mode), mode)
	for _, step := range steps {
		writeStep(out, step, binary)
	}
	fmt.Fprintf(out, "quotient %s remainder %s\n",
		divider.FormatOperand(res.Quotient, mode), divider.FormatOperand(res.Remainder, mode))
	return nil
}

func writeStep(out io.Writer, step divider.Step, binary bool) {
	if !binary {
		fmt.Fprintln(out, step)
		return
	}
	reg := step.After
	fmt.Fprintf(out, "%2d %-7s %d %032b %032b q=%d\n",
		step.Index, step.Op, oneIf(reg.Ext), reg.P(), reg.A(), step.QuotientBit)
}

func oneIf(v bool) int {
	if v {
		return 1
	}
	return 0
}
