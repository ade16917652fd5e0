package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zeozeozeo/restdiv/batch"
)

var batchFlags struct {
	workers int
	quiet   bool
}

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Run and check the operand triples in a YAML or JSON file",
	Long: `Run every case in a batch file and compare against its expectation.
Cases without an expectation are checked against A == Q*B + R and the
remainder sign rule. Example file:

  mode: signed
  cases:
    - {name: plain, dividend: 121, divisor: 10, expect: {quotient: 12, remainder: 1}}
    - {name: zero, dividend: 120, divisor: 0, expect: {error: division-by-zero}}
    - {dividend: "0xffffffff", divisor: 3, mode: unsigned}`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchFlags.workers, "workers", "w", 0, "number of concurrent cases (default from config)")
	batchCmd.Flags().BoolVarP(&batchFlags.quiet, "quiet", "q", false, "only print failing cases")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := batch.ReadFile(args[0])
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if batchFlags.workers > 0 {
		workers = batchFlags.workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	s, err := batch.Run(ctx, log, f, workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, o := range s.Outcomes {
		if o.Failed || !batchFlags.quiet {
			fmt.Fprintln(out, o.Format())
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed (run %s)\n", s.Passed, s.Failed, s.RunID)
	if s.Failed > 0 {
		return errors.Errorf("%d of %d cases failed", s.Failed, len(s.Outcomes))
	}
	return nil
}
