package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zeozeozeo/restdiv/script"
)

var scriptFlags struct {
	mode string
}

var scriptCmd = &cobra.Command{
	Use:   "script FILE",
	Short: "Run a Lua script that drives the divider",
	Long: `Run a Lua script. The globals divide(a, b [, mode]), verify(a, b [, mode])
and trace(a, b [, mode]) call the divider, SIGNED and UNSIGNED name the modes.

  for b = 1, 10 do
    print(b, divide(-121, b, SIGNED))
  end`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	addModeFlag(scriptCmd.Flags(), &scriptFlags.mode)
	rootCmd.AddCommand(scriptCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	mode, err := resolveMode(scriptFlags.mode)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("running script ", args[0], " in ", mode, " mode")
	return script.NewRunner(mode, cmd.OutOrStdout()).RunFile(ctx, args[0])
}
