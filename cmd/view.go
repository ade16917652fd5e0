package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeozeozeo/restdiv/view"
)

var viewFlags struct {
	mode string
}

var viewCmd = &cobra.Command{
	Use:   "view [DIVIDEND DIVISOR]",
	Short: "Step through the divide in a window",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, mode, err := resolveOperands(args, viewFlags.mode)
		if err != nil {
			return err
		}
		v, err := view.NewViewer(a, b, mode)
		if err != nil {
			return err
		}
		return view.Run(v)
	},
}

func init() {
	addModeFlag(viewCmd.Flags(), &viewFlags.mode)
	rootCmd.AddCommand(viewCmd)
}
