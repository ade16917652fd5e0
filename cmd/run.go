package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zeozeozeo/restdiv/emulator"
)

var runFlags struct {
	trap   bool
	steps  int
	regs   []string
	disasm bool
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a raw R3000 program image",
	Long: `Load FILE as little endian R3000 words at 0xbfc00000 and run it until
the PC leaves the image or an exception is raised. Prints the selected
registers, HI, LO and the cycle count.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgram,
}

func init() {
	runCmd.Flags().BoolVar(&runFlags.trap, "trap", false, "raise BREAK on divide errors (default from config)")
	runCmd.Flags().IntVar(&runFlags.steps, "steps", 4096, "maximum number of instructions to execute")
	runCmd.Flags().StringSliceVar(&runFlags.regs, "reg", []string{"v0", "v1"}, "registers to print, by name or number")
	runCmd.Flags().BoolVar(&runFlags.disasm, "disasm", false, "print the program listing before running it")
	rootCmd.AddCommand(runCmd)
}

func runProgram(cmd *cobra.Command, args []string) error {
	regs := make([]uint32, len(runFlags.regs))
	for i, name := range runFlags.regs {
		idx, ok := emulator.GetRegisterIndexByName(name)
		if !ok {
			return errors.Errorf("unknown register %q", name)
		}
		regs[i] = idx
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open program")
	}
	defer f.Close()
	rom, err := emulator.LoadROM(f)
	if err != nil {
		return errors.Wrapf(err, "load %s", args[0])
	}

	out := cmd.OutOrStdout()
	if runFlags.disasm {
		for _, line := range rom.Listing() {
			fmt.Fprintln(out, line)
		}
	}

	cpu := emulator.NewCPU(emulator.NewInterconnect(rom))
	cpu.TrapDivideErrors = resolveTrap(cmd, runFlags.trap)
	log.WithField("file", args[0]).Debug("running ", rom.Size()/4, " words, trap=", cpu.TrapDivideErrors)
	runErr := cpu.Run(runFlags.steps)

	for _, idx := range regs {
		fmt.Fprintf(out, "%-4s 0x%08x\n", emulator.GetRegisterName(idx), cpu.Reg(idx))
	}
	fmt.Fprintf(out, "hi   0x%08x\nlo   0x%08x\ncycles %d\n", cpu.Hi, cpu.Lo, cpu.Cycles)

	var exc *emulator.ExceptionError
	if errors.As(runErr, &exc) {
		fmt.Fprintf(out, "exception: %s (cause 0x%x) epc 0x%08x\n",
			cpu.Cop0.ExceptionCode(), uint32(cpu.Cop0.ExceptionCode()), cpu.Cop0.Epc)
	}
	return runErr
}
