package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/lemonade/internal/lemonade"
)

var (
	simTaps int
	simSeed uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the session after each of N taps",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simTaps < 0 {
			return fmt.Errorf("--taps must be >= 0, got %d", simTaps)
		}

		var roll lemonade.Roller
		if cmd.Flags().Changed("seed") {
			roll = lemonade.SeededThreshold(simSeed)
		}
		s := lemonade.NewSession(roll)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d %s\n", 0, s.Snapshot())
		for i := 1; i <= simTaps; i++ {
			s.Advance()
			fmt.Fprintf(out, "%d %s\n", i, s.Snapshot())
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simTaps, "taps", 10, "number of taps to apply")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "seed for the squeeze threshold (random when unset)")
	rootCmd.AddCommand(simulateCmd)
}
