// Command hire prints the total cost of hiring k workers, choosing each
// round the cheapest among the first and last candidates workers left.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/exercises/internal/logging"
	"github.com/TrevorS/exercises/minheap"
)

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		costs      []int
		k          int
		candidates int
	)
	cmd := &cobra.Command{
		Use:           "hire",
		Short:         "Total cost to hire k workers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("Hiring",
				zap.Ints("costs", costs),
				zap.Int("k", k),
				zap.Int("candidates", candidates))

			total, err := minheap.TotalCost(costs, k, candidates)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().IntSliceVar(&costs, "costs", []int{17, 12, 10, 2, 7, 2, 11, 20, 8}, "worker costs")
	cmd.Flags().IntVarP(&k, "k", "k", 3, "number of workers to hire")
	cmd.Flags().IntVarP(&candidates, "candidates", "c", 4, "candidates considered from each end")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
