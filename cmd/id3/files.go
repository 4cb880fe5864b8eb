package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/exercises/id3"
)

func newFilesCmd(a *app) *cobra.Command {
	var (
		out         outputFlags
		train, test string
	)
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Train on a data file and classify another",
		Long: `Train on a whitespace-separated file with one sample per line
(feature values >= 1 followed by the label: 1 = No, 2 = Yes) and classify
every line of the test file, which holds feature values only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("train") {
				cfg.Train = train
			}
			if cmd.Flags().Changed("test") {
				cfg.Test = test
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			trainSet, err := id3.ReadFile(cfg.Train, true)
			if err != nil {
				return err
			}
			if trainSet.Len() == 0 {
				return errors.Wrap(id3.ErrEmptyDataset, cfg.Train)
			}
			a.logger.Info("Training data loaded",
				zap.String("path", cfg.Train),
				zap.Int("samples", trainSet.Len()))

			testSet, err := id3.ReadFile(cfg.Test, false)
			if err != nil {
				return err
			}
			a.logger.Info("Test data loaded",
				zap.String("path", cfg.Test),
				zap.Int("samples", testSet.Len()))

			if err := id3.MatchFeatures(trainSet, testSet); err != nil {
				return err
			}

			printTree, dot := out.resolve(cmd, a)
			return run(cmd.OutOrStdout(), a.logger, job{
				train:     trainSet,
				test:      testSet,
				cfg:       id3.DefaultConfig(),
				printTree: printTree,
				dot:       dot,
			})
		},
	}
	cmd.Flags().StringVar(&train, "train", "", "training data file (default from config: train.txt)")
	cmd.Flags().StringVar(&test, "test", "", "test data file (default from config: test.txt)")
	out.register(cmd)
	return cmd
}
