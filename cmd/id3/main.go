// Command id3 trains an ID3 decision tree and classifies test samples, either
// on the built-in weather dataset or on whitespace-separated data files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/exercises/internal/config"
	"github.com/TrevorS/exercises/internal/logging"
)

// app carries state shared by the subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "id3",
		Short: "Train an ID3 decision tree and classify samples",
		Long: `id3 learns a decision tree over categorical features by repeatedly
splitting on the feature with the highest information gain.

Use "builtin" for the bundled weather example or "files" to train on your
own data. Both can print the tree and export it in Graphviz DOT format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("Configuration loaded",
				zap.String("path", a.configPath),
				zap.String("train", cfg.Train),
				zap.String("test", cfg.Test),
				zap.String("dot", cfg.DOT))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML or TOML configuration file")

	root.AddCommand(newBuiltinCmd(a), newFilesCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
