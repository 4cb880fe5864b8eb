package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/exercises/id3"
)

// outputFlags are the flags shared by both subcommands. They override the
// configuration file only when set on the command line.
type outputFlags struct {
	printTree bool
	dot       string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.printTree, "print-tree", "p", false, "print the learned tree")
	cmd.Flags().StringVar(&o.dot, "dot", "", `write the tree in Graphviz DOT format to this file ("" disables)`)
}

// resolve merges the flags over the loaded configuration.
func (o *outputFlags) resolve(cmd *cobra.Command, a *app) (printTree bool, dot string) {
	printTree, dot = a.cfg.PrintTree, a.cfg.DOT
	if cmd.Flags().Changed("print-tree") {
		printTree = o.printTree
	}
	if cmd.Flags().Changed("dot") {
		dot = o.dot
	}
	return printTree, dot
}

// job is one train-and-classify run.
type job struct {
	train     *id3.Dataset
	test      *id3.Dataset
	cfg       id3.Config
	printTree bool
	dot       string
}

func run(w io.Writer, logger *zap.Logger, j job) error {
	logger.Debug("Building decision tree",
		zap.Int("samples", j.train.Len()),
		zap.Int("features", j.train.FeatureCount))

	tree, err := id3.Build(j.train, j.cfg)
	if err != nil {
		return err
	}
	logger.Info("Decision tree built",
		zap.Int("samples", j.train.Len()),
		zap.Int("depth", tree.Depth()),
		zap.Float64("root_gain", tree.Root.Gain))

	if j.printTree {
		fmt.Fprintln(w, "Decision Tree:")
		if err := tree.Print(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Test Data Classification:")
	writeReport(w, tree, j.test)

	if j.dot != "" {
		if err := tree.WriteDOTFile(j.dot); err != nil {
			return err
		}
		logger.Info("Decision tree exported", zap.String("path", j.dot))
		fmt.Fprintf(w, "\nDecision tree written to %s\n", j.dot)
	}
	return nil
}

// writeReport renders one table row per test sample.
func writeReport(w io.Writer, tree *id3.Tree, test *id3.Dataset) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Test case", "Features", "Result"})
	for i, s := range test.Samples {
		table.Append([]string{
			strconv.Itoa(i + 1),
			formatFeatures(s.Features),
			tree.Classify(s.Features).String(),
		})
	}
	table.Render()
}

func formatFeatures(features []int) string {
	parts := make([]string, len(features))
	for i, v := range features {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
