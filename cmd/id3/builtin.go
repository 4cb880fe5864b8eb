package main

import (
	"github.com/spf13/cobra"

	"github.com/TrevorS/exercises/id3"
)

func newBuiltinCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "builtin",
		Short: "Train on the bundled weather dataset",
		Long: `Train on the 14-sample weather dataset (weather, temperature,
humidity, wind) and classify its six test cases.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTree, dot := out.resolve(cmd, a)
			return run(cmd.OutOrStdout(), a.logger, job{
				train:     id3.WeatherTraining(),
				test:      id3.WeatherTest(),
				cfg:       id3.Config{Schema: id3.WeatherSchema()},
				printTree: printTree,
				dot:       dot,
			})
		},
	}
	out.register(cmd)
	return cmd
}
