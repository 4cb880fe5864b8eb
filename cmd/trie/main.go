// Command trie inserts words into a prefix tree and runs lookups against it.
//
// With no arguments it inserts "apple" and "app" and runs the default queries.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/exercises/internal/logging"
	"github.com/TrevorS/exercises/trie"
)

var defaultWords = []string{"apple", "app"}

type options struct {
	verbose  bool
	search   []string
	prefixes []string
	list     bool
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		logger = zap.NewNop()
	)
	cmd := &cobra.Command{
		Use:           "trie [word...]",
		Short:         "Insert words into a trie and query it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(opts.verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if len(words) == 0 {
				words = defaultWords
			}
			return run(cmd.OutOrStdout(), logger, words, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringSliceVarP(&opts.search, "search", "s", []string{"apple", "app", "appl"}, "words to look up")
	cmd.Flags().StringSliceVarP(&opts.prefixes, "prefix", "p", []string{"app", "ap"}, "prefixes to test")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "list the stored words under each prefix")
	return cmd
}

func run(w io.Writer, logger *zap.Logger, words []string, opts options) error {
	t := trie.New()
	for _, word := range words {
		if err := t.Insert(word); err != nil {
			return err
		}
		logger.Debug("Inserted word", zap.String("word", word))
	}
	logger.Info("Trie loaded", zap.Int("words", t.Len()))

	for _, s := range opts.search {
		fmt.Fprintf(w, "Search(%q): %v\n", s, t.Search(s))
	}
	for _, p := range opts.prefixes {
		fmt.Fprintf(w, "StartsWith(%q): %v\n", p, t.StartsWith(p))
		if !opts.list {
			continue
		}
		if matches := t.WithPrefix(p); len(matches) > 0 {
			fmt.Fprintf(w, "  %s\n", strings.Join(matches, " "))
		} else {
			fmt.Fprintln(w, "  (none)")
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
