package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/regcheck"
	"github.com/coregx/regcheck/classify"
	"github.com/coregx/regcheck/notation"
	"github.com/coregx/regcheck/universe"
)

func newUniverseCmd(o *rootOptions) *cobra.Command {
	var count bool

	cmd := &cobra.Command{
		Use:   "universe",
		Short: "Print every string that a check examines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			opts, err := checkOptions(cfg, o.logger(cmd))
			if err != nil {
				return err
			}
			limit := cfg.MaxUniverse
			if limit == 0 {
				limit = universe.DefaultMaxSize
			}
			u, err := universe.NewWithLimit(opts.Alphabet, opts.MaxLength, limit)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			if count {
				fmt.Fprintln(w, u.Len())
				return w.Flush()
			}
			i := 0
			for s := range u.All() {
				i++
				fmt.Fprintf(w, "%d\t%s\n", i, notation.Display(s, cfg.Report.EmptyMarker))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&count, "count", false, "print only the number of strings")
	return cmd
}

func newClassifyCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <pattern>",
		Short: "Print the strings a pattern accepts and rejects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			opts, err := checkOptions(cfg, o.logger(cmd))
			if err != nil {
				return err
			}
			opts.CacheSize = 0

			checker, err := regcheck.NewChecker(args[0], opts)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			writePartition(w, checker.Partition(), cfg.Report.EmptyMarker)
			return w.Flush()
		},
	}
}

func writePartition(w *bufio.Writer, p classify.Partition, marker string) {
	for _, s := range p.Accepted {
		fmt.Fprintf(w, "accepted\t%s\n", notation.Display(s, marker))
	}
	for _, s := range p.Rejected {
		fmt.Fprintf(w, "rejected\t%s\n", notation.Display(s, marker))
	}
}
