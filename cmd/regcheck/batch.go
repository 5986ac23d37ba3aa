package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/coregx/regcheck/batch"
)

func newBatchCmd(o *rootOptions) *cobra.Command {
	var (
		watch    bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Grade every candidate in a file against its first line",
		Long: `Grade a file of answers. The first line is the reference pattern; every
following line is one candidate (a blank line is the empty pattern). Reports
are printed in file order. Candidates that do not compile get a failure report
and make the command exit non-zero once the file is done.

Examples:
  regcheck batch -a ab answers.txt
  regcheck batch -a ab --format json answers.txt > results.ndjson
  regcheck batch -a ab --watch answers.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			logger := o.logger(cmd)
			opts, err := checkOptions(cfg, logger)
			if err != nil {
				return err
			}

			runner := &batch.Runner{
				Options:  opts,
				Reporter: reporter(cfg, cmd.OutOrStdout(), logger),
				Logger:   logger,
			}

			if !watch {
				sum, err := runner.RunFile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if sum.Failed > 0 {
					return fmt.Errorf("%d of %d candidates could not be compiled", sum.Failed, sum.Total)
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runner.Watch(ctx, args[0], debounce, func(sum batch.Summary, err error) {
				if err != nil {
					logger.Error("batch run failed", slog.Any("error", err))
					return
				}
				logger.Info("batch run complete",
					slog.Int("consistent", sum.Consistent),
					slog.Int("inconsistent", sum.Inconsistent),
					slog.Int("failed", sum.Failed),
				)
			})
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-run whenever the file changes")
	cmd.Flags().DurationVar(&debounce, "debounce", batch.DefaultDebounce, "wait for writes to settle before re-running")
	return cmd
}
