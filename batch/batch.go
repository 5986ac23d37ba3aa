package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coregx/regcheck"
	"github.com/coregx/regcheck/report"
)

// Summary counts the outcomes of a batch run.
type Summary struct {
	Total        int
	Consistent   int
	Inconsistent int
	Failed       int
}

// Runner grades batch sources.
type Runner struct {
	// Options configures every check of the run.
	Options regcheck.Options

	// Reporter receives one report per candidate, in file order.
	Reporter report.Reporter

	// Logger receives progress output. Nil means slog.Default().
	Logger *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// RunFile reads the batch file at path and runs it.
func (r *Runner) RunFile(ctx context.Context, path string) (Summary, error) {
	src, err := ReadFile(path)
	if err != nil {
		return Summary{}, err
	}
	return r.Run(ctx, src)
}

// Run grades every candidate of src against its reference.
//
// The reference universe and partition are built once. A candidate that
// does not compile gets a failure report and the run continues; a reference
// that does not compile, a reporter error or a cancelled ctx stops the run.
func (r *Runner) Run(ctx context.Context, src *Source) (Summary, error) {
	opts := r.Options
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	checker, err := regcheck.NewChecker(src.Reference, opts)
	if err != nil {
		return Summary{}, fmt.Errorf("%s:1: %w", src.Path, err)
	}

	log := r.logger().With(slog.String("file", src.Path))
	log.Info("batch started",
		slog.String("reference", src.Reference),
		slog.Int("candidates", len(src.Candidates)),
		slog.Int("universe", checker.Universe().Len()),
	)

	var sum Summary
	for _, c := range src.Candidates {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Total++

		v, err := checker.Check(c.Pattern)
		if err != nil {
			if _, ok := regcheck.IsCompilationError(err); !ok {
				return sum, fmt.Errorf("%s:%d: %w", src.Path, c.Line, err)
			}
			sum.Failed++
			log.Debug("candidate failed to compile", slog.Int("line", c.Line), slog.Any("error", err))
			if err := r.Reporter.Failure(c.Pattern, err); err != nil {
				return sum, fmt.Errorf("writing report: %w", err)
			}
			continue
		}

		if v.Consistent() {
			sum.Consistent++
		} else {
			sum.Inconsistent++
		}
		if err := r.Reporter.Verdict(v); err != nil {
			return sum, fmt.Errorf("writing report: %w", err)
		}
	}

	log.Info("batch finished",
		slog.Int("total", sum.Total),
		slog.Int("consistent", sum.Consistent),
		slog.Int("inconsistent", sum.Inconsistent),
		slog.Int("failed", sum.Failed),
	)
	return sum, nil
}
