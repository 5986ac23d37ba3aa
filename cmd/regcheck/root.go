package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
	"golang.org/x/term"

	"github.com/coregx/regcheck"
	"github.com/coregx/regcheck/internal/config"
	"github.com/coregx/regcheck/report"
	"github.com/coregx/regcheck/universe"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	alphabet   string
	length     int
	engine     string
	workers    int
	full       bool
	noTrailing bool
	lang       string
	format     string
	color      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "regcheck",
		Short: "Check regular expressions for equivalence up to a length bound",
		Long: `regcheck grades a candidate regular expression against a reference by
classifying every string up to a length bound over an alphabet, and reports
either "likely correct" or concrete counterexamples.

Patterns use textbook notation: + is alternation and ε is the empty string.
A "likely correct" verdict is evidence for strings up to the bound, not a proof.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&o.alphabet, "alphabet", "a", "", "alphabet symbols, e.g. ab or a,b")
	pf.IntVarP(&o.length, "length", "l", regcheck.DefaultMaxLength, "maximum string length to check")
	pf.StringVar(&o.engine, "engine", "coregex", "regex engine (coregex, stdlib)")
	pf.IntVarP(&o.workers, "workers", "w", 1, "goroutines used per check (0 = one per CPU)")
	pf.BoolVar(&o.full, "full", false, "list every counterexample instead of the first of each kind")
	pf.BoolVar(&o.noTrailing, "no-trailing-newline", false, "do not print a blank line after each report")
	pf.StringVar(&o.lang, "lang", "en", "report language (en, ja)")
	pf.StringVar(&o.format, "format", config.FormatText, "report format (text, json)")
	pf.StringVar(&o.color, "color", config.ColorAuto, "colorize reports (auto, always, never)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newCheckCmd(o),
		newBatchCmd(o),
		newUniverseCmd(o),
		newClassifyCmd(o),
	)
	return cmd
}

// load builds the configuration: defaults, then the config file, then any
// flag set on the command line.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("alphabet") {
		a, err := universe.ParseAlphabet(o.alphabet)
		if err != nil {
			return nil, &config.ConfigError{Field: "alphabet", Message: err.Error()}
		}
		cfg.Alphabet = a.Symbols()
	}
	if flags.Changed("length") {
		cfg.MaxLength = o.length
	}
	if flags.Changed("engine") {
		cfg.Engine = o.engine
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("full") {
		cfg.Report.Full = o.full
	}
	if flags.Changed("no-trailing-newline") {
		cfg.Report.TrailingNewline = !o.noTrailing
	}
	if flags.Changed("lang") {
		cfg.Report.Lang = o.lang
	}
	if flags.Changed("format") {
		cfg.Report.Format = o.format
	}
	if flags.Changed("color") {
		cfg.Report.Color = o.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logger returns a text logger on the command's stderr.
func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("cpu features",
		slog.Bool("avx2", cpu.X86.HasAVX2),
		slog.Bool("sse42", cpu.X86.HasSSE42),
		slog.Bool("asimd", cpu.ARM64.HasASIMD),
	)
	return logger
}

// checkOptions returns check options wired to logger.
func checkOptions(cfg *config.Config, logger *slog.Logger) (regcheck.Options, error) {
	opts, err := cfg.CheckOptions()
	if err != nil {
		return regcheck.Options{}, err
	}
	opts.Logger = logger
	return opts, nil
}

// reporter returns the reporter selected by cfg, writing to w.
func reporter(cfg *config.Config, w io.Writer, logger *slog.Logger) report.Reporter {
	if cfg.Report.Format == config.FormatJSON {
		r := report.NewJSON(w, "")
		logger.Debug("json report", slog.String("run_id", r.RunID()))
		return r
	}
	return report.NewText(w, cfg.ReportOptions(isTerminal(w)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
