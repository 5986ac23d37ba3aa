package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/regcheck"
	"github.com/coregx/regcheck/matcher"
)

func newCheckCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <reference> <candidate>...",
		Short: "Check candidate patterns against a reference",
		Long: `Check one or more candidate patterns against a reference pattern.

Examples:
  regcheck check -a ab "a+b" "a"
  regcheck check -a ab -l 6 --full "(a+b)*abb" "a*b*abb" "(a+b)*bb"
  regcheck check -a 01 --lang ja "(0+1)*1" "0*1(0+1)*"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, o, args[0], args[1:])
		},
	}
}

func runCheck(cmd *cobra.Command, o *rootOptions, reference string, candidates []string) error {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}
	logger := o.logger(cmd)
	opts, err := checkOptions(cfg, logger)
	if err != nil {
		return err
	}
	rep := reporter(cfg, cmd.OutOrStdout(), logger)

	checker, err := regcheck.NewChecker(reference, opts)
	if err != nil {
		if ce, ok := regcheck.IsCompilationError(err); ok {
			if rerr := rep.Failure(ce.Pattern, err); rerr != nil {
				return rerr
			}
		}
		return err
	}

	failed := 0
	for _, candidate := range candidates {
		v, err := checker.Check(candidate)
		if err != nil {
			ce, ok := regcheck.IsCompilationError(err)
			if !ok || ce.Role != matcher.RoleCandidate {
				return err
			}
			failed++
			if err := rep.Failure(candidate, err); err != nil {
				return err
			}
			continue
		}
		if err := rep.Verdict(v); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d candidates could not be compiled", failed, len(candidates))
	}
	return nil
}
