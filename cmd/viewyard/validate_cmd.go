package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/doctor"
	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/styles"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Check the basic setup",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Run the fast validation checks: config file, directory layout and
required tools. Use validate-comprehensive for the full set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &doctor.Session{Env: envv}
			report := doctor.Run(cmd.Context(), s, doctor.Basic())
			printReport(cmd, report)
			if !report.Passed() {
				return fmt.Errorf("%d check(s) failed", len(report.Failures()))
			}
			return nil
		},
	}

	return cmd
}

func newValidateComprehensiveCmd() *cobra.Command {
	var autoFix bool

	cmd := &cobra.Command{
		Use:     "validate-comprehensive",
		Short:   "Run every validation check",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Run the full validation suite: config shape, directory layout,
justfiles, repo lists, view context descriptors, git identity,
installed tools and repository reachability.

With --auto-fix, every repairable problem is fixed and its check re-run
to confirm the repair took.

Examples:
  viewyard validate-comprehensive
  viewyard validate-comprehensive --auto-fix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			s := &doctor.Session{Env: envv}

			var report *doctor.Report
			if autoFix {
				report = doctor.RunAndFix(ctx, s, doctor.Comprehensive())
			} else {
				report = doctor.Run(ctx, s, doctor.Comprehensive())
			}

			printReport(cmd, report)
			for _, name := range report.Fixed {
				out.Printf("%s fixed: %s\n", styles.SuccessStyle.Render(styles.Check), name)
			}

			failures := report.Failures()
			if len(failures) == 0 {
				out.Printf("\n%s\n", styles.SuccessStyle.Render("All checks passed"))
				return nil
			}
			if !autoFix && report.Fixable() > 0 {
				out.Printf("\n%d problem(s) can be fixed automatically; re-run with --auto-fix\n",
					report.Fixable())
			}
			return fmt.Errorf("%d check(s) failed", len(failures))
		},
	}

	cmd.Flags().BoolVar(&autoFix, "auto-fix", false, "Repair fixable problems and re-verify")

	return cmd
}

func printReport(cmd *cobra.Command, report *doctor.Report) {
	out := output.FromContext(cmd.Context())
	lastCheck := ""
	for _, r := range report.Results {
		if r.Check != lastCheck {
			out.Printf("%s\n", styles.Bold.Render(r.Check))
			lastCheck = r.Check
		}
		if r.Passed {
			out.Printf("  %s %s\n", styles.SuccessStyle.Render(styles.Check), r.Message)
			continue
		}
		out.Printf("  %s %s\n", styles.ErrorStyle.Render(styles.Cross), r.Message)
		if r.FixDescription != "" {
			out.Printf("    %s %s\n", styles.Arrow, styles.MutedStyle.Render(r.FixDescription))
		}
		if r.FixError != nil {
			out.Printf("    %s %s\n", styles.Arrow,
				styles.ErrorStyle.Render(fmt.Sprintf("fix failed: %v", r.FixError)))
		}
	}
}
