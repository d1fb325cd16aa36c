package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/styles"
	"github.com/dheater/viewyard/internal/view"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status [view]",
		Short:   "Show the status of every repo in a view",
		GroupID: GroupWorkspace,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show branch, dirty state and unpushed commits for each repository in
a view. Without an argument the enclosing view is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path, err := viewPathFromArgs(cfg, args)
			if err != nil {
				return err
			}

			name := filepath.Base(path)
			vc, _, err := findView(cfg, name)
			if err != nil {
				return err
			}
			info, err := view.Info(ctx, vc, path, name)
			if err != nil {
				return err
			}

			out.Printf("%s on branch %s\n", styles.Bold.Render(info.Name), info.Branch)
			for _, r := range info.Repos {
				if !r.Present {
					out.Printf("  %s %s (not checked out)\n", styles.MutedStyle.Render(styles.Cross), r.Name)
					continue
				}
				state := "clean"
				if r.Dirty {
					state = styles.WarningStyle.Render("dirty")
				}
				if r.Ahead > 0 {
					state += fmt.Sprintf(", %d unpushed", r.Ahead)
				}
				out.Printf("  %s [%s] %s\n", r.Name, r.Branch, state)
			}
			return nil
		},
	}

	return cmd
}

func newRebaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rebase [view]",
		Short:   "Rebase every repo in a view onto its upstream",
		GroupID: GroupWorkspace,
		Args:    cobra.MaximumNArgs(1),
		Long: `Fetch and rebase each repository in a view onto its upstream default
branch. Per-repo failures (conflicts, missing upstream) are reported
and do not stop the remaining repositories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspaceOp(cmd, args, "Rebased", view.Rebase)
		},
	}

	return cmd
}

func newPushAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "push-all [view]",
		Short:   "Push the view branch of every repo",
		GroupID: GroupWorkspace,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspaceOp(cmd, args, "Pushed", view.PushAll)
		},
	}

	return cmd
}

func newCommitAllCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:     "commit-all [view]",
		Short:   "Commit outstanding changes in every repo",
		GroupID: GroupWorkspace,
		Args:    cobra.MaximumNArgs(1),
		Long: `Stage and commit everything in each dirty repository of a view with a
shared message. Clean repositories are skipped.

Examples:
  viewyard commit-all -m "wip: checkpoint before rebase"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return fmt.Errorf("a commit message is required (-m)")
			}
			op := func(ctx context.Context, path string) ([]string, []view.RepoFailure, error) {
				return view.CommitAll(ctx, path, message)
			}
			return runWorkspaceOp(cmd, args, "Committed", op)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}

// runWorkspaceOp resolves the target view and applies a per-repo
// operation, printing successes and failures uniformly. Per-repo
// failures do not change the exit code.
func runWorkspaceOp(cmd *cobra.Command, args []string, verb string,
	op func(ctx context.Context, path string) ([]string, []view.RepoFailure, error)) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := viewPathFromArgs(cfg, args)
	if err != nil {
		return err
	}

	done, failed, err := op(ctx, path)
	if err != nil {
		return err
	}
	for _, r := range done {
		out.Printf("  %s %s %s\n", styles.SuccessStyle.Render(styles.Check), verb, r)
	}
	reportFailures(out.Printf, failed)
	if len(done) == 0 && len(failed) == 0 {
		out.Println("Nothing to do")
	}
	return nil
}
