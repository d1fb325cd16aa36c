package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/search"
	"github.com/dheater/viewyard/internal/ui/prompt"
	"github.com/dheater/viewyard/internal/ui/styles"
	"github.com/dheater/viewyard/internal/view"
)

func newCreateCmd() *cobra.Command {
	var viewsetName string
	var repoNames []string

	cmd := &cobra.Command{
		Use:     "create <view>",
		Short:   "Create a new view",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Create a new view: a git repository on a branch named after the view,
with the viewset's repositories attached as submodules on that same branch.

Examples:
  viewyard create fix-auth                  # Pick repos interactively
  viewyard create fix-auth --viewset work   # Target a specific viewset
  viewyard create fix-auth --repos api,web  # Skip the picker`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			name := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			vc, err := resolveViewset(cfg, viewsetName)
			if err != nil {
				return err
			}

			repos, err := selectRepos(vc.Viewset, repoNames)
			if err != nil {
				return err
			}

			report, err := view.Create(ctx, vc, name, repos)
			if err != nil {
				return err
			}

			if report.Warning != "" {
				out.Printf("%s %s\n", styles.WarningStyle.Render("!"), report.Warning)
			}
			for _, r := range report.Added {
				out.Printf("  %s %s\n", styles.SuccessStyle.Render(styles.Check), r)
			}
			reportFailures(out.Printf, report.Failed)
			out.Printf("\nView %s created on branch %s\n", styles.Bold.Render(name), report.Branch)
			out.Printf("  cd %s\n", report.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&viewsetName, "viewset", "", "Viewset to create the view in")
	cmd.Flags().StringSliceVar(&repoNames, "repos", nil, "Repos to include (default: pick interactively)")

	return cmd
}

// selectRepos decides which of the viewset's repositories go into the
// view: an explicit --repos list, an interactive picker on a TTY, or
// everything.
func selectRepos(vs *config.Viewset, explicit []string) ([]config.Repository, error) {
	if len(explicit) > 0 {
		var repos []config.Repository
		for _, name := range explicit {
			r, ok := search.FindRepo(vs.Repos, name, search.NameIs)
			if !ok {
				return nil, fmt.Errorf("repo %q is not in viewset %q", name, vs.Name)
			}
			repos = append(repos, r)
		}
		return repos, nil
	}

	if !prompt.Interactive() {
		return vs.Repos, nil
	}

	names := make([]string, len(vs.Repos))
	for i, r := range vs.Repos {
		names[i] = r.Name
	}
	result, err := prompt.MultiSelect("Select repositories for this view", names, true)
	if err != nil {
		return nil, err
	}
	if result.Cancelled {
		return nil, fmt.Errorf("cancelled")
	}
	var repos []config.Repository
	for _, idx := range result.Indices {
		repos = append(repos, vs.Repos[idx])
	}
	return repos, nil
}
