package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/prompt"
	"github.com/dheater/viewyard/internal/ui/styles"
	"github.com/dheater/viewyard/internal/view"
)

func newAddRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add-repo <view> <repo>",
		Short:   "Add a repository to an existing view",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(2),
		Long: `Attach one of the viewset's repositories to an existing view and
check it out on the view's branch. The repo must be configured in the
viewset that owns the view.

Examples:
  viewyard add-repo fix-auth api`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			viewName, repoName := args[0], args[1]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			vc, path, err := findView(cfg, viewName)
			if err != nil {
				return err
			}

			repo, ok := vc.Viewset.Repo(repoName)
			if !ok {
				return fmt.Errorf("repo %q is not configured in viewset %q; add it to %s first",
					repoName, vc.Name, envv.ConfigPath)
			}

			if view.UsesLegacyManifest(path) {
				res, err := prompt.Confirm(
					fmt.Sprintf("View %q uses the legacy manifest format. Add %s anyway?", viewName, repoName))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					out.Println("Aborted")
					return nil
				}
			}

			if err := view.AddRepo(ctx, path, viewName, repo); err != nil {
				return err
			}
			out.Printf("%s Added %s to %s on branch %s\n",
				styles.SuccessStyle.Render(styles.Check), repoName, viewName, viewName)
			return nil
		},
	}

	return cmd
}
