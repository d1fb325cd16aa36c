package main

import (
	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/styles"
	"github.com/dheater/viewyard/internal/view"
	"github.com/dheater/viewyard/internal/viewset"
)

func newListCmd() *cobra.Command {
	var viewsetName string
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List views",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List views in the current viewset, or everywhere with --all.

Examples:
  viewyard list                 # Views in the resolved viewset
  viewyard list --all           # Views across every viewset
  viewyard list --viewset work  # Views in a specific viewset`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var only *viewset.Context
			if !all {
				vc, err := resolveViewset(cfg, viewsetName)
				if err != nil {
					return err
				}
				only = &vc
			}

			views, err := view.List(ctx, envv, cfg, only)
			if err != nil {
				return err
			}
			if len(views) == 0 {
				out.Println("No views. Create one with 'viewyard create <name>'")
				return nil
			}

			lastViewset := ""
			for _, v := range views {
				if v.Viewset != lastViewset {
					out.Printf("%s\n", styles.Bold.Render(v.Viewset))
					lastViewset = v.Viewset
				}
				note := ""
				if v.Legacy {
					note = styles.MutedStyle.Render(" (legacy manifest)")
				}
				out.Printf("  %s  %d repo(s)%s\n", v.Name, v.RepoCount, note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&viewsetName, "viewset", "", "Viewset to list")
	cmd.Flags().BoolVar(&all, "all", false, "List views in every viewset")
	cmd.MarkFlagsMutuallyExclusive("viewset", "all")

	return cmd
}
