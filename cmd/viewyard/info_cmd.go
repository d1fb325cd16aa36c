package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/log"
	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/styles"
	"github.com/dheater/viewyard/internal/view"
)

func newInfoCmd() *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:     "info <view>",
		Short:   "Show view details",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Show a view's branch and the state of each of its repositories.

Examples:
  viewyard info fix-auth
  viewyard info fix-auth --copy  # Copy the view path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			vc, path, err := findView(cfg, args[0])
			if err != nil {
				return err
			}

			info, err := view.Info(ctx, vc, path, args[0])
			if err != nil {
				return err
			}

			out.Printf("%s (viewset %s)\n", styles.Bold.Render(info.Name), info.Viewset)
			out.Printf("  path:   %s\n", info.Path)
			out.Printf("  branch: %s\n", info.Branch)
			if len(info.Repos) == 0 {
				out.Println("  no repositories")
			}
			for _, r := range info.Repos {
				switch {
				case !r.Present:
					out.Printf("  %s %s (not checked out)\n", styles.MutedStyle.Render(styles.Cross), r.Name)
				default:
					state := ""
					if r.Dirty {
						state += " " + styles.WarningStyle.Render("dirty")
					}
					if r.Ahead > 0 {
						state += styles.InfoStyle.Render(fmt.Sprintf(" ahead %d", r.Ahead))
					}
					out.Printf("  %s %s [%s]%s\n", styles.SuccessStyle.Render(styles.Check), r.Name, r.Branch, state)
				}
			}

			if copyPath {
				if err := clipboard.WriteAll(info.Path); err != nil {
					log.FromContext(ctx).Printf("warning: clipboard unavailable: %v\n", err)
				} else {
					out.Println("Path copied to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the view path to the clipboard")

	return cmd
}
