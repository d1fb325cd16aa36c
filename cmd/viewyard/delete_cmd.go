package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/output"
	"github.com/dheater/viewyard/internal/ui/prompt"
	"github.com/dheater/viewyard/internal/ui/styles"
	"github.com/dheater/viewyard/internal/view"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <view>",
		Short:   "Delete a view",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Delete a view directory and everything in it. No backup is taken;
views are disposable task scratch space. Deleting requires typing "yes"
unless --force is given.

Examples:
  viewyard delete fix-auth
  viewyard delete fix-auth --force  # Skip confirmation (scripts)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			name := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, path, err := findView(cfg, name)
			if err != nil {
				return err
			}

			warnings := view.DeleteSafety(ctx, path)
			for _, w := range warnings {
				out.Printf("%s %s\n", styles.WarningStyle.Render("!"), w)
			}

			if !force {
				ok, err := prompt.TypedConfirm(
					fmt.Sprintf("Delete view %q and all its contents?", name), "yes")
				if err != nil {
					return err
				}
				if !ok {
					out.Println("Aborted")
					return nil
				}
			}

			if err := view.Delete(path); err != nil {
				return err
			}
			out.Printf("%s Deleted %s\n", styles.SuccessStyle.Render(styles.Check), path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	return cmd
}
